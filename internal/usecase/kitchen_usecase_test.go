package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
)

func newKitchenFixture(st *store.Store) (*CartUsecase, *OrderUsecase, *KitchenUsecase) {
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())
	kitchenUC := NewKitchenUC(st, orderUC, testPosCfg(), nop())
	return cartUC, orderUC, kitchenUC
}

func TestKitchenFlow(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC, orderUC, kitchenUC := newKitchenFixture(st)
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if active := kitchenUC.ActiveBoard(ctx); len(active) != 1 || active[0].ID != order.ID {
		t.Fatalf("paid order must be on the active board, got %+v", active)
	}
	if ready := kitchenUC.ReadyBoard(ctx); len(ready) != 0 {
		t.Fatalf("ready board must be empty, got %d orders", len(ready))
	}

	prepared, err := kitchenUC.MarkReady(ctx, order.ID)
	if err != nil {
		t.Fatalf("MarkReady: %v", err)
	}
	if prepared.Status != domain.StatusPrepared {
		t.Errorf("expected PREPARED, got %s", prepared.Status)
	}

	if active := kitchenUC.ActiveBoard(ctx); len(active) != 0 {
		t.Error("prepared order must leave the active board")
	}
	if ready := kitchenUC.ReadyBoard(ctx); len(ready) != 1 {
		t.Error("prepared order must appear on the ready board")
	}

	delivered, err := kitchenUC.Archive(ctx, order.ID)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if delivered.Status != domain.StatusDelivered {
		t.Errorf("expected DELIVERED, got %s", delivered.Status)
	}

	if ready := kitchenUC.ReadyBoard(ctx); len(ready) != 0 {
		t.Error("delivered order must leave both boards")
	}
}

func TestMarkReadyRejectsWrongStatus(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC, orderUC, kitchenUC := newKitchenFixture(st)
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, _ := orderUC.Checkout(ctx, NewCheckoutReq(""))

	if _, err := kitchenUC.MarkReady(ctx, order.ID); err != nil {
		t.Fatalf("MarkReady: %v", err)
	}
	if _, err := kitchenUC.MarkReady(ctx, order.ID); !errors.Is(err, e.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestArchiveRequiresPrepared(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC, orderUC, kitchenUC := newKitchenFixture(st)
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, _ := orderUC.Checkout(ctx, NewCheckoutReq(""))

	if _, err := kitchenUC.Archive(ctx, order.ID); !errors.Is(err, e.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition for a paid order, got %v", err)
	}
}

func TestKitchenUnknownOrderIsNoop(t *testing.T) {
	st := seededStore()
	_, _, kitchenUC := newKitchenFixture(st)
	ctx := context.Background()

	order, err := kitchenUC.MarkReady(ctx, "missing")
	if err != nil || order != nil {
		t.Errorf("expected (nil, nil) for unknown order, got (%v, %v)", order, err)
	}

	order, err = kitchenUC.Archive(ctx, "missing")
	if err != nil || order != nil {
		t.Errorf("expected (nil, nil) for unknown order, got (%v, %v)", order, err)
	}
}

func TestConcurrentMarkReadyHasSingleWinner(t *testing.T) {
	for i := 0; i < 50; i++ {
		st := seededStore()
		login(st)
		cartUC, orderUC, kitchenUC := newKitchenFixture(st)
		ctx := context.Background()

		cartUC.AddItem(ctx, "1")
		order, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
		if err != nil {
			t.Fatalf("Checkout: %v", err)
		}

		var wg sync.WaitGroup
		var won, rejected int32
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := kitchenUC.MarkReady(ctx, order.ID); err == nil {
					atomic.AddInt32(&won, 1)
				} else if errors.Is(err, e.ErrIllegalTransition) {
					atomic.AddInt32(&rejected, 1)
				}
			}()
		}
		wg.Wait()

		if won != 1 || rejected != 1 {
			t.Fatalf("expected exactly one winner, got %d won / %d rejected", won, rejected)
		}

		if _, err := kitchenUC.Archive(ctx, order.ID); err != nil {
			t.Fatalf("Archive: %v", err)
		}

		// запоздавший MarkReady не должен откатить выданный заказ
		if _, err := kitchenUC.MarkReady(ctx, order.ID); !errors.Is(err, e.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition after delivery, got %v", err)
		}
		if got := orderUC.ListOrders(ctx)[0].Status; got != domain.StatusDelivered {
			t.Fatalf("delivered order must stay delivered, got %s", got)
		}
	}
}

func TestActiveBoardOldestFirst(t *testing.T) {
	st := seededStore()
	_, _, kitchenUC := newKitchenFixture(st)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// журнал хранит свежие первыми, доска должна перевернуть порядок
	st.Lock()
	for i := 0; i < 3; i++ {
		st.Orders = append([]domain.Order{{
			ID:        fmt.Sprintf("o%d", i),
			Number:    1001 + i,
			Status:    domain.StatusPaid,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}}, st.Orders...)
	}
	st.Unlock()

	active := kitchenUC.ActiveBoard(context.Background())
	if len(active) != 3 {
		t.Fatalf("expected 3 active orders, got %d", len(active))
	}
	for i := 1; i < len(active); i++ {
		if active[i].CreatedAt.Before(active[i-1].CreatedAt) {
			t.Fatalf("active board must be oldest first: %v", active)
		}
	}
}

func TestReadyBoardWindow(t *testing.T) {
	st := seededStore()
	_, _, kitchenUC := newKitchenFixture(st)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st.Lock()
	for i := 0; i < 7; i++ {
		st.Orders = append(st.Orders, domain.Order{
			ID:              fmt.Sprintf("o%d", i),
			Number:          1001 + i,
			Status:          domain.StatusPrepared,
			CreatedAt:       base,
			StatusUpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	st.Unlock()

	ready := kitchenUC.ReadyBoard(context.Background())
	if len(ready) != 5 {
		t.Fatalf("expected ready board capped at 5, got %d", len(ready))
	}
	if ready[0].ID != "o6" {
		t.Errorf("most recently prepared order must come first, got %s", ready[0].ID)
	}
	for i := 1; i < len(ready); i++ {
		if ready[i].StatusUpdatedAt.After(ready[i-1].StatusUpdatedAt) {
			t.Fatalf("ready board must be newest first: %v", ready)
		}
	}
}
