package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/pkg/e"
)

func TestCheckoutWithoutWaiter(t *testing.T) {
	st := seededStore()
	snaps := &fakeSnapshots{}
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, snaps, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")

	_, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if !errors.Is(err, e.ErrInvalidCheckout) {
		t.Fatalf("expected ErrInvalidCheckout, got %v", err)
	}

	if len(orderUC.ListOrders(ctx)) != 0 {
		t.Error("refused checkout must not create an order")
	}
	if view := cartUC.View(ctx); len(view.Lines) != 1 {
		t.Error("refused checkout must leave the cart intact")
	}
	if snaps.ledgerSaves != 0 {
		t.Error("refused checkout must not touch the snapshot")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	st := seededStore()
	login(st)
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())

	_, err := orderUC.Checkout(context.Background(), NewCheckoutReq(domain.PaymentCash))
	if !errors.Is(err, e.ErrInvalidCheckout) {
		t.Fatalf("expected ErrInvalidCheckout, got %v", err)
	}
}

func TestCheckoutFinalizesCart(t *testing.T) {
	st := seededStore()
	login(st)
	snaps := &fakeSnapshots{}
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, snaps, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	cartUC.AddItem(ctx, "1")
	cartUC.AddItem(ctx, "4")

	order, err := orderUC.Checkout(ctx, NewCheckoutReq(domain.PaymentCard))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if order.Number != 1001 {
		t.Errorf("expected order number 1001, got %d", order.Number)
	}
	if order.Total != 700 {
		t.Errorf("expected total 700, got %d", order.Total)
	}
	if order.Status != domain.StatusPaid {
		t.Errorf("expected status PAID, got %s", order.Status)
	}
	if order.Payment != domain.PaymentCard {
		t.Errorf("expected payment CARD, got %s", order.Payment)
	}
	if order.WaiterName != "Jean Dupont" {
		t.Errorf("expected waiter snapshot, got %q", order.WaiterName)
	}

	if view := cartUC.View(ctx); len(view.Lines) != 0 {
		t.Error("checkout must clear the cart")
	}
	if snaps.ledgerSaves != 1 {
		t.Errorf("expected 1 ledger save, got %d", snaps.ledgerSaves)
	}
}

func TestCheckoutDefaultsPaymentMethod(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Payment != domain.PaymentGeneric {
		t.Errorf("expected GENERIC payment, got %s", order.Payment)
	}
}

func TestCheckoutRejectsUnknownPayment(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	_, err := orderUC.Checkout(ctx, NewCheckoutReq("BITCOIN"))
	if !errors.Is(err, e.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestOrderNumbersIncrease(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	first, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	cartUC.AddItem(ctx, "2")
	second, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if first.Number != 1001 || second.Number != 1002 {
		t.Errorf("expected numbers 1001, 1002, got %d, %d", first.Number, second.Number)
	}

	orders := orderUC.ListOrders(ctx)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Number != 1002 {
		t.Errorf("ledger must list the newest order first, got #%d", orders[0].Number)
	}
}

func TestSetStatusUnknownOrderIsNoop(t *testing.T) {
	st := seededStore()
	snaps := &fakeSnapshots{}
	orderUC := NewOrderUC(st, snaps, NopProducer{}, testPosCfg(), nop())

	orderUC.SetStatus(context.Background(), "missing", domain.StatusPrepared)

	if snaps.ledgerSaves != 0 {
		t.Error("no-op SetStatus must not touch the snapshot")
	}
}

func TestSetStatusFromEnforcesCurrentStatus(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC := NewCartUC(st, testPosCfg())
	orderUC := NewOrderUC(st, &fakeSnapshots{}, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	updated, err := orderUC.SetStatusFrom(ctx, order.ID, domain.StatusPaid, domain.StatusPrepared)
	if err != nil {
		t.Fatalf("SetStatusFrom: %v", err)
	}
	if updated.Status != domain.StatusPrepared {
		t.Errorf("expected PREPARED, got %s", updated.Status)
	}

	// повтор с тем же from обязан отказать без мутации
	if _, err := orderUC.SetStatusFrom(ctx, order.ID, domain.StatusPaid, domain.StatusPrepared); !errors.Is(err, e.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if got := orderUC.ListOrders(ctx)[0].Status; got != domain.StatusPrepared {
		t.Errorf("rejected transition must not mutate, got %s", got)
	}

	if o, err := orderUC.SetStatusFrom(ctx, "missing", domain.StatusPaid, domain.StatusPrepared); o != nil || err != nil {
		t.Errorf("expected (nil, nil) for unknown order, got (%v, %v)", o, err)
	}
}

func TestSetStatusPersistsLedger(t *testing.T) {
	st := seededStore()
	login(st)
	cartUC := NewCartUC(st, testPosCfg())
	snaps := &fakeSnapshots{}
	orderUC := NewOrderUC(st, snaps, NopProducer{}, testPosCfg(), nop())
	ctx := context.Background()

	cartUC.AddItem(ctx, "1")
	order, err := orderUC.Checkout(ctx, NewCheckoutReq(""))
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	orderUC.SetStatus(ctx, order.ID, domain.StatusPrepared)

	if snaps.ledgerSaves != 2 {
		t.Errorf("expected 2 ledger saves, got %d", snaps.ledgerSaves)
	}
	if snaps.lastLedger[0].Status != domain.StatusPrepared {
		t.Errorf("persisted ledger must carry the new status, got %s", snaps.lastLedger[0].Status)
	}
}
