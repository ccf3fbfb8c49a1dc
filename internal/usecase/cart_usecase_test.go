package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/comptoir-pos/backend/pkg/e"
)

func TestAddItemCollapsesLines(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, "1"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	view, err := uc.AddItem(ctx, "1")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", view.Lines[0].Quantity)
	}
	if view.Subtotal != 500 {
		t.Errorf("expected subtotal 500, got %d", view.Subtotal)
	}
}

func TestCartTotals(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	// Espresso x2 + Croissant: 250*2 + 200 = 700
	uc.AddItem(ctx, "1")
	uc.AddItem(ctx, "1")
	view, err := uc.AddItem(ctx, "4")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if view.Subtotal != 700 {
		t.Errorf("expected subtotal 700, got %d", view.Subtotal)
	}
	if view.Tax != 70 {
		t.Errorf("expected tax 70, got %d", view.Tax)
	}
	if view.GrandTotal != 770 {
		t.Errorf("expected grand total 770, got %d", view.GrandTotal)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())

	_, err := uc.AddItem(context.Background(), "missing")
	if !errors.Is(err, e.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestChangeQuantityClampsAtOne(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	uc.AddItem(ctx, "1")
	view := uc.ChangeQuantity(ctx, "1", -5)

	if len(view.Lines) != 1 {
		t.Fatalf("line must survive a negative delta, got %d lines", len(view.Lines))
	}
	if view.Lines[0].Quantity != 1 {
		t.Errorf("expected quantity clamped to 1, got %d", view.Lines[0].Quantity)
	}
}

func TestChangeQuantityUnknownProductIsNoop(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	uc.AddItem(ctx, "1")
	view := uc.ChangeQuantity(ctx, "missing", 3)

	if len(view.Lines) != 1 || view.Lines[0].Quantity != 1 {
		t.Errorf("cart must be unchanged, got %+v", view.Lines)
	}
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	uc.AddItem(ctx, "1")
	uc.AddItem(ctx, "1")
	uc.AddItem(ctx, "4")

	view := uc.RemoveItem(ctx, "1")
	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(view.Lines))
	}
	if view.Lines[0].ProductID != "4" {
		t.Errorf("wrong line survived: %s", view.Lines[0].ProductID)
	}

	// повторное удаление — no-op
	view = uc.RemoveItem(ctx, "1")
	if len(view.Lines) != 1 {
		t.Errorf("repeated removal must be a no-op, got %d lines", len(view.Lines))
	}
}

func TestCartSnapshotIsolatedFromCatalog(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	uc.AddItem(ctx, "1")

	st.Lock()
	st.Catalog[0].Price = 9999
	st.Unlock()

	view := uc.View(ctx)
	if view.Lines[0].Price != 250 {
		t.Errorf("cart line must keep the price at add time, got %d", view.Lines[0].Price)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	st := seededStore()
	uc := NewCartUC(st, testPosCfg())
	ctx := context.Background()

	uc.AddItem(ctx, "1")
	uc.Clear(ctx)

	view := uc.View(ctx)
	if len(view.Lines) != 0 || view.Subtotal != 0 {
		t.Errorf("expected empty cart, got %+v", view)
	}
}
