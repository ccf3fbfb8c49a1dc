package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/comptoir-pos/backend/pkg/e"
)

func TestAddProduct(t *testing.T) {
	st := seededStore()
	snaps := &fakeSnapshots{}
	uc := NewCatalogUC(st, snaps, nop())
	ctx := context.Background()

	product, err := uc.AddProduct(ctx, NewAddProductReq("Tarte Tatin", "Dessert", 650))
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if product.ID == "" {
		t.Error("product must get a generated ID")
	}

	catalog := uc.ListProducts(ctx)
	if len(catalog) != 9 {
		t.Fatalf("expected 9 products, got %d", len(catalog))
	}
	if catalog[8].Name != "Tarte Tatin" {
		t.Errorf("new product must be appended, got %+v", catalog[8])
	}
	if snaps.catalogSaves != 1 {
		t.Errorf("expected 1 catalog save, got %d", snaps.catalogSaves)
	}
}

func TestAddProductValidation(t *testing.T) {
	uc := NewCatalogUC(seededStore(), &fakeSnapshots{}, nop())
	ctx := context.Background()

	if _, err := uc.AddProduct(ctx, NewAddProductReq("   ", "Dessert", 100)); !errors.Is(err, e.ErrProductNameRequired) {
		t.Errorf("expected ErrProductNameRequired, got %v", err)
	}
	if _, err := uc.AddProduct(ctx, NewAddProductReq("Tarte", "Dessert", -1)); !errors.Is(err, e.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestRemoveProduct(t *testing.T) {
	st := seededStore()
	snaps := &fakeSnapshots{}
	uc := NewCatalogUC(st, snaps, nop())
	ctx := context.Background()

	uc.RemoveProduct(ctx, "1")
	if len(uc.ListProducts(ctx)) != 7 {
		t.Errorf("expected 7 products after removal")
	}
	if snaps.catalogSaves != 1 {
		t.Errorf("expected 1 catalog save, got %d", snaps.catalogSaves)
	}

	// отсутствующий ID — no-op без записи снапшота
	uc.RemoveProduct(ctx, "1")
	if snaps.catalogSaves != 1 {
		t.Errorf("no-op removal must not touch the snapshot, got %d saves", snaps.catalogSaves)
	}
}

func TestCategoriesFirstSeen(t *testing.T) {
	uc := NewCatalogUC(seededStore(), &fakeSnapshots{}, nop())

	got := uc.Categories(context.Background())
	want := []string{"Café", "Boulangerie", "Nourriture", "Boissons", "Dessert"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
