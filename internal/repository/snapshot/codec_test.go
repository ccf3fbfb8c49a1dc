package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
)

func TestCatalogRoundTrip(t *testing.T) {
	catalog := []domain.Product{
		{ID: "1", Name: "Espresso", Category: "Café", Price: 250},
		{ID: "2", Name: "Croissant", Category: "Boulangerie", Price: 200},
	}

	data, err := EncodeCatalog(catalog)
	if err != nil {
		t.Fatalf("EncodeCatalog: %v", err)
	}

	decoded, err := DecodeCatalog(data)
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}

	if len(decoded) != len(catalog) {
		t.Fatalf("expected %d products, got %d", len(catalog), len(decoded))
	}
	for i := range catalog {
		if decoded[i] != catalog[i] {
			t.Errorf("product %d changed in round trip: %+v != %+v", i, decoded[i], catalog[i])
		}
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 12, 30, 45, 123456789, time.UTC)
	orders := []domain.Order{
		{
			ID:     "o1",
			Number: 1001,
			Lines: []domain.OrderLine{
				{ProductID: "1", Name: "Espresso", Category: "Café", Price: 250, Quantity: 2},
			},
			Total:           500,
			Status:          domain.StatusPrepared,
			CreatedAt:       createdAt,
			StatusUpdatedAt: createdAt.Add(5 * time.Minute),
			Payment:         domain.PaymentCash,
			WaiterID:        "w1",
			WaiterName:      "Jean Dupont",
		},
	}

	data, err := EncodeLedger(orders)
	if err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	decoded, err := DecodeLedger(data)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("expected 1 order, got %d", len(decoded))
	}
	got := decoded[0]

	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt must survive the round trip: %v != %v", got.CreatedAt, createdAt)
	}
	if !got.StatusUpdatedAt.Equal(createdAt.Add(5 * time.Minute)) {
		t.Errorf("StatusUpdatedAt must survive the round trip: %v", got.StatusUpdatedAt)
	}
	if got.Status != domain.StatusPrepared || got.Payment != domain.PaymentCash {
		t.Errorf("labels changed in round trip: %s, %s", got.Status, got.Payment)
	}
	if got.Total != 500 || got.Number != 1001 || len(got.Lines) != 1 {
		t.Errorf("order fields changed in round trip: %+v", got)
	}
	if got.Lines[0].Quantity != 2 || got.Lines[0].Price != 250 {
		t.Errorf("line changed in round trip: %+v", got.Lines[0])
	}
}

func TestDecodeLedgerDefaultsStatusUpdatedAt(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	// снапшот старого формата, без status_updated_at
	data, err := json.Marshal([]OrderModel{{
		ID:        "o1",
		Number:    1001,
		Total:     500,
		Status:    "PAID",
		CreatedAt: createdAt.Format(time.RFC3339Nano),
	}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := DecodeLedger(data)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if !decoded[0].StatusUpdatedAt.Equal(createdAt) {
		t.Errorf("missing status_updated_at must fall back to created_at, got %v", decoded[0].StatusUpdatedAt)
	}
}

func TestDecodeLedgerRejectsBadTimestamp(t *testing.T) {
	data := []byte(`[{"id":"o1","order_number":1001,"created_at":"yesterday"}]`)
	if _, err := DecodeLedger(data); err == nil {
		t.Fatal("expected an error for an unparsable timestamp")
	}
}
