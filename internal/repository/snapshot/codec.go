// Package snapshot определяет wire-формат снапшотов каталога и журнала.
// Формат общий для всех бэкендов хранилища, поэтому снапшот, записанный
// одним бэкендом, читается другим. Временные метки сериализуются в
// сортируемый текстовый формат и обязаны восстанавливаться в эквивалентный
// момент времени после цикла save/load.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/jimlawless/whereami"
)

const timeLayout = time.RFC3339Nano

// Ключи двух независимых снапшотов.
const (
	KeyCatalog = "catalog"
	KeyLedger  = "orders"
)

// ProductModel — запись каталога в снапшоте.
type ProductModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price_cents"`
}

// OrderLineModel — строка заказа в снапшоте.
type OrderLineModel struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price_cents"`
	Quantity  int    `json:"quantity"`
}

// OrderModel — заказ в снапшоте журнала.
type OrderModel struct {
	ID              string           `json:"id"`
	Number          int              `json:"order_number"`
	Lines           []OrderLineModel `json:"items"`
	Total           int64            `json:"total_cents"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
	StatusUpdatedAt string           `json:"status_updated_at"`
	Payment         string           `json:"payment_method"`
	WaiterID        string           `json:"waiter_id"`
	WaiterName      string           `json:"waiter_name"`
}

// EncodeCatalog сериализует каталог в JSON-снапшот.
func EncodeCatalog(catalog []domain.Product) ([]byte, error) {
	models := make([]ProductModel, 0, len(catalog))
	for _, p := range catalog {
		models = append(models, ProductModel{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
		})
	}

	data, err := json.Marshal(models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return data, nil
}

// DecodeCatalog восстанавливает каталог из JSON-снапшота.
func DecodeCatalog(data []byte) ([]domain.Product, error) {
	var models []ProductModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	out := make([]domain.Product, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Product{
			ID:       m.ID,
			Name:     m.Name,
			Category: m.Category,
			Price:    m.Price,
		})
	}
	return out, nil
}

// EncodeLedger сериализует журнал заказов в JSON-снапшот.
func EncodeLedger(orders []domain.Order) ([]byte, error) {
	models := make([]OrderModel, 0, len(orders))
	for _, o := range orders {
		lines := make([]OrderLineModel, 0, len(o.Lines))
		for _, l := range o.Lines {
			lines = append(lines, OrderLineModel{
				ProductID: l.ProductID,
				Name:      l.Name,
				Category:  l.Category,
				Price:     l.Price,
				Quantity:  l.Quantity,
			})
		}

		models = append(models, OrderModel{
			ID:              o.ID,
			Number:          o.Number,
			Lines:           lines,
			Total:           o.Total,
			Status:          string(o.Status),
			CreatedAt:       o.CreatedAt.Format(timeLayout),
			StatusUpdatedAt: o.StatusUpdatedAt.Format(timeLayout),
			Payment:         string(o.Payment),
			WaiterID:        o.WaiterID,
			WaiterName:      o.WaiterName,
		})
	}

	data, err := json.Marshal(models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return data, nil
}

// DecodeLedger восстанавливает журнал из JSON-снапшота.
func DecodeLedger(data []byte) ([]domain.Order, error) {
	var models []OrderModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	out := make([]domain.Order, 0, len(models))
	for _, m := range models {
		createdAt, err := time.Parse(timeLayout, m.CreatedAt)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		statusUpdatedAt := createdAt
		if m.StatusUpdatedAt != "" {
			statusUpdatedAt, err = time.Parse(timeLayout, m.StatusUpdatedAt)
			if err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}
		}

		lines := make([]domain.OrderLine, 0, len(m.Lines))
		for _, l := range m.Lines {
			lines = append(lines, domain.OrderLine{
				ProductID: l.ProductID,
				Name:      l.Name,
				Category:  l.Category,
				Price:     l.Price,
				Quantity:  l.Quantity,
			})
		}

		out = append(out, domain.Order{
			ID:              m.ID,
			Number:          m.Number,
			Lines:           lines,
			Total:           m.Total,
			Status:          domain.OrderStatus(m.Status),
			CreatedAt:       createdAt,
			StatusUpdatedAt: statusUpdatedAt,
			Payment:         domain.PaymentMethod(m.Payment),
			WaiterID:        m.WaiterID,
			WaiterName:      m.WaiterName,
		})
	}
	return out, nil
}
