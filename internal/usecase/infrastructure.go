package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/domain"
)

// EventProducer публикует события журнала заказов во внешнюю ленту.
// Публикация всегда best-effort: ошибки логируются вызывающей стороной
// и никогда не отменяют саму операцию.
type EventProducer interface {
	OrderFinalized(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
}

// NopProducer — заглушка ленты событий, когда Kafka не сконфигурирована.
type NopProducer struct{}

func (NopProducer) OrderFinalized(context.Context, *domain.Order) error     { return nil }
func (NopProducer) OrderStatusChanged(context.Context, *domain.Order) error { return nil }
