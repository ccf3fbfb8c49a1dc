package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Типы событий ленты заказов.
const (
	eventOrderFinalized     = "order.finalized"
	eventOrderStatusChanged = "order.status_changed"
)

// orderEvent — JSON-конверт события заказа. Ключ сообщения — номер заказа,
// поэтому события одного заказа попадают в одну партицию и сохраняют порядок.
type orderEvent struct {
	EventID        string      `json:"event_id"`
	EventType      string      `json:"event_type"`
	EventTimestamp int64       `json:"event_timestamp"`
	OrderID        string      `json:"order_id"`
	OrderNumber    int         `json:"order_number"`
	Status         string      `json:"status"`
	TotalCents     int64       `json:"total_cents"`
	PaymentMethod  string      `json:"payment_method,omitempty"`
	WaiterID       string      `json:"waiter_id,omitempty"`
	Lines          []eventLine `json:"items,omitempty"`
}

type eventLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Producer публикует события заказов в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// OrderFinalized публикует событие оформления заказа.
func (p *Producer) OrderFinalized(ctx context.Context, order *domain.Order) error {
	lines := make([]eventLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, eventLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
		})
	}

	return p.write(ctx, &orderEvent{
		EventID:        uuid.NewString(),
		EventType:      eventOrderFinalized,
		EventTimestamp: time.Now().UnixNano(),
		OrderID:        order.ID,
		OrderNumber:    order.Number,
		Status:         string(order.Status),
		TotalCents:     order.Total,
		PaymentMethod:  string(order.Payment),
		WaiterID:       order.WaiterID,
		Lines:          lines,
	})
}

// OrderStatusChanged публикует событие смены статуса заказа.
func (p *Producer) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	return p.write(ctx, &orderEvent{
		EventID:        uuid.NewString(),
		EventType:      eventOrderStatusChanged,
		EventTimestamp: time.Now().UnixNano(),
		OrderID:        order.ID,
		OrderNumber:    order.Number,
		Status:         string(order.Status),
		TotalCents:     order.Total,
	})
}

func (p *Producer) write(ctx context.Context, event *orderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderNumber)),
		Value: value,
	})
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
