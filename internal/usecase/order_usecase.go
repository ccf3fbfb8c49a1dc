package usecase

import (
	"context"
	"time"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUsecase ведёт журнал финализированных заказов. Заказ создаётся
// атомарно из снимка корзины; после создания меняться может только статус.
type OrderUsecase struct {
	store     *store.Store
	snapshots SnapshotRepository
	producer  EventProducer
	cfg       *cfg.PosCfg
	logger    logger.Logger
	now       func() time.Time
}

func NewOrderUC(
	store *store.Store,
	snapshots SnapshotRepository,
	producer EventProducer,
	cfg *cfg.PosCfg,
	logger logger.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		store:     store,
		snapshots: snapshots,
		producer:  producer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Checkout финализирует корзину в заказ: снимает строки, считает итог,
// присваивает следующий номер, ставит статус PAID, добавляет заказ в начало
// журнала, очищает корзину и сбрасывает снапшот журнала. Пустая корзина или
// отсутствие активного официанта — отказ без какой-либо мутации.
func (o *OrderUsecase) Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "OrderUsecase.Checkout"

	payment := req.Payment
	if payment == "" {
		payment = domain.PaymentGeneric
	}
	if !payment.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidPaymentMethod)
	}

	o.store.Lock()
	defer o.store.Unlock()

	if o.store.Current == nil || len(o.store.Cart) == 0 {
		return nil, e.Wrap(op, e.ErrInvalidCheckout)
	}

	lines := make([]domain.OrderLine, len(o.store.Cart))
	copy(lines, o.store.Cart)

	var total int64
	for _, l := range lines {
		total += l.LineTotal()
	}

	now := o.now()
	order := domain.Order{
		ID:              uuid.NewString(),
		Number:          o.cfg.OrderNumberBase + len(o.store.Orders) + 1,
		Lines:           lines,
		Total:           total,
		Status:          domain.StatusPaid,
		CreatedAt:       now,
		StatusUpdatedAt: now,
		Payment:         payment,
		WaiterID:        o.store.Current.ID,
		WaiterName:      o.store.Current.Name,
	}

	o.store.Orders = append([]domain.Order{order}, o.store.Orders...)
	o.store.Cart = nil
	o.persistLedger(ctx)

	if err := o.producer.OrderFinalized(ctx, &order); err != nil {
		o.logger.Warnf("failed to publish order.finalized for #%d: %v", order.Number, err)
	}

	o.logger.Infof("order #%d finalized by %s, total %d cents", order.Number, order.WaiterName, order.Total)
	return &order, nil
}

// ListOrders возвращает журнал, самый свежий первым.
func (o *OrderUsecase) ListOrders(ctx context.Context) []domain.Order {
	o.store.Lock()
	defer o.store.Unlock()

	out := make([]domain.Order, len(o.store.Orders))
	copy(out, o.store.Orders)
	return out
}

// SetStatus безусловно перезаписывает статус заказа и сбрасывает снапшот
// журнала. Неизвестный orderID — идемпотентный no-op. Легальность перехода
// здесь не проверяется.
func (o *OrderUsecase) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) {
	o.store.Lock()
	defer o.store.Unlock()

	order := o.store.FindOrder(orderID)
	if order == nil {
		return
	}

	order.Status = status
	order.StatusUpdatedAt = o.now()
	o.persistLedger(ctx)

	if err := o.producer.OrderStatusChanged(ctx, order); err != nil {
		o.logger.Warnf("failed to publish order.status_changed for #%d: %v", order.Number, err)
	}
}

// SetStatusFrom переводит заказ из статуса from в to. Проверка текущего
// статуса и перезапись выполняются в одной критической секции, поэтому
// параллельный вызов не может протолкнуть устаревший переход. Неизвестный
// orderID — идемпотентный no-op (nil, nil); несовпадение текущего статуса
// с from — e.ErrIllegalTransition без мутации.
func (o *OrderUsecase) SetStatusFrom(ctx context.Context, orderID string, from, to domain.OrderStatus) (*domain.Order, error) {
	const op = "OrderUsecase.SetStatusFrom"

	o.store.Lock()
	defer o.store.Unlock()

	order := o.store.FindOrder(orderID)
	if order == nil {
		return nil, nil
	}
	if order.Status != from {
		return nil, e.Wrap(op, e.ErrIllegalTransition)
	}

	order.Status = to
	order.StatusUpdatedAt = o.now()
	o.persistLedger(ctx)

	if err := o.producer.OrderStatusChanged(ctx, order); err != nil {
		o.logger.Warnf("failed to publish order.status_changed for #%d: %v", order.Number, err)
	}

	updated := *order
	return &updated, nil
}

// persistLedger сбрасывает снапшот журнала best-effort. Вызывается под Lock.
func (o *OrderUsecase) persistLedger(ctx context.Context) {
	if err := o.snapshots.SaveLedger(ctx, o.store.Orders); err != nil {
		o.logger.Warnf("failed to persist ledger snapshot: %v", err)
	}
}
