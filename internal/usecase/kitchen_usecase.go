package usecase

import (
	"context"
	"sort"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/logger"
)

// KitchenUsecase — машина состояний кухни поверх журнала заказов.
// Собственного хранилища у неё нет: разрешены ровно два перехода,
// PAID→PREPARED и PREPARED→DELIVERED, сами перезаписи статуса делает журнал.
type KitchenUsecase struct {
	store  *store.Store
	ledger OrderUC
	cfg    *cfg.PosCfg
	logger logger.Logger
}

func NewKitchenUC(store *store.Store, ledger OrderUC, cfg *cfg.PosCfg, logger logger.Logger) *KitchenUsecase {
	return &KitchenUsecase{
		store:  store,
		ledger: ledger,
		cfg:    cfg,
		logger: logger,
	}
}

// ActiveBoard возвращает оплаченные заказы, ожидающие кухню,
// старейшие первыми: кухня работает в порядке поступления.
func (k *KitchenUsecase) ActiveBoard(ctx context.Context) []domain.Order {
	k.store.Lock()
	defer k.store.Unlock()

	out := make([]domain.Order, 0)
	for _, o := range k.store.Orders {
		if o.Status == domain.StatusPaid {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

// ReadyBoard возвращает приготовленные заказы, последние отмеченные первыми,
// в пределах окна отображения.
func (k *KitchenUsecase) ReadyBoard(ctx context.Context) []domain.Order {
	k.store.Lock()
	defer k.store.Unlock()

	out := make([]domain.Order, 0)
	for _, o := range k.store.Orders {
		if o.Status == domain.StatusPrepared {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StatusUpdatedAt.After(out[j].StatusUpdatedAt)
	})

	if len(out) > k.cfg.ReadyBoardLimit {
		out = out[:k.cfg.ReadyBoardLimit]
	}

	return out
}

// MarkReady переводит заказ PAID→PREPARED. Неизвестный ID — идемпотентный
// no-op (nil, nil); любой другой исходный статус — отказ перехода.
func (k *KitchenUsecase) MarkReady(ctx context.Context, orderID string) (*domain.Order, error) {
	return k.transition(ctx, orderID, domain.StatusPaid, domain.StatusPrepared)
}

// Archive переводит заказ PREPARED→DELIVERED, снимая его с досок.
// DELIVERED — терминальное состояние.
func (k *KitchenUsecase) Archive(ctx context.Context, orderID string) (*domain.Order, error) {
	return k.transition(ctx, orderID, domain.StatusPrepared, domain.StatusDelivered)
}

// transition делегирует журналу атомарный переход from→to: проверка
// исходного статуса и перезапись неразделимы, параллельный вызов не может
// откатить уже ушедший дальше заказ.
func (k *KitchenUsecase) transition(ctx context.Context, orderID string, from, to domain.OrderStatus) (*domain.Order, error) {
	order, err := k.ledger.SetStatusFrom(ctx, orderID, from, to)
	if err != nil {
		k.logger.Warnf("rejected transition %s->%s for order %s", from, to, orderID)
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	k.logger.Infof("order #%d moved to %s", order.Number, to)
	return order, nil
}
