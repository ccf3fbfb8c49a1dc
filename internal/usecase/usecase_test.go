package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
)

// fakeSnapshots считает записи снапшотов и запоминает последний журнал.
type fakeSnapshots struct {
	catalogSaves int
	ledgerSaves  int
	lastLedger   []domain.Order
}

func (f *fakeSnapshots) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	return nil, e.ErrSnapshotNotFound
}

func (f *fakeSnapshots) SaveCatalog(ctx context.Context, catalog []domain.Product) error {
	f.catalogSaves++
	return nil
}

func (f *fakeSnapshots) LoadLedger(ctx context.Context) ([]domain.Order, error) {
	return nil, e.ErrSnapshotNotFound
}

func (f *fakeSnapshots) SaveLedger(ctx context.Context, orders []domain.Order) error {
	f.ledgerSaves++
	f.lastLedger = append([]domain.Order(nil), orders...)
	return nil
}

func testPosCfg() *cfg.PosCfg {
	return &cfg.PosCfg{
		TaxRateBps:      1000,
		ReadyBoardLimit: 5,
		OrderNumberBase: 1000,
	}
}

// seededStore возвращает состояние с каталогом по умолчанию и без заказов.
func seededStore() *store.Store {
	st := store.New()
	st.Reset()
	return st
}

// login делает первого официанта ростера активным.
func login(st *store.Store) {
	st.Lock()
	defer st.Unlock()
	w := st.Waiters[0]
	st.Current = &w
}

func nop() logger.Logger {
	return logger.NewNopLogger()
}
