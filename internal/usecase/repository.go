package usecase

import (
	"context"

	"github.com/comptoir-pos/backend/internal/domain"
)

// SnapshotRepository — контракт долговременного хранилища: два независимых
// ключа, каталог и журнал заказов, целиком перезаписываемые на каждую
// мутацию. Load обязан вернуть e.ErrSnapshotNotFound, если снапшота ещё нет.
type SnapshotRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.Product, error)
	SaveCatalog(ctx context.Context, catalog []domain.Product) error
	LoadLedger(ctx context.Context) ([]domain.Order, error)
	SaveLedger(ctx context.Context, orders []domain.Order) error
}

// ExportRepository — архив экспортов дашборда в объектном хранилище.
type ExportRepository interface {
	StoreExport(ctx context.Context, objectKey string, payload []byte) (string, error)
}
