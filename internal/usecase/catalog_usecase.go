package usecase

import (
	"context"
	"strings"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/google/uuid"
)

// CatalogUsecase управляет каталогом продаваемых позиций.
// Каждая мутация синхронно сбрасывает полный снапшот каталога в хранилище.
type CatalogUsecase struct {
	store     *store.Store
	snapshots SnapshotRepository
	logger    logger.Logger
}

func NewCatalogUC(store *store.Store, snapshots SnapshotRepository, logger logger.Logger) *CatalogUsecase {
	return &CatalogUsecase{
		store:     store,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ListProducts возвращает каталог в порядке добавления.
func (c *CatalogUsecase) ListProducts(ctx context.Context) []domain.Product {
	c.store.Lock()
	defer c.store.Unlock()

	out := make([]domain.Product, len(c.store.Catalog))
	copy(out, c.store.Catalog)
	return out
}

// Categories возвращает список подсказок категорий: различные метки живого
// каталога в порядке первого появления. Категория остаётся свободным текстом.
func (c *CatalogUsecase) Categories(ctx context.Context) []string {
	c.store.Lock()
	defer c.store.Unlock()

	seen := make(map[string]struct{}, len(c.store.Catalog))
	out := make([]string, 0, len(c.store.Catalog))
	for _, p := range c.store.Catalog {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// AddProduct валидирует и добавляет позицию с новым ID в конец каталога.
func (c *CatalogUsecase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUsecase.AddProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}
	if req.Price < 0 {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	product := domain.NewProduct(uuid.NewString(), req.Name, req.Category, req.Price)

	c.store.Lock()
	defer c.store.Unlock()

	c.store.Catalog = append(c.store.Catalog, *product)
	c.persistCatalog(ctx)

	return product, nil
}

// RemoveProduct удаляет позицию по ID. Отсутствующий ID — идемпотентный no-op.
func (c *CatalogUsecase) RemoveProduct(ctx context.Context, id string) {
	c.store.Lock()
	defer c.store.Unlock()

	for i, p := range c.store.Catalog {
		if p.ID == id {
			c.store.Catalog = append(c.store.Catalog[:i], c.store.Catalog[i+1:]...)
			c.persistCatalog(ctx)
			return
		}
	}
}

// persistCatalog сбрасывает снапшот каталога best-effort: отказ хранилища
// логируется и не отменяет мутацию в памяти. Вызывается под Lock.
func (c *CatalogUsecase) persistCatalog(ctx context.Context) {
	if err := c.snapshots.SaveCatalog(ctx, c.store.Catalog); err != nil {
		c.logger.Warnf("failed to persist catalog snapshot: %v", err)
	}
}
