package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/repository/snapshot"
	"github.com/comptoir-pos/backend/pkg/clients"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/jitter"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	saveAttempts    = 3
	saveBackoffBase = 100 * time.Millisecond
	saveBackoffMax  = time.Second
)

// SnapshotRepo реализует контракт снапшотов поверх Redis: по одному ключу
// на каталог и журнал, значение — JSON-снапшот целиком.
type SnapshotRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewSnapshotRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// LoadCatalog читает снапшот каталога. Отсутствующий ключ — e.ErrSnapshotNotFound.
func (s *SnapshotRepo) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	data, err := s.load(ctx, snapshot.KeyCatalog)
	if err != nil {
		return nil, err
	}
	return snapshot.DecodeCatalog(data)
}

// SaveCatalog перезаписывает снапшот каталога.
func (s *SnapshotRepo) SaveCatalog(ctx context.Context, catalog []domain.Product) error {
	data, err := snapshot.EncodeCatalog(catalog)
	if err != nil {
		return err
	}
	return s.save(ctx, snapshot.KeyCatalog, data)
}

// LoadLedger читает снапшот журнала заказов.
func (s *SnapshotRepo) LoadLedger(ctx context.Context) ([]domain.Order, error) {
	data, err := s.load(ctx, snapshot.KeyLedger)
	if err != nil {
		return nil, err
	}
	return snapshot.DecodeLedger(data)
}

// SaveLedger перезаписывает снапшот журнала.
func (s *SnapshotRepo) SaveLedger(ctx context.Context, orders []domain.Order) error {
	data, err := snapshot.EncodeLedger(orders)
	if err != nil {
		return err
	}
	return s.save(ctx, snapshot.KeyLedger, data)
}

func (s *SnapshotRepo) load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.Wrap(key, e.ErrSnapshotNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return data, nil
}

// save пишет снапшот с ограниченным числом повторов. Писатель один,
// поэтому достаточно семантики "последняя запись выигрывает".
func (s *SnapshotRepo) save(ctx context.Context, key string, data []byte) error {
	var lastErr error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if lastErr = s.client.Client.Set(ctx, s.key(key), data, 0).Err(); lastErr == nil {
			return nil
		}

		s.logger.Warnf("redis SET %s failed (attempt %d/%d): %v", key, attempt+1, saveAttempts, lastErr)
		if attempt < saveAttempts-1 {
			select {
			case <-time.After(jitter.ExponentialBackoff(saveBackoffBase, saveBackoffMax, attempt, jitter.DefaultJitter)):
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			}
		}
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

func (s *SnapshotRepo) key(name string) string {
	return fmt.Sprintf("%s:%s", s.cfg.KeyPrefix, name)
}
