package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/comptoir-pos/backend/internal/domain"
	"github.com/comptoir-pos/backend/internal/repository/snapshot"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/jitter"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const (
	saveAttempts    = 3
	saveBackoffBase = 100 * time.Millisecond
	saveBackoffMax  = time.Second
)

// SnapshotRepo реализует контракт снапшотов поверх PostgreSQL:
// таблица pos_snapshots хранит по строке на ключ, значение — jsonb целиком.
type SnapshotRepo struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewSnapshotRepo(pool *pgxpool.Pool, logger logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{
		pool:   pool,
		logger: logger,
	}
}

// LoadCatalog читает снапшот каталога. Отсутствующая строка — e.ErrSnapshotNotFound.
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
	query := `
		SELECT payload
		FROM pos_snapshots
		WHERE key = $1
	`

	var data []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(key, e.ErrSnapshotNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// save перезаписывает снапшот одним UPSERT с ограниченным числом повторов.
func (s *SnapshotRepo) save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO pos_snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW()
	`

	var lastErr error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if _, lastErr = s.pool.Exec(ctx, query, key, data); lastErr == nil {
			return nil
		}

		s.logger.Warnf("snapshot upsert %s failed (attempt %d/%d): %v", key, attempt+1, saveAttempts, lastErr)
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
