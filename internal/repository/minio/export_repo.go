package minio

import (
	"bytes"
	"context"

	"github.com/comptoir-pos/backend/internal/cfg"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ExportRepo хранит выгрузки дашборда в бакете MinIO.
type ExportRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewExportRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ExportRepo {
	return &ExportRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// StoreExport кладёт JSON-выгрузку под указанным ключом и возвращает ключ объекта.
func (r *ExportRepo) StoreExport(ctx context.Context, objectKey string, payload []byte) (string, error) {
	reader := bytes.NewReader(payload)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, objectKey, reader, int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
