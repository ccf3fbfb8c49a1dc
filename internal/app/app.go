package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/comptoir-pos/backend/internal/cfg"
	v1Http "github.com/comptoir-pos/backend/internal/delivery/v1/http"
	"github.com/comptoir-pos/backend/internal/infrastructure/kafka"
	minioRepo "github.com/comptoir-pos/backend/internal/repository/minio"
	"github.com/comptoir-pos/backend/internal/repository/pgdb"
	redisRepo "github.com/comptoir-pos/backend/internal/repository/redis"
	"github.com/comptoir-pos/backend/internal/store"
	"github.com/comptoir-pos/backend/internal/usecase"
	"github.com/comptoir-pos/backend/pkg/clients"
	"github.com/comptoir-pos/backend/pkg/closer"
	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/comptoir-pos/backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает зависимости терминала: хранилище снапшотов по выбранному
// бэкенду, необязательные ленту событий и архив экспортов, usecase-слой
// и HTTP-сервер.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func New(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	snapshots, err := initSnapshots(cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	st := store.New()
	if err := bootstrapStore(st, snapshots, log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	producer := initProducer(cfg, log, cl)
	exporter := initExporter(cfg, log)

	sessionUC := usecase.NewSessionUC(st, log)
	catalogUC := usecase.NewCatalogUC(st, snapshots, log)
	cartUC := usecase.NewCartUC(st, cfg.Pos)
	orderUC := usecase.NewOrderUC(st, snapshots, producer, cfg.Pos, log)
	kitchenUC := usecase.NewKitchenUC(st, orderUC, cfg.Pos, log)
	reportUC := usecase.NewReportUC(st, exporter, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(sessionUC, catalogUC, cartUC, orderUC, kitchenUC, reportUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или
// фатальной ошибки сервера, после чего закрывает ресурсы в порядке LIFO.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// initSnapshots поднимает хранилище снапшотов по выбранному бэкенду
// и регистрирует закрытие клиента.
func initSnapshots(cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.SnapshotRepository, error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		redisClient := clients.NewRedisClient(cfg.Redis)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		cl.Add(func(ctx context.Context) error {
			return redisClient.Client.Close()
		})

		return redisRepo.NewSnapshotRepo(redisClient, cfg.Redis, log), nil

	case config.StoragePostgres:
		db, err := postgres.Connect(cfg.Db)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if err := db.RunMigrations(log); err != nil {
			db.Close()
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		cl.Add(func(ctx context.Context) error {
			db.Close()
			return nil
		})

		return pgdb.NewSnapshotRepo(db.Pool, log), nil
	}

	return nil, e.Wrap(cfg.Storage.Backend, e.ErrUnknownStorageBackend)
}

// bootstrapStore восстанавливает каталог и журнал из снапшотов.
// Отсутствующий снапшот каталога означает первый запуск: хранилище
// засевается дефолтным каталогом и ростером, снапшот записывается сразу.
func bootstrapStore(st *store.Store, snapshots usecase.SnapshotRepository, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st.Lock()
	defer st.Unlock()

	catalog, err := snapshots.LoadCatalog(ctx)
	switch {
	case err == nil:
		st.Catalog = catalog
	case errors.Is(err, e.ErrSnapshotNotFound):
		log.Infof("no catalog snapshot, seeding defaults")
		st.Catalog = store.DefaultCatalog()
		if err := snapshots.SaveCatalog(ctx, st.Catalog); err != nil {
			log.Warnf("failed to persist seeded catalog: %v", err)
		}
	default:
		return e.Wrap(whereami.WhereAmI(), err)
	}

	orders, err := snapshots.LoadLedger(ctx)
	switch {
	case err == nil:
		st.Orders = orders
	case errors.Is(err, e.ErrSnapshotNotFound):
		st.Orders = nil
	default:
		return e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("store restored: %d products, %d orders", len(st.Catalog), len(st.Orders))
	return nil
}

// initProducer поднимает ленту событий заказов, если она сконфигурирована.
// Ошибки инициализации не фатальны, терминал работает без ленты.
func initProducer(cfg *config.Config, log logger.Logger, cl *closer.Closer) usecase.EventProducer {
	if !cfg.Kafka.Enabled {
		return usecase.NopProducer{}
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Warnf("failed to initialize kafka producer, events disabled: %v", err)
		return usecase.NopProducer{}
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("failed to ensure kafka topic, events disabled: %v", err)
		return usecase.NopProducer{}
	}

	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	log.Infof("order event feed enabled, topic %s", cfg.Kafka.Topic)
	return producer
}

// initExporter поднимает архив экспортов, если он сконфигурирован.
// Без конфигурации MinIO экспорт отчётов возвращает 503.
func initExporter(cfg *config.Config, log logger.Logger) usecase.ExportRepository {
	if !cfg.Minio.Enabled {
		return nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Warnf("failed to initialize minio client, export disabled: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Warnf("failed to ensure minio bucket, export disabled: %v", err)
		return nil
	}

	log.Infof("report export archive enabled, bucket %s", cfg.Minio.BucketName)
	return minioRepo.NewExportRepo(minioClient, cfg.Minio)
}
