package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/comptoir-pos/backend/pkg/e"
	"github.com/comptoir-pos/backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Поддерживаемые бэкенды хранилища снапшотов.
const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Http    *HTTPConfig
	Storage *StorageCfg
	Db      *PGDBCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Minio   *MinIOCfg
	Pos     *PosCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StorageCfg выбирает реализацию контракта load/save для снапшотов.
type StorageCfg struct {
	Backend string // redis | postgres
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	KeyPrefix   string // префикс ключей снапшотов, по умолчанию "pos"
}

// KafkaCfg описывает необязательную ленту событий заказов.
// Пустой список брокеров означает, что лента выключена.
type KafkaCfg struct {
	Enabled           bool
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// MinIOCfg описывает необязательный архив экспортов отчётов.
// Пустой BucketName означает, что экспорт выключен.
type MinIOCfg struct {
	Enabled           bool
	MinioEndpoint     string
	BucketName        string
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
}

// PosCfg — бизнес-настройки терминала.
type PosCfg struct {
	TaxRateBps      int // НДС в базисных пунктах, 1000 = 10%
	ReadyBoardLimit int // окно доски "готово к подаче"
	OrderNumberBase int // база нумерации заказов
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Конфигурация незадействованного бэкенда хранилища не загружается.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage, err := loadStorageCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		Http:    http,
		Storage: storage,
		Kafka:   loadKafkaCfg(),
		Minio:   loadMinIOCfg(log),
	}

	switch storage.Backend {
	case StoragePostgres:
		db, err := loadPGDBCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cfg.Db = db
	case StorageRedis:
		redis, err := loadRedisCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cfg.Redis = redis
	}

	pos, err := loadPosCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cfg.Pos = pos

	return cfg, nil
}

func loadStorageCfg() (*StorageCfg, error) {
	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", StorageRedis))
	if backend != StorageRedis && backend != StoragePostgres {
		return nil, e.Wrap(fmt.Sprintf("STORAGE_BACKEND=%s", backend), e.ErrUnknownStorageBackend)
	}

	return &StorageCfg{Backend: backend}, nil
}

func loadPosCfg() (*PosCfg, error) {
	const (
		defaultTaxRateBps      = 1000 // TVA 10%
		defaultReadyBoardLimit = 5
		defaultOrderNumberBase = 1000
	)

	taxRate, err := parseIntEnv("POS_TAX_RATE_BPS", defaultTaxRateBps)
	if err != nil {
		return nil, e.Wrap("POS_TAX_RATE_BPS", err)
	}
	if taxRate < 0 {
		return nil, e.Wrap("POS_TAX_RATE_BPS", e.ErrIncorrectEnvVariable)
	}

	readyLimit, err := parseIntEnv("POS_READY_BOARD_LIMIT", defaultReadyBoardLimit)
	if err != nil {
		return nil, e.Wrap("POS_READY_BOARD_LIMIT", err)
	}
	if readyLimit < 1 {
		return nil, e.Wrap("POS_READY_BOARD_LIMIT", e.ErrIncorrectEnvVariable)
	}

	numberBase, err := parseIntEnv("POS_ORDER_NUMBER_BASE", defaultOrderNumberBase)
	if err != nil {
		return nil, e.Wrap("POS_ORDER_NUMBER_BASE", err)
	}

	return &PosCfg{
		TaxRateBps:      taxRate,
		ReadyBoardLimit: readyLimit,
		OrderNumberBase: numberBase,
	}, nil
}

func loadKafkaCfg() *KafkaCfg {
	const (
		defaultTopic             = "pos.orders"
		defaultPartitions        = 1
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return &KafkaCfg{Enabled: false}
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		partitions = defaultPartitions
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		replicationFactor = defaultReplicationFactor
	}

	return &KafkaCfg{
		Enabled:           true,
		Brokers:           strings.Split(brokerStr, ","),
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadMinIOCfg(log logger.Logger) *MinIOCfg {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	bucket := getEnv("BUCKET_NAME")
	if bucket == "" {
		return &MinIOCfg{Enabled: false}
	}

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Warnf("invalid MINIO_USE_SSL, falling back to %v", defaultUseSSL)
		useSSL = defaultUseSSL
	}

	return &MinIOCfg{
		Enabled:           true,
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost    = "localhost"
		defaultPort    = "5432"
		defaultSSLMode = "disable"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:     getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:     getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  getEnvOrDefault("SSL_MODE", defaultSSLMode),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultKeyPrefix    = "pos"
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		KeyPrefix:   getEnvOrDefault("REDIS_KEY_PREFIX", defaultKeyPrefix),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
