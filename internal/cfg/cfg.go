package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http  *HTTPConfig
	Redis *RedisCfg
	Minio *MinIOCfg
	Auth  *AuthCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	// DeleteMarkTTL ограничивает время жизни метки product_delete:<id>,
	// чтобы прерванное удаление не блокировало товар навсегда.
	DeleteMarkTTL time.Duration
}

type MinIOCfg struct {
	Endpoint          string // Адрес конечной точки MinIO
	PublicURL         string // Базовый публичный URL, под которым бакет доступен снаружи
	BucketName        string // Название бакета с изображениями товаров
	RootUser          string // Имя пользователя для доступа к MinIO
	RootPassword      string // Пароль для доступа к MinIO
	UseSSL            bool
	UploadImagesLimit int // Лимит одновременных загрузок в S3
}

type AuthCfg struct {
	JWTSecret       []byte
	TokenTTL        time.Duration
	DefaultUsername string // Пара по умолчанию, которой лениво
	DefaultPassword string // заполняется admin:credentials при первом входе
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	auth, err := loadAuthCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:  http,
		Redis: redis,
		Minio: minio,
		Auth:  auth,
	}, nil
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

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr          = "localhost:6379"
		defaultDB            = 0
		defaultMaxRetries    = 3
		defaultDialTimeout   = 5 * time.Second
		defaultReadTimeout   = 3 * time.Second
		defaultWriteTimeout  = 3 * time.Second
		defaultDeleteMarkTTL = 5 * time.Minute
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

	deleteMarkTTL, err := parseDurationEnv("DELETE_MARK_TTL", defaultDeleteMarkTTL)
	if err != nil {
		log.Errorf(err, "invalid DELETE_MARK_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:          addr,
		Password:      password,
		User:          user,
		DB:            db,
		MaxRetries:    maxRetries,
		DialTimeout:   dialTimeout,
		Timeout:       timeout,
		DeleteMarkTTL: deleteMarkTTL,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
		defaultBucket   = "product-images"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	endpoint := getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint)

	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	publicURL := getEnvOrDefault("MINIO_PUBLIC_URL", scheme+"://"+endpoint)

	return &MinIOCfg{
		Endpoint:          endpoint,
		PublicURL:         strings.TrimRight(publicURL, "/"),
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		RootUser:          getEnv("MINIO_ROOT_USER"),
		RootPassword:      getEnv("MINIO_ROOT_PASSWORD"),
		UseSSL:            useSSL,
		UploadImagesLimit: 10,
	}, nil
}

func loadAuthCfg() (*AuthCfg, error) {
	const (
		defaultTokenTTL = 24 * time.Hour
		defaultUsername = "admin"
		defaultPassword = "admin123"
	)

	secret := getEnv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	tokenTTL, err := parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, e.Wrap("TOKEN_TTL", err)
	}

	return &AuthCfg{
		JWTSecret:       []byte(secret),
		TokenTTL:        tokenTTL,
		DefaultUsername: getEnvOrDefault("ADMIN_USERNAME", defaultUsername),
		DefaultPassword: getEnvOrDefault("ADMIN_PASSWORD", defaultPassword),
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
