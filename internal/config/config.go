package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	BlobDriverLocal = "local"
	BlobDriverS3    = "s3"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Matching MatchingConfig
	Blob     BlobConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	// BodyLimit caps request bodies, résumé uploads included.
	BodyLimit int
}

type StoreConfig struct {
	Driver      string
	SeedOnStart bool
}

type DatabaseConfig struct {
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type MatchingConfig struct {
	Strategy string
}

type BlobConfig struct {
	Driver string
	Dir    string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		BodyLimit:   optInt("HTTP_BODY_LIMIT_MB", 20) * 1024 * 1024,
	}

	cfg.Store = StoreConfig{
		Driver:      strings.ToLower(opt("STORE_DRIVER", StoreDriverPostgres)),
		SeedOnStart: optBool("SEED_ON_START", true),
	}

	cfg.Database = DatabaseConfig{
		DatabaseURL:           opt("DATABASE_URL", ""),
		DBHost:                opt("DB_HOST", ""),
		DBPort:                opt("DB_PORT", ""),
		DBName:                opt("DB_NAME", ""),
		DBUser:                opt("DB_USER", ""),
		DBPassword:            opt("DB_PASSWORD", ""),
		DBSSLMode:             opt("DB_SSL_MODE", ""),
		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", true),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Matching = MatchingConfig{
		Strategy: strings.ToLower(opt("MATCH_STRATEGY", "heuristic")),
	}

	cfg.Blob = BlobConfig{
		Driver:            strings.ToLower(opt("BLOB_DRIVER", BlobDriverLocal)),
		Dir:               opt("BLOB_DIR", "uploads"),
		S3Bucket:          opt("S3_BUCKET", ""),
		S3Region:          opt("S3_REGION", "auto"),
		S3Endpoint:        opt("S3_ENDPOINT", ""),
		S3AccessKeyID:     opt("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: opt("S3_SECRET_ACCESS_KEY", ""),
	}

	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}
	switch cfg.Blob.Driver {
	case BlobDriverLocal:
	case BlobDriverS3:
		if cfg.Blob.S3Bucket == "" {
			missing = append(missing, "S3_BUCKET")
		}
	default:
		invalid = append(invalid, "BLOB_DRIVER")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
