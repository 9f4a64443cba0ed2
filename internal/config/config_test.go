package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":  "smart-hire",
		"APP_ENV":   "test",
		"HTTP_PORT": "8080",
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(baseEnv()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres || !cfg.Store.SeedOnStart {
		t.Fatalf("unexpected store config %#v", cfg.Store)
	}
	if cfg.Matching.Strategy != "heuristic" {
		t.Fatalf("unexpected strategy %q", cfg.Matching.Strategy)
	}
	if cfg.Redis.TTL != 600*time.Second || cfg.Redis.Host != "localhost" {
		t.Fatalf("unexpected redis config %#v", cfg.Redis)
	}
	if cfg.Blob.Driver != BlobDriverLocal || cfg.Blob.Dir != "uploads" {
		t.Fatalf("unexpected blob config %#v", cfg.Blob)
	}
	if cfg.App.BodyLimit != 20*1024*1024 {
		t.Fatalf("unexpected body limit %d", cfg.App.BodyLimit)
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	_, err := FromEnv(envFrom(map[string]string{"APP_NAME": "x"}))
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing env error, got %v", err)
	}
	if !strings.Contains(err.Error(), "APP_ENV") || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("expected missing keys in error, got %v", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	env := baseEnv()
	env["STORE_DRIVER"] = "MEMORY"
	env["SEED_ON_START"] = "false"
	env["MATCH_STRATEGY"] = "Random"
	env["REDIS_TTL"] = "30"
	env["DB_POOL_MAX_CONNS"] = "8"

	cfg, err := FromEnv(envFrom(env))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Store.Driver != StoreDriverMemory || cfg.Store.SeedOnStart {
		t.Fatalf("unexpected store config %#v", cfg.Store)
	}
	if cfg.Matching.Strategy != "random" {
		t.Fatalf("unexpected strategy %q", cfg.Matching.Strategy)
	}
	if cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("unexpected ttl %s", cfg.Redis.TTL)
	}
	if cfg.Database.PoolMaxConns != 8 {
		t.Fatalf("unexpected pool size %d", cfg.Database.PoolMaxConns)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	env := baseEnv()
	env["STORE_DRIVER"] = "sqlite"
	env["REDIS_TTL"] = "soon"
	_, err := FromEnv(envFrom(env))
	if err == nil || !strings.Contains(err.Error(), "STORE_DRIVER") || !strings.Contains(err.Error(), "REDIS_TTL") {
		t.Fatalf("expected invalid env error, got %v", err)
	}
}

func TestFromEnv_S3RequiresBucket(t *testing.T) {
	env := baseEnv()
	env["BLOB_DRIVER"] = "s3"
	_, err := FromEnv(envFrom(env))
	if !errors.Is(err, errMissingRequiredEnv) || !strings.Contains(err.Error(), "S3_BUCKET") {
		t.Fatalf("expected missing bucket error, got %v", err)
	}
}
