package app

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"smart-hire/internal/config"
)

func memoryConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		App:      config.AppConfig{AppName: "SmartHire", Environment: "test", HTTPPort: "0"},
		Store:    config.StoreConfig{Driver: config.StoreDriverMemory, SeedOnStart: true},
		Redis:    config.RedisConfig{Enabled: false},
		Matching: config.MatchingConfig{Strategy: "heuristic"},
		Blob:     config.BlobConfig{Driver: config.BlobDriverLocal, Dir: t.TempDir()},
	}
}

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "8080", want: ":8080"},
		{in: ":9000", want: ":9000"},
		{in: " 3000 ", want: ":3000"},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ListenAddr(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ListenAddr(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestNewContainer_MemoryStoreSeedsAndLoads(t *testing.T) {
	c, err := NewContainer(context.Background(), memoryConfig(t), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = c.Close() }()

	if c.DB != nil {
		t.Fatalf("memory driver must not open a database")
	}
	jobs, err := c.Workspace.ListJobs()
	if err != nil || len(jobs) != 2 {
		t.Fatalf("expected 2 seeded jobs, got %d err=%v", len(jobs), err)
	}
}

func TestNewContainer_UnknownStrategy(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Matching.Strategy = "oracle"

	if _, err := NewContainer(context.Background(), cfg, log.New(io.Discard, "", 0)); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestNew_ServesHealthAndAPI(t *testing.T) {
	cfg := memoryConfig(t)
	c, err := NewContainer(context.Background(), cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = c.Close() }()

	a := New(cfg, c)
	for _, path := range []string{"/health", "/api/v1/health", "/api/v1/jobs"} {
		resp, err := a.Fiber.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var body struct {
			Status int `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != 200 || body.Status != 200 {
			t.Fatalf("GET %s: expected 200, got %d/%d", path, resp.StatusCode, body.Status)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatalf("GET %s: missing request id header", path)
		}
	}
}
