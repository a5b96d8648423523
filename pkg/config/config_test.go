package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.FRED.Series.Treasury10Y != "DGS10" {
		t.Fatalf("unexpected treasury series %q", cfg.FRED.Series.Treasury10Y)
	}
	if cfg.Yahoo.Tickers.Gold != "GC=F" {
		t.Fatalf("unexpected gold ticker %q", cfg.Yahoo.Tickers.Gold)
	}
	if cfg.Cache.Backend != "memory" {
		t.Fatalf("unexpected cache backend %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.Cache.TTL)
	}
	if cfg.Thresholds.Majority != 3 || cfg.Thresholds.Lookback != 30 {
		t.Fatalf("unexpected thresholds %+v", cfg.Thresholds)
	}
}

func TestLoadRejectsMissingEnvironment(t *testing.T) {
	if _, err := Load(writeConfig(t, "server:\n  port: 9999\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsUnknownCacheBackend(t *testing.T) {
	body := "environment: test\ncache:\n  backend: memcached\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error for backend")
	}
}

func TestLoadRedisBackendRequiresHost(t *testing.T) {
	body := "environment: test\ncache:\n  backend: redis\n"
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error without redis host")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("FRED_API_KEY", "from-env")

	cfg, err := LoadWithEnv(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FRED.APIKey != "from-env" {
		t.Fatalf("expected env override, got %q", cfg.FRED.APIKey)
	}
}
