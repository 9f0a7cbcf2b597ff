package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if cfg.JWT.Expiration != time.Hour {
		t.Errorf("JWT.Expiration = %v", cfg.JWT.Expiration)
	}
	if cfg.Scheduler.Spec != "0 0 3 * * 1" || cfg.Scheduler.Concurrency != 4 {
		t.Errorf("Scheduler = %+v", cfg.Scheduler)
	}
	if cfg.Catalog.CacheTTL != 10*time.Minute || cfg.Catalog.CacheSize != 256 {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.PlanTTL != 24*time.Hour {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
  cors_origins: ["https://app.example.com"]
jwt:
  secret: file-secret
  expiration: 30m
generator:
  seed: 7
redis:
  addr: localhost:6379
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SCHEDULER_ENABLED", "true")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, env must win over file", cfg.JWT.Secret)
	}
	if cfg.JWT.Expiration != 30*time.Minute {
		t.Errorf("JWT.Expiration = %v", cfg.JWT.Expiration)
	}
	if cfg.Generator.Seed != 7 || cfg.Redis.Addr != "localhost:6379" || !cfg.Scheduler.Enabled {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected a parse error")
	}
}
