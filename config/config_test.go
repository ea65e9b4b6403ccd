package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_BACKEND", "REDIS_HOST", "ARCHIVE_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != "memory" {
		t.Errorf("StoreBackend = %q, want memory", cfg.StoreBackend)
	}
	if cfg.RedisHost != "localhost" || cfg.RedisPort != "6379" {
		t.Errorf("redis = %s:%s, want localhost:6379", cfg.RedisHost, cfg.RedisPort)
	}
	if cfg.ArchiveEnabled {
		t.Error("archive enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("ARCHIVE_ENABLED", "true")
	t.Setenv("DB_NAME", "timeline_test")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.StoreBackend != "redis" {
		t.Errorf("StoreBackend = %q, want redis", cfg.StoreBackend)
	}
	if cfg.RedisHost != "redis.internal" {
		t.Errorf("RedisHost = %q", cfg.RedisHost)
	}
	if !cfg.ArchiveEnabled {
		t.Error("ARCHIVE_ENABLED=true not honored")
	}
	if cfg.DBName != "timeline_test" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
}
