package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "MODEL_PATH", "EXPORT_DIR", "PDF_ENGINE", "MAX_SKILLS", "RANK_CATEGORY_WEIGHT", "SESSION_MAX_DOCUMENTS"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.ModelPath != DefaultModelPath {
		t.Fatalf("unexpected model path %q", cfg.ModelPath)
	}
	if cfg.ExportDir != "" {
		t.Fatalf("expected export dir disabled, got %q", cfg.ExportDir)
	}
	if cfg.MaxSkills != 12 || cfg.RankCategoryWeight != 0.35 || cfg.SessionMaxDocuments != DefaultSessionMaxDocuments || cfg.MaxSessions != DefaultMaxSessions {
		t.Fatalf("unexpected numeric defaults: %+v", cfg)
	}
}

func TestLoadOverridesAndInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("MAX_SKILLS", "5")
	t.Setenv("RANK_JOB_OVERLAP_WEIGHT", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.MaxSkills != 5 || cfg.RankJobOverlapWeight != 2.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RateLimitBurst != 10 {
		t.Fatalf("expected fallback burst, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("EXPORT_DIR", "")
	os.Unsetenv("EXPORT_DIR")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXPORT_DIR=./exports\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg := Load()
	if cfg.ExportDir != "./exports" {
		t.Fatalf("expected EXPORT_DIR from .env, got %q", cfg.ExportDir)
	}
}
