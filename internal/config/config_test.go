package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := writeFile(t, "stepform.yaml", `
storage:
  driver: sqlite
  dsn: /tmp/forms.db
  key: contactForm
  redis:
    ttl: 30m
log:
  level: debug
  format: json
ui:
  output: json
theme:
  name: acme
  tokens:
    brand: "#123456"
`)
	t.Setenv("STEPFORM_LOG_LEVEL", "warn")
	t.Setenv("STEPFORM_STORAGE_REDIS_PREFIX", "forms:")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Storage.Driver != "sqlite" || cfg.Storage.DSN != "/tmp/forms.db" || cfg.Storage.Key != "contactForm" {
		t.Fatalf("storage not loaded from yaml: %+v", cfg.Storage)
	}
	if cfg.Storage.Redis.TTL != 30*time.Minute {
		t.Fatalf("expected redis ttl 30m, got %s", cfg.Storage.Redis.TTL)
	}
	if cfg.Storage.Redis.Prefix != "forms:" {
		t.Fatalf("expected env override of redis prefix, got %q", cfg.Storage.Redis.Prefix)
	}
	if cfg.Storage.Redis.URL != Default().Storage.Redis.URL {
		t.Fatalf("expected redis url default kept, got %q", cfg.Storage.Redis.URL)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if !cfg.Theme.Enabled() || cfg.Theme.Tokens["brand"] != "#123456" {
		t.Fatalf("unexpected theme config %+v", cfg.Theme)
	}
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Setenv("STEPFORM_STORAGE_DRIVER", "")
	os.Unsetenv("STEPFORM_STORAGE_DRIVER")
	envFile := writeFile(t, ".env", "STEPFORM_STORAGE_DRIVER=memory\n")

	cfg, err := Load("", envFile, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("expected driver from .env, got %q", cfg.Storage.Driver)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, ErrReadConfig) {
		t.Fatalf("expected ErrReadConfig, got %v", err)
	}

	bad := writeFile(t, "bad.yaml", "storage: [unclosed")
	if _, err := Load(bad); !errors.Is(err, ErrParseConfig) {
		t.Fatalf("expected ErrParseConfig, got %v", err)
	}

	invalid := writeFile(t, "invalid.yaml", "storage:\n  driver: etcd\nlog:\n  level: loud\nui:\n  output: xml\n")
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	for _, fragment := range []string{"storage.driver", "log.level", "ui.output"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected %q in %v", fragment, err)
		}
	}

	t.Setenv("STEPFORM_STORAGE_REDIS_TTL", "soon")
	if _, err := Load(""); !errors.Is(err, ErrParseEnv) {
		t.Fatalf("expected ErrParseEnv, got %v", err)
	}
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("expected JSON record, got %s", out)
	}
}
