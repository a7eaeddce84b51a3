package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lancemnguyen/dataferry/errors"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Size != 10 {
		t.Errorf("Run.Size = %d, want 10", cfg.Run.Size)
	}
	if cfg.Run.Policy != "mixed" {
		t.Errorf("Run.Policy = %q, want %q", cfg.Run.Policy, "mixed")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry should default to disabled")
	}
	if cfg.Telemetry.Endpoint != "localhost:4318" {
		t.Errorf("Telemetry.Endpoint = %q", cfg.Telemetry.Endpoint)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
run:
  size: 0
  capacity: 3
  seed: 42
  policy: integers
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Size != 0 {
		t.Errorf("Run.Size = %d, want 0 (explicit zero must override the default)", cfg.Run.Size)
	}
	if cfg.Run.Capacity != 3 {
		t.Errorf("Run.Capacity = %d, want 3", cfg.Run.Capacity)
	}
	if cfg.Run.Seed != 42 {
		t.Errorf("Run.Seed = %d, want 42", cfg.Run.Seed)
	}
	if cfg.Run.Policy != "integers" {
		t.Errorf("Run.Policy = %q, want %q", cfg.Run.Policy, "integers")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadImplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dataferry.yaml"), "run:\n  size: 77\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Size != 77 {
		t.Errorf("Run.Size = %d, want 77", cfg.Run.Size)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATAFERRY_RUN_SIZE", "25")
	t.Setenv("DATAFERRY_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Size != 25 {
		t.Errorf("Run.Size = %d, want 25", cfg.Run.Size)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "DATAFERRY_RUN_POLICY=reals\n")
	chdir(t, dir)
	// godotenv sets real process env; keep it from leaking into other tests.
	t.Cleanup(func() { os.Unsetenv("DATAFERRY_RUN_POLICY") })

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Policy != "reals" {
		t.Errorf("Run.Policy = %q, want %q", cfg.Run.Policy, "reals")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{"negative size", "run:\n  size: -1\n", "size"},
		{"negative capacity", "run:\n  capacity: -5\n", "capacity"},
		{"bad policy", "run:\n  policy: sorted\n", "policy"},
		{"bad log level", "logging:\n  level: noisy\n", "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			writeFile(t, path, tc.yaml)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Code(err) != errors.ErrCodeInvalidInput {
				t.Errorf("Code = %q, want INVALID_INPUT", errors.Code(err))
			}
			if !strings.Contains(strings.ToLower(err.Error()), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if errors.Code(err) != errors.ErrCodeInvalidInput {
		t.Errorf("Code = %q, want INVALID_INPUT", errors.Code(err))
	}
}

// --- helpers ---

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
