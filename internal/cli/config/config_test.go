package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at an empty directory so no user config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("Output.Format = %q, want table", cfg.Output.Format)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Entropy.Bytes != 32 {
		t.Errorf("Entropy.Bytes = %d, want 32", cfg.Entropy.Bytes)
	}
	if cfg.Token.Kind != "session" {
		t.Errorf("Token.Kind = %q, want session", cfg.Token.Kind)
	}
	if cfg.Key.Algorithm != "hmac-sha256" || cfg.Key.Encoding != "hex" {
		t.Errorf("Key = %+v, want hmac-sha256/hex", cfg.Key)
	}
	if cfg.Metrics.File != "" {
		t.Errorf("Metrics.File = %q, want empty", cfg.Metrics.File)
	}
}

func TestLoad_Priority(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, `
output:
  format: json
log:
  level: info
entropy:
  bytes: 16
token:
  kind: csrf
`)

	t.Setenv("TOKGEN_LOG_LEVEL", "debug")
	t.Setenv("TOKGEN_ENTROPY_BYTES", "24")

	cfg, err := Load(path, map[string]any{"output.format": "yaml"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"override beats file", cfg.Output.Format, "yaml"},
		{"env beats file", cfg.Log.Level, "debug"},
		{"env int", cfg.Entropy.Bytes, 24},
		{"file beats default", cfg.Token.Kind, "csrf"},
		{"default kept", cfg.Key.Encoding, "hex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_DefaultPathUsedWhenPresent(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".tokgen")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "token:\n  kind: api\n")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Token.Kind != "api" {
		t.Errorf("Token.Kind = %q, want api", cfg.Token.Kind)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "nope.yaml"), nil); err == nil {
		t.Error("Load() with missing explicit file should fail")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"output format", map[string]any{"output.format": "xml"}},
		{"negative bytes", map[string]any{"entropy.bytes": -1}},
		{"too many bytes", map[string]any{"entropy.bytes": 1<<20 + 1}},
		{"token kind", map[string]any{"token.kind": "bearer"}},
		{"key algorithm", map[string]any{"key.algorithm": "des"}},
		{"key encoding", map[string]any{"key.encoding": "raw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, err := Load("", tt.overrides); err == nil {
				t.Errorf("Load(%v) should fail", tt.overrides)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	home := isolate(t)

	want := filepath.Join(home, ".tokgen", "config.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
