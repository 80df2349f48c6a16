package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Output struct {
		Format string `koanf:"format"`
	} `koanf:"output"`
	Entropy struct {
		Bytes int `koanf:"bytes"`
	} `koanf:"entropy"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(WithEnvPrefix("TEST_"), WithConfigFile("/path/to/config.yaml"))
	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want TEST_", l.envPrefix)
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q", l.filePath)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
output:
  format: yaml
entropy:
  bytes: 48
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := l.GetString("output.format"); got != "yaml" {
		t.Errorf("output.format = %q, want yaml", got)
	}
	if got := l.GetInt("entropy.bytes"); got != 48 {
		t.Errorf("entropy.bytes = %d, want 48", got)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/tokgen.yaml"); err == nil {
		t.Error("LoadFile() should fail for missing file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") error = %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("TOKGEN_LOG_LEVEL", "debug")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := l.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("CUSTOM_OUTPUT_FORMAT", "json")

	l := NewLoader(WithEnvPrefix("CUSTOM_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatal(err)
	}
	if got := l.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, want json", got)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"entropy.bytes": 16, "log.level": "error"}); err != nil {
		t.Fatal(err)
	}
	if got := l.GetInt("entropy.bytes"); got != 16 {
		t.Errorf("entropy.bytes = %d, want 16", got)
	}
	if got := l.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q, want error", got)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
output:
  format: yaml
entropy:
  bytes: 48
log:
  level: info
`)
	t.Setenv("TOKGEN_ENTROPY_BYTES", "64")

	l := NewLoader(
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"output.format": "table",
			"entropy.bytes": 32,
			"log.level":     "warn",
		}),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "yaml" {
		t.Errorf("file should override default: format = %q", cfg.Output.Format)
	}
	if cfg.Entropy.Bytes != 64 {
		t.Errorf("env should override file: bytes = %d", cfg.Entropy.Bytes)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("override should win: level = %q", cfg.Log.Level)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() = false after Load")
	}
}

func TestLoader_Load_DefaultsOnly(t *testing.T) {
	l := NewLoader(WithEnvPrefix("TOKGEN_TEST_UNSET_"), WithDefaults(map[string]any{"entropy.bytes": 32}))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Entropy.Bytes != 32 {
		t.Errorf("bytes = %d, want 32", cfg.Entropy.Bytes)
	}
	if len(l.Keys()) != 1 || len(l.All()) != 1 {
		t.Errorf("Keys() = %v", l.Keys())
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "output: [unterminated")
	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := mapProvider(nil).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v", err)
	}
}
