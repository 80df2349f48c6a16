package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yndnr/tokgen-go/internal/cli/config"
)

func TestConfigShow(t *testing.T) {
	stdout, _, err := run(t, nil, "config", "show")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"KEY", "output.format", "table", "entropy.bytes", "32", "metrics.file"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigShow_JSON(t *testing.T) {
	stdout, _, err := run(t, nil, "-o", "json", "--log-level", "debug", "config", "show")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got config.Config
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Output.Format != "json" || got.Log.Level != "debug" {
		t.Errorf("flags not applied: %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("token:\n  kind: csrf\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("token:\n  kind: bearer\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, nil, "config", "validate", good)
	if err != nil {
		t.Fatalf("validate good: %v", err)
	}
	if !strings.Contains(stdout, "ok") {
		t.Errorf("stdout = %q, want ok", stdout)
	}

	if _, _, err := run(t, nil, "config", "validate", bad); err == nil {
		t.Error("validate bad: expected error")
	}
}
