// Package config defines the tokgen CLI configuration.
package config

import (
	"fmt"

	"github.com/yndnr/tokgen-go/internal/cli/output"
	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/pkg/securerand"
)

// Config is the configuration for tokgen.
type Config struct {
	Output  OutputConfig  `koanf:"output" json:"output" yaml:"output"`
	Log     LogConfig     `koanf:"log" json:"log" yaml:"log"`
	Entropy EntropyConfig `koanf:"entropy" json:"entropy" yaml:"entropy"`
	Token   TokenConfig   `koanf:"token" json:"token" yaml:"token"`
	Key     KeyConfig     `koanf:"key" json:"key" yaml:"key"`
	Metrics MetricsConfig `koanf:"metrics" json:"metrics" yaml:"metrics"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"` // json, text
}

// EntropyConfig sets the default byte count for bytes and string.
type EntropyConfig struct {
	Bytes int `koanf:"bytes" json:"bytes" yaml:"bytes"`
}

// TokenConfig sets the default token kind.
type TokenConfig struct {
	Kind string `koanf:"kind" json:"kind" yaml:"kind"`
}

// KeyConfig sets the default key algorithm and encoding.
type KeyConfig struct {
	Algorithm string `koanf:"algorithm" json:"algorithm" yaml:"algorithm"`
	Encoding  string `koanf:"encoding" json:"encoding" yaml:"encoding"` // hex, base64, base64url
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	File string `koanf:"file" json:"file" yaml:"file"`
}

// Defaults returns the default values keyed by dotted path.
func Defaults() map[string]any {
	return map[string]any{
		"output.format": string(output.FormatTable),
		"log.level":     "warn",
		"log.format":    "text",
		"entropy.bytes": securerand.DefaultEntropyBytes,
		"token.kind":    string(domain.TokenKindSession),
		"key.algorithm": "hmac-sha256",
		"key.encoding":  "hex",
		"metrics.file":  "",
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Entropy.Bytes < 0 || c.Entropy.Bytes > securerand.MaxBytes {
		return fmt.Errorf("entropy.bytes must be between 0 and %d, got %d", securerand.MaxBytes, c.Entropy.Bytes)
	}
	if _, err := domain.ParseTokenKind(c.Token.Kind); err != nil {
		return fmt.Errorf("token.kind: %w", err)
	}
	if _, err := domain.LookupKeySpec(c.Key.Algorithm); err != nil {
		return fmt.Errorf("key.algorithm: %w", err)
	}
	switch c.Key.Encoding {
	case "hex", "base64", "base64url":
	default:
		return fmt.Errorf("key.encoding must be hex, base64 or base64url, got %q", c.Key.Encoding)
	}
	return nil
}
