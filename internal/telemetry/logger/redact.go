// Package logger provides structured logging for tokgen.
package logger

import (
	"log/slog"
	"strings"
)

// Key name fragments that mark an attribute as secret.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"key",
	"credential",
	"bearer",
}

const redactedValue = "***REDACTED***"

// redactor masks plaintext token values and secrets under sensitive keys.
type redactor struct {
	prefixes []string
}

func newRedactor(prefixes []string) *redactor {
	return &redactor{prefixes: append([]string(nil), prefixes...)}
}

// redact masks prefixed token values (prefix + first/last three
// characters) and fully redacts non-empty strings under sensitive keys.
// Prefix masking takes priority.
func (r *redactor) redact(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		strVal := a.Value.String()
		if masked, ok := r.mask(strVal); ok {
			return slog.String(a.Key, masked)
		}
		if strVal != "" && isSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	case slog.KindAny:
		if b, ok := a.Value.Any().([]byte); ok && len(b) > 0 && isSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = r.redact(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// mask keeps the prefix and three characters on each side of a token.
func (r *redactor) mask(value string) (string, bool) {
	for _, prefix := range r.prefixes {
		if prefix == "" || !strings.HasPrefix(value, prefix) {
			continue
		}
		body := value[len(prefix):]
		if len(body) <= 6 {
			return prefix + "***", true
		}
		return prefix + body[:3] + "..." + body[len(body)-3:], true
	}
	return value, false
}

func isSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
