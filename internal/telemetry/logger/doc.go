// Package logger provides structured logging for tokgen.
//
// It wraps log/slog:
//
//   - logger.go: handler selection (json, text) and level control
//   - context.go: context-carried logger and request IDs
//   - redact.go: masking of plaintext tokens and secret-looking keys
//
// Generated secrets must never reach a log line in clear text; the
// handler masks values starting with one of Config.SensitivePrefixes and
// fully redacts attributes whose key suggests key material.
package logger
