// Package service provides the generation service used by the tokgen CLI.
//
// GeneratorService wraps a securerand.Provider and adds what callers need
// around it: request-scoped logging of failures, operation metrics, domain
// error codes, token kinds and algorithm-sized keys.
//
// Failure policy: an entropy failure is logged with internal detail,
// counted, and returned as domain.ErrEntropySource. No value accompanies
// an error and nothing is retried.
package service
