// Package main provides the entry point for tokgen.
//
// tokgen generates cryptographically secure random values from the
// operating system entropy source:
//
//   - Random bytes and URL-safe base64 strings
//   - Prefixed session, CSRF and API tokens with their storage hashes
//   - Key material sized for HMAC and AEAD algorithms
//   - ULID correlation IDs
//
// Usage:
//
//	tokgen string 32
//	tokgen token --kind csrf
//	tokgen -o json key aes-256-gcm
//	tokgen --metrics-file /var/lib/node_exporter/tokgen.prom id
package main
