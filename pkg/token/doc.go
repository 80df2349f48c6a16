// Package token provides prefixed token generation and hashing.
//
// Token format:
//
//   - Prefix: caller supplied, e.g. tgs_ (session) or tgc_ (CSRF)
//   - Body: unpadded base64url encoding of N random bytes
//     (43 characters for the default 32 bytes)
//
// Hash format:
//
//   - 64 characters of lowercase hex-encoded SHA-256
//
// Security:
//
//   - Random bytes come from securerand (OS CSPRNG, no partial reads)
//   - Hash comparison is constant time
//   - Store hashes, never the plaintext token
package token
