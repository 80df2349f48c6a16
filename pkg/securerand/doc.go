// Package securerand produces random bytes and URL-safe tokens from the
// operating system's CSPRNG.
//
// Every value is read from a Source (crypto/rand.Reader by default) in a
// single logical read. A short read is a failure: the caller receives an
// *EntropySourceError and never a partially filled buffer.
//
// Encoding:
//
//   - GenerateRandomString: base64 URL alphabet with '=' padding,
//     ceil(n/3)*4 characters (32 bytes -> 44 characters)
//   - GenerateRawString: base64 URL alphabet without padding
//
// Length handling:
//
//   - count < 0 returns ErrInvalidLength
//   - count == 0 returns an empty value without touching the source
//   - count > MaxBytes (1 MiB) returns ErrTooLarge without allocating
//
// Sizing:
//
//   - DefaultEntropyBytes (32 bytes, 256 bits) is enough for session
//     identifiers and CSRF tokens
//   - HMAC and cipher keys must be sized to the algorithm's key length
package securerand
