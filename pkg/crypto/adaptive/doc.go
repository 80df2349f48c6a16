// Package adaptive provides AEAD ciphers for validating generated keys.
//
// Supported algorithms:
//
//   - aes-128-gcm, aes-192-gcm, aes-256-gcm (crypto/aes)
//   - chacha20-poly1305, xchacha20-poly1305 (golang.org/x/crypto)
//
// Nonces are drawn from a securerand.Provider, so a failing entropy source
// surfaces as an error from Seal instead of a reused or zero nonce.
//
// Usage:
//
//	c, err := adaptive.New(adaptive.AES256GCM, key, provider)
//	sealed, err := c.Seal(plaintext, aad)
//	plaintext, err := c.Open(sealed, aad)
package adaptive
