// Package adaptive provides AEAD ciphers for validating generated keys.
package adaptive

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

const chachaKeySize = chacha20poly1305.KeySize

// newChaCha20 builds ChaCha20-Poly1305, or the 24-byte nonce XChaCha20
// variant when extended is set.
func newChaCha20(key []byte, extended bool) (cipher.AEAD, error) {
	if extended {
		return chacha20poly1305.NewX(key)
	}
	return chacha20poly1305.New(key)
}
