// Package adaptive provides AEAD ciphers for validating generated keys.
package adaptive

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"fmt"
	"runtime"

	"github.com/yndnr/tokgen-go/pkg/securerand"
)

// Algorithm identifies an AEAD construction.
type Algorithm string

const (
	AES128GCM         Algorithm = "aes-128-gcm"
	AES192GCM         Algorithm = "aes-192-gcm"
	AES256GCM         Algorithm = "aes-256-gcm"
	ChaCha20Poly1305  Algorithm = "chacha20-poly1305"
	XChaCha20Poly1305 Algorithm = "xchacha20-poly1305"
)

var (
	// ErrUnknownAlgorithm is returned for unsupported algorithm names.
	ErrUnknownAlgorithm = errors.New("adaptive: unknown algorithm")

	// ErrKeySize is returned when the key length does not match the algorithm.
	ErrKeySize = errors.New("adaptive: invalid key size")

	// ErrCiphertextTooShort is returned by Open for truncated input.
	ErrCiphertextTooShort = errors.New("adaptive: ciphertext too short")

	// ErrSelfTest is returned when a seal/open round trip does not match.
	ErrSelfTest = errors.New("adaptive: self-test failed")
)

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AES128GCM, AES192GCM, AES256GCM, ChaCha20Poly1305, XChaCha20Poly1305}
}

// KeySize returns the required key length in bytes.
func KeySize(alg Algorithm) (int, error) {
	switch alg {
	case AES128GCM:
		return 16, nil
	case AES192GCM:
		return 24, nil
	case AES256GCM:
		return 32, nil
	case ChaCha20Poly1305, XChaCha20Poly1305:
		return chachaKeySize, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// Preferred returns AES-256-GCM where Go uses hardware AES (amd64, arm64)
// and ChaCha20-Poly1305 elsewhere.
func Preferred() Algorithm {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return AES256GCM
	default:
		return ChaCha20Poly1305
	}
}

// Cipher is an AEAD bound to a key and a nonce source.
type Cipher struct {
	alg    Algorithm
	aead   cipher.AEAD
	nonces *securerand.Provider
}

// New creates a Cipher. A nil provider selects securerand.Default().
func New(alg Algorithm, key []byte, p *securerand.Provider) (*Cipher, error) {
	size, err := KeySize(alg)
	if err != nil {
		return nil, err
	}
	if len(key) != size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrKeySize, alg, size, len(key))
	}

	var aead cipher.AEAD
	switch alg {
	case AES128GCM, AES192GCM, AES256GCM:
		aead, err = newAESGCM(key)
	case ChaCha20Poly1305:
		aead, err = newChaCha20(key, false)
	case XChaCha20Poly1305:
		aead, err = newChaCha20(key, true)
	}
	if err != nil {
		return nil, err
	}

	if p == nil {
		p = securerand.Default()
	}
	return &Cipher{alg: alg, aead: aead, nonces: p}, nil
}

// Algorithm returns the cipher's algorithm.
func (c *Cipher) Algorithm() Algorithm {
	return c.alg
}

// NonceSize returns the nonce size in bytes.
func (c *Cipher) NonceSize() int {
	return c.aead.NonceSize()
}

// Overhead returns the authentication tag size in bytes.
func (c *Cipher) Overhead() int {
	return c.aead.Overhead()
}

// Seal encrypts plaintext with a fresh random nonce prepended to the output.
func (c *Cipher) Seal(plaintext, additionalData []byte) ([]byte, error) {
	nonce, err := c.nonces.GenerateRandomBytes(c.aead.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Open decrypts output produced by Seal.
func (c *Cipher) Open(sealed, additionalData []byte) ([]byte, error) {
	ns := c.aead.NonceSize()
	if len(sealed) < ns+c.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	return c.aead.Open(nil, sealed[:ns], sealed[ns:], additionalData)
}

// SelfTest seals and opens a random sample and checks the round trip.
func (c *Cipher) SelfTest() error {
	sample, err := c.nonces.GenerateRandomBytes(32)
	if err != nil {
		return fmt.Errorf("generate sample: %w", err)
	}
	aad := []byte(c.alg)

	sealed, err := c.Seal(sample, aad)
	if err != nil {
		return err
	}
	opened, err := c.Open(sealed, aad)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	if !bytes.Equal(opened, sample) {
		return ErrSelfTest
	}
	return nil
}
