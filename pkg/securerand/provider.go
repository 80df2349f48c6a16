// Package securerand produces random bytes and URL-safe tokens from the OS CSPRNG.
package securerand

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// DefaultEntropyBytes is the default amount of entropy for identifiers
// (session IDs, CSRF tokens): 32 bytes, 256 bits.
const DefaultEntropyBytes = 32

// MaxBytes caps a single request. Larger counts return ErrTooLarge.
const MaxBytes = 1 << 20

// Source is an entropy source. Implementations must be safe for concurrent
// use; crypto/rand.Reader is.
type Source = io.Reader

// Observer is notified about the outcome of every read from the source.
type Observer interface {
	ObserveRead(n int)
	ObserveFailure(err *EntropySourceError)
}

// Provider generates random values from a Source.
//
// A Provider holds no mutable state and may be shared between goroutines.
type Provider struct {
	source   Source
	observer Observer
}

// Option configures a Provider.
type Option func(*Provider)

// WithSource replaces the entropy source. Intended for tests that need to
// simulate short reads or failures.
func WithSource(src Source) Option {
	return func(p *Provider) {
		if src != nil {
			p.source = src
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(p *Provider) {
		p.observer = o
	}
}

// New creates a Provider reading from crypto/rand.Reader unless overridden.
func New(opts ...Option) *Provider {
	p := &Provider{source: rand.Reader}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GenerateRandomBytes returns exactly count bytes from the entropy source.
//
// Any failure to fill the buffer completely yields an *EntropySourceError
// and a nil slice. The error must not be retried silently.
func (p *Provider) GenerateRandomBytes(count int) ([]byte, error) {
	if count < 0 {
		return nil, ErrInvalidLength
	}
	if count > MaxBytes {
		return nil, ErrTooLarge
	}

	buf := make([]byte, count)
	if count == 0 {
		return buf, nil
	}

	n, err := io.ReadFull(p.source, buf)
	if err != nil {
		clear(buf)
		ese := &EntropySourceError{Requested: count, Read: n, Err: err}
		if p.observer != nil {
			p.observer.ObserveFailure(ese)
		}
		return nil, ese
	}

	if p.observer != nil {
		p.observer.ObserveRead(n)
	}
	return buf, nil
}

// GenerateRandomString returns byteCount random bytes encoded with padded
// URL-safe base64. The result is EncodedLen(byteCount) characters long.
//
// On failure the returned string is empty.
func (p *Provider) GenerateRandomString(byteCount int) (string, error) {
	b, err := p.GenerateRandomBytes(byteCount)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GenerateRawString is GenerateRandomString without '=' padding.
func (p *Provider) GenerateRawString(byteCount int) (string, error) {
	b, err := p.GenerateRandomBytes(byteCount)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Reader returns an io.Reader that fills each buffer completely or fails
// with an *EntropySourceError. Use it as the entropy input of other
// primitives (ULIDs, AEAD nonces).
func (p *Provider) Reader() io.Reader {
	return providerReader{p: p}
}

type providerReader struct {
	p *Provider
}

func (r providerReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	out, err := r.p.GenerateRandomBytes(len(b))
	if err != nil {
		return 0, err
	}
	return copy(b, out), nil
}

// EncodedLen returns the length of GenerateRandomString's output for
// byteCount bytes.
func EncodedLen(byteCount int) int {
	if byteCount <= 0 {
		return 0
	}
	return base64.URLEncoding.EncodedLen(byteCount)
}

// RawEncodedLen returns the length of GenerateRawString's output.
func RawEncodedLen(byteCount int) int {
	if byteCount <= 0 {
		return 0
	}
	return base64.RawURLEncoding.EncodedLen(byteCount)
}

// DecodeString reverses GenerateRandomString.
func DecodeString(token string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(token)
}

// DecodeRawString reverses GenerateRawString.
func DecodeRawString(token string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(token)
}

var defaultProvider = New()

// Default returns the package-level Provider backed by crypto/rand.Reader.
func Default() *Provider {
	return defaultProvider
}

// Bytes calls GenerateRandomBytes on the default Provider.
func Bytes(count int) ([]byte, error) {
	return defaultProvider.GenerateRandomBytes(count)
}

// String calls GenerateRandomString on the default Provider.
func String(byteCount int) (string, error) {
	return defaultProvider.GenerateRandomString(byteCount)
}
