// Package token provides prefixed token generation and hashing.
package token

import (
	"encoding/base64"
	"strings"

	"github.com/yndnr/tokgen-go/pkg/securerand"
)

// DefaultLength is the default token entropy in bytes.
const DefaultLength = securerand.DefaultEntropyBytes

// Generator creates prefixed tokens from a securerand Provider.
type Generator struct {
	rand *securerand.Provider
}

// NewGenerator creates a Generator. A nil provider selects securerand.Default().
func NewGenerator(p *securerand.Provider) *Generator {
	if p == nil {
		p = securerand.Default()
	}
	return &Generator{rand: p}
}

// Generate returns prefix followed by DefaultLength random bytes,
// base64 RawURL encoded.
func (g *Generator) Generate(prefix string) (string, error) {
	return g.GenerateWithLength(prefix, DefaultLength)
}

// GenerateWithLength generates a token with the specified entropy length.
func (g *Generator) GenerateWithLength(prefix string, length int) (string, error) {
	body, err := g.rand.GenerateRawString(length)
	if err != nil {
		return "", err
	}
	return prefix + body, nil
}

// Generate generates a token using the default provider.
func Generate(prefix string) (string, error) {
	return NewGenerator(nil).Generate(prefix)
}

// GenerateWithLength generates a token with the given entropy length using
// the default provider.
func GenerateWithLength(prefix string, length int) (string, error) {
	return NewGenerator(nil).GenerateWithLength(prefix, length)
}

// Length returns the total token length for a prefix and entropy length.
func Length(prefix string, length int) int {
	return len(prefix) + securerand.RawEncodedLen(length)
}

// ValidateFormat reports whether token has the given prefix and a body
// that decodes to exactly length bytes.
func ValidateFormat(token, prefix string, length int) bool {
	if len(token) != Length(prefix, length) {
		return false
	}
	if !strings.HasPrefix(token, prefix) {
		return false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(token[len(prefix):])
	return err == nil && len(decoded) == length
}
