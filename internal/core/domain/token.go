// Package domain defines the core value types of tokgen.
package domain

import (
	"sort"
	"strings"

	"github.com/yndnr/tokgen-go/pkg/securerand"
)

// TokenKind identifies the purpose of a token.
type TokenKind string

const (
	TokenKindSession TokenKind = "session"
	TokenKindCSRF    TokenKind = "csrf"
	TokenKindAPI     TokenKind = "api"
)

// TokenSpec holds the format of a token kind.
type TokenSpec struct {
	Kind   TokenKind `json:"kind" yaml:"kind"`
	Prefix string    `json:"prefix" yaml:"prefix"`
	Bytes  int       `json:"bytes" yaml:"bytes"`
}

var tokenSpecs = map[TokenKind]TokenSpec{
	TokenKindSession: {Kind: TokenKindSession, Prefix: "tgs_", Bytes: securerand.DefaultEntropyBytes},
	TokenKindCSRF:    {Kind: TokenKindCSRF, Prefix: "tgc_", Bytes: securerand.DefaultEntropyBytes},
	TokenKindAPI:     {Kind: TokenKindAPI, Prefix: "tga_", Bytes: 48},
}

// ParseTokenKind returns the spec for a (case-insensitive) kind name.
func ParseTokenKind(kind string) (TokenSpec, error) {
	spec, ok := tokenSpecs[TokenKind(strings.ToLower(strings.TrimSpace(kind)))]
	if !ok {
		return TokenSpec{}, ErrUnknownTokenKind.WithDetails(kind)
	}
	return spec, nil
}

// TokenSpecs returns all token kinds sorted by name.
func TokenSpecs() []TokenSpec {
	specs := make([]TokenSpec, 0, len(tokenSpecs))
	for _, s := range tokenSpecs {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Kind < specs[j].Kind
	})
	return specs
}

// SensitivePrefixes returns the prefixes of all plaintext token kinds.
func SensitivePrefixes() []string {
	specs := TokenSpecs()
	prefixes := make([]string, len(specs))
	for i, s := range specs {
		prefixes[i] = s.Prefix
	}
	return prefixes
}
