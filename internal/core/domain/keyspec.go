// Package domain defines the core value types of tokgen.
package domain

import (
	"sort"
	"strings"

	"github.com/yndnr/tokgen-go/pkg/crypto/adaptive"
)

// KeyUsage classifies how key material is consumed.
type KeyUsage string

const (
	KeyUsageMAC  KeyUsage = "mac"
	KeyUsageAEAD KeyUsage = "aead"
)

// KeySpec describes a key algorithm and its required key length.
type KeySpec struct {
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Usage     KeyUsage `json:"usage" yaml:"usage"`
	Size      int      `json:"size" yaml:"size"`
}

// HMAC keys match the hash output size; AEAD keys match the cipher key.
var keySpecs = map[string]KeySpec{
	"hmac-sha256": {Algorithm: "hmac-sha256", Usage: KeyUsageMAC, Size: 32},
	"hmac-sha384": {Algorithm: "hmac-sha384", Usage: KeyUsageMAC, Size: 48},
	"hmac-sha512": {Algorithm: "hmac-sha512", Usage: KeyUsageMAC, Size: 64},

	string(adaptive.AES128GCM):         {Algorithm: string(adaptive.AES128GCM), Usage: KeyUsageAEAD, Size: 16},
	string(adaptive.AES192GCM):         {Algorithm: string(adaptive.AES192GCM), Usage: KeyUsageAEAD, Size: 24},
	string(adaptive.AES256GCM):         {Algorithm: string(adaptive.AES256GCM), Usage: KeyUsageAEAD, Size: 32},
	string(adaptive.ChaCha20Poly1305):  {Algorithm: string(adaptive.ChaCha20Poly1305), Usage: KeyUsageAEAD, Size: 32},
	string(adaptive.XChaCha20Poly1305): {Algorithm: string(adaptive.XChaCha20Poly1305), Usage: KeyUsageAEAD, Size: 32},
}

// LookupKeySpec returns the spec for a (case-insensitive) algorithm name.
func LookupKeySpec(algorithm string) (KeySpec, error) {
	spec, ok := keySpecs[strings.ToLower(strings.TrimSpace(algorithm))]
	if !ok {
		return KeySpec{}, ErrUnknownAlgorithm.WithDetails(algorithm)
	}
	return spec, nil
}

// KeySpecs returns all known specs sorted by algorithm name.
func KeySpecs() []KeySpec {
	specs := make([]KeySpec, 0, len(keySpecs))
	for _, s := range keySpecs {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Algorithm < specs[j].Algorithm
	})
	return specs
}
