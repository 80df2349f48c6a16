// Package token provides prefixed token generation and hashing.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashLength is the length of a hex-encoded SHA-256 digest.
const HashLength = sha256.Size * 2

// Hash computes the hex-encoded SHA-256 hash of a token.
func Hash(token string) string {
	return HashBytes([]byte(token))
}

// HashBytes computes the hex-encoded SHA-256 hash of data.
func HashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Verify compares a token against an expected hash in constant time.
func Verify(token, expectedHash string) bool {
	return VerifyBytes([]byte(token), expectedHash)
}

// VerifyBytes compares data against an expected hash in constant time.
func VerifyBytes(data []byte, expectedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashBytes(data)), []byte(expectedHash)) == 1
}

// Sign computes a hex-encoded HMAC-SHA256 of token under key. Use it when
// stored hashes must not be reproducible without a server-side secret.
func Sign(key []byte, token string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a Sign result in constant time.
func VerifySignature(key []byte, token, signature string) bool {
	expected := Sign(key, token)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
