// Package domain defines the core value types of tokgen.
package domain

import (
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDPrefix is the prefix of correlation identifiers.
const IDPrefix = "tgid-"

// IDLength is the total ID length: tgid- (5) + ULID (26).
const IDLength = len(IDPrefix) + ulid.EncodedSize

// NewID generates a lowercase prefixed ULID using entropy read from r.
// Pass securerand.Provider.Reader() so that a failing source surfaces here.
func NewID(now time.Time, r io.Reader) (string, error) {
	id, err := ulid.New(ulid.Timestamp(now), r)
	if err != nil {
		return "", err
	}
	return IDPrefix + strings.ToLower(id.String()), nil
}

// IsValidID reports whether id is a well-formed correlation identifier.
func IsValidID(id string) bool {
	id = strings.ToLower(id)
	if len(id) != IDLength || !strings.HasPrefix(id, IDPrefix) {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(id[len(IDPrefix):]))
	return err == nil
}

// IDTime extracts the timestamp embedded in a valid identifier.
func IDTime(id string) (time.Time, bool) {
	if !IsValidID(id) {
		return time.Time{}, false
	}
	u, err := ulid.ParseStrict(strings.ToUpper(id[len(IDPrefix):]))
	if err != nil {
		return time.Time{}, false
	}
	return ulid.Time(u.Time()), true
}
