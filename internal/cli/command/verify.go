// Package command provides CLI command definitions for tokgen.
package command

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/pkg/token"
)

// Digest algorithms reported by hash and verify.
const (
	DigestSHA256     = "sha256"
	DigestHMACSHA256 = "hmac-sha256"
)

// HashResult is the output of the hash command.
type HashResult struct {
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Hash      string `json:"hash" yaml:"hash"`
}

// VerifyResult is the output of a successful verify command.
type VerifyResult struct {
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Valid     bool   `json:"valid" yaml:"valid"`
}

func hmacKeyFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "hmac-key-file",
		Usage:   "Hex-encoded HMAC-SHA256 key file (as written by 'tokgen key hmac-sha256'); signs instead of hashing",
		EnvVars: []string{"TOKGEN_HMAC_KEY_FILE"},
	}
}

// HashCommand returns the hash command.
func HashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the SHA-256 storage hash (or HMAC signature) of a token",
		ArgsUsage: "TOKEN",
		Flags:     []cli.Flag{hmacKeyFileFlag()},
		Action:    hashToken,
	}
}

func hashToken(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return domain.ErrMissingArgument.WithDetails("TOKEN")
	}
	plaintext := c.Args().First()
	kind, err := checkFormat(plaintext)
	if err != nil {
		return err
	}

	key, err := readHMACKey(c.String("hmac-key-file"))
	if err != nil {
		return err
	}
	defer clear(key)

	result := &HashResult{Kind: kind, Algorithm: DigestSHA256}
	if key != nil {
		result.Algorithm = DigestHMACSHA256
		result.Hash = token.Sign(key, plaintext)
	} else {
		result.Hash = token.Hash(plaintext)
	}
	return rt.Render(c.App.Writer, result.Hash, result)
}

// VerifyCommand returns the verify command.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check a token against a stored hash or HMAC signature",
		ArgsUsage: "TOKEN HASH",
		Flags:     []cli.Flag{hmacKeyFileFlag()},
		Action:    verifyToken,
	}
}

func verifyToken(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	if c.NArg() != 2 {
		return domain.ErrMissingArgument.WithDetails("TOKEN HASH")
	}
	plaintext, hash := c.Args().Get(0), strings.ToLower(c.Args().Get(1))
	kind, err := checkFormat(plaintext)
	if err != nil {
		return err
	}

	key, err := readHMACKey(c.String("hmac-key-file"))
	if err != nil {
		return err
	}
	defer clear(key)

	algorithm := DigestSHA256
	if key != nil {
		algorithm = DigestHMACSHA256
		err = rt.Service.VerifySignedToken(key, plaintext, hash)
	} else {
		err = rt.Service.VerifyToken(plaintext, hash)
	}
	if err != nil {
		rt.Logger.Info("token verification failed", "code", domain.GetErrorCode(err), "algorithm", algorithm)
		return err
	}
	return rt.Render(c.App.Writer, "ok", &VerifyResult{Kind: kind, Algorithm: algorithm, Valid: true})
}

// readHMACKey loads a hex key file. An empty path yields a nil key.
func readHMACKey(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails("cannot read hmac key file").WithCause(err)
	}
	defer clear(data)

	key, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails("hmac key file must contain hex").WithCause(err)
	}
	spec, _ := domain.LookupKeySpec(DigestHMACSHA256)
	if len(key) < spec.Size {
		clear(key)
		return nil, domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("hmac key must be at least %d bytes", spec.Size))
	}
	return key, nil
}

// checkFormat validates tokens carrying a known prefix and returns their
// kind. Tokens without a known prefix are accepted as opaque.
func checkFormat(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrTokenMalformed.WithDetails("empty token")
	}
	for _, spec := range domain.TokenSpecs() {
		if !strings.HasPrefix(plaintext, spec.Prefix) {
			continue
		}
		if !token.ValidateFormat(plaintext, spec.Prefix, spec.Bytes) {
			return "", domain.ErrTokenMalformed.WithDetails(string(spec.Kind))
		}
		return string(spec.Kind), nil
	}
	return "", nil
}
