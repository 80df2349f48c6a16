// Package command provides CLI command definitions for tokgen.
package command

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/pkg/crypto/adaptive"
)

// Byte encodings accepted by --encoding.
const (
	EncodingHex       = "hex"
	EncodingBase64    = "base64"
	EncodingBase64URL = "base64url"
	EncodingRaw       = "raw"
)

// BytesResult is the output of the bytes command.
type BytesResult struct {
	Bytes    int    `json:"bytes" yaml:"bytes"`
	Encoding string `json:"encoding" yaml:"encoding"`
	Value    string `json:"value" yaml:"value"`
}

// StringResult is the output of the string command.
type StringResult struct {
	Bytes int    `json:"bytes" yaml:"bytes"`
	Value string `json:"value" yaml:"value"`
}

// KeyOutput is the output of the key command.
type KeyOutput struct {
	Algorithm string          `json:"algorithm" yaml:"algorithm"`
	Usage     domain.KeyUsage `json:"usage" yaml:"usage"`
	Size      int             `json:"size" yaml:"size"`
	Encoding  string          `json:"encoding" yaml:"encoding"`
	Key       string          `json:"key" yaml:"key"`
}

// KeyListEntry is one row of key --list. Preferred marks the AEAD
// algorithm with the fastest implementation on this platform.
type KeyListEntry struct {
	domain.KeySpec `yaml:",inline"`
	Preferred      bool `json:"preferred" yaml:"preferred"`
}

// IDResult is the output of the id command.
type IDResult struct {
	ID string `json:"id" yaml:"id"`
}

func encodingFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage:   usage,
	}
}

// BytesCommand returns the bytes command.
func BytesCommand() *cli.Command {
	return &cli.Command{
		Name:      "bytes",
		Usage:     "Generate random bytes",
		ArgsUsage: "[N]",
		Flags: []cli.Flag{
			encodingFlag("Encoding: hex, base64, base64url, raw"),
		},
		Action: generateBytes,
	}
}

func generateBytes(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	n, err := countArg(c, rt.Config.Entropy.Bytes)
	if err != nil {
		return err
	}
	enc := EncodingHex
	if c.IsSet("encoding") {
		enc = c.String("encoding")
	}
	if enc != EncodingRaw {
		if _, err := encode(nil, enc); err != nil {
			return err
		}
	}

	b, err := rt.Service.Bytes(rt.Context(c), n)
	if err != nil {
		return err
	}
	defer clear(b)

	if enc == EncodingRaw {
		_, err := c.App.Writer.Write(b)
		return err
	}

	value, err := encode(b, enc)
	if err != nil {
		return err
	}
	return rt.Render(c.App.Writer, value, &BytesResult{Bytes: n, Encoding: enc, Value: value})
}

// StringCommand returns the string command.
func StringCommand() *cli.Command {
	return &cli.Command{
		Name:      "string",
		Usage:     "Generate a URL-safe base64 token from N random bytes",
		ArgsUsage: "[N]",
		Action:    generateString,
	}
}

func generateString(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	n, err := countArg(c, rt.Config.Entropy.Bytes)
	if err != nil {
		return err
	}

	v, err := rt.Service.String(rt.Context(c), n)
	if err != nil {
		return err
	}
	return rt.Render(c.App.Writer, v, &StringResult{Bytes: n, Value: v})
}

// TokenCommand returns the token command.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue a prefixed token and its SHA-256 hash",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Token kind: session, csrf, api",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List token kinds",
			},
		},
		Action: generateToken,
	}
}

func generateToken(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	if c.Bool("list") {
		return rt.Render(c.App.Writer, nil, domain.TokenSpecs())
	}

	kind := rt.Config.Token.Kind
	if c.IsSet("kind") {
		kind = c.String("kind")
	}

	result, err := rt.Service.Token(rt.Context(c), kind)
	if err != nil {
		return err
	}
	return rt.Render(c.App.Writer, nil, result)
}

// KeyCommand returns the key command.
func KeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "key",
		Usage:     "Generate key material sized for an algorithm",
		ArgsUsage: "[ALGORITHM]",
		Flags: []cli.Flag{
			encodingFlag("Encoding: hex, base64, base64url"),
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List supported algorithms",
			},
		},
		Action: generateKey,
	}
}

func generateKey(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	if c.Bool("list") {
		return rt.Render(c.App.Writer, nil, keyList())
	}

	algorithm := rt.Config.Key.Algorithm
	if c.NArg() > 0 {
		algorithm = c.Args().First()
	}
	enc := rt.Config.Key.Encoding
	if c.IsSet("encoding") {
		enc = c.String("encoding")
	}
	if _, err := encode(nil, enc); err != nil {
		return err
	}

	result, err := rt.Service.Key(rt.Context(c), algorithm)
	if err != nil {
		return err
	}
	defer clear(result.Key)

	value, err := encode(result.Key, enc)
	if err != nil {
		return err
	}
	return rt.Render(c.App.Writer, nil, &KeyOutput{
		Algorithm: result.Algorithm,
		Usage:     result.Usage,
		Size:      result.Size,
		Encoding:  enc,
		Key:       value,
	})
}

// IDCommand returns the id command.
func IDCommand() *cli.Command {
	return &cli.Command{
		Name:   "id",
		Usage:  "Generate a ULID correlation ID",
		Action: generateID,
	}
}

func generateID(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	id, err := rt.Service.ID(rt.Context(c))
	if err != nil {
		return err
	}
	return rt.Render(c.App.Writer, id, &IDResult{ID: id})
}

func keyList() []KeyListEntry {
	preferred := string(adaptive.Preferred())
	specs := domain.KeySpecs()
	entries := make([]KeyListEntry, len(specs))
	for i, spec := range specs {
		entries[i] = KeyListEntry{KeySpec: spec, Preferred: spec.Algorithm == preferred}
	}
	return entries
}

// encode renders b in enc. "raw" is handled by the caller.
func encode(b []byte, enc string) (string, error) {
	switch enc {
	case EncodingHex:
		return hex.EncodeToString(b), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(b), nil
	case EncodingBase64URL:
		return base64.URLEncoding.EncodeToString(b), nil
	default:
		return "", domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown encoding %q", enc))
	}
}
