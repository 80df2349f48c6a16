// Package service provides the generation service used by the tokgen CLI.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/internal/telemetry/logger"
	"github.com/yndnr/tokgen-go/pkg/crypto/adaptive"
	"github.com/yndnr/tokgen-go/pkg/securerand"
	"github.com/yndnr/tokgen-go/pkg/token"
)

// Operation names used for logging and metrics.
const (
	OpBytes  = "bytes"
	OpString = "string"
	OpToken  = "token"
	OpKey    = "key"
	OpID     = "id"
)

// Recorder counts generation operations.
type Recorder interface {
	ObserveOperation(operation string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, error) {}

// TokenResult is an issued token. Only Hash may be persisted.
type TokenResult struct {
	Kind  domain.TokenKind `json:"kind" yaml:"kind"`
	Token string           `json:"token" yaml:"token"`
	Hash  string           `json:"hash" yaml:"hash"`
}

// KeyResult is generated key material sized for its algorithm.
type KeyResult struct {
	domain.KeySpec `yaml:",inline"`
	Key            []byte `json:"-" yaml:"-"`
}

// GeneratorService generates random values for application callers.
type GeneratorService struct {
	rand   *securerand.Provider
	tokens *token.Generator
	log    logger.Logger
	rec    Recorder
	now    func() time.Time
}

// Option configures a GeneratorService.
type Option func(*GeneratorService)

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(l logger.Logger) Option {
	return func(s *GeneratorService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder sets the operation recorder.
func WithRecorder(r Recorder) Option {
	return func(s *GeneratorService) {
		if r != nil {
			s.rec = r
		}
	}
}

// WithClock overrides the clock used for ID timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *GeneratorService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGeneratorService creates a service over p. A nil provider selects
// securerand.Default().
func NewGeneratorService(p *securerand.Provider, opts ...Option) *GeneratorService {
	if p == nil {
		p = securerand.Default()
	}
	s := &GeneratorService{
		rand:   p,
		tokens: token.NewGenerator(p),
		log:    logger.Default(),
		rec:    nopRecorder{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bytes returns n random bytes.
func (s *GeneratorService) Bytes(ctx context.Context, n int) ([]byte, error) {
	b, err := s.rand.GenerateRandomBytes(n)
	if err != nil {
		return nil, s.fail(ctx, OpBytes, err)
	}
	s.done(ctx, OpBytes, "bytes", n)
	return b, nil
}

// String returns n random bytes as a padded URL-safe base64 token.
func (s *GeneratorService) String(ctx context.Context, n int) (string, error) {
	v, err := s.rand.GenerateRandomString(n)
	if err != nil {
		return "", s.fail(ctx, OpString, err)
	}
	s.done(ctx, OpString, "bytes", n)
	return v, nil
}

// Token issues a prefixed token of the given kind with its SHA-256 hash.
func (s *GeneratorService) Token(ctx context.Context, kind string) (*TokenResult, error) {
	spec, err := domain.ParseTokenKind(kind)
	if err != nil {
		return nil, s.fail(ctx, OpToken, err)
	}

	v, err := s.tokens.GenerateWithLength(spec.Prefix, spec.Bytes)
	if err != nil {
		return nil, s.fail(ctx, OpToken, err)
	}

	s.done(ctx, OpToken, "kind", string(spec.Kind))
	return &TokenResult{Kind: spec.Kind, Token: v, Hash: token.Hash(v)}, nil
}

// Key generates key material sized for algorithm. AEAD keys are checked
// with a seal/open round trip before being returned.
func (s *GeneratorService) Key(ctx context.Context, algorithm string) (*KeyResult, error) {
	spec, err := domain.LookupKeySpec(algorithm)
	if err != nil {
		return nil, s.fail(ctx, OpKey, err)
	}

	key, err := s.rand.GenerateRandomBytes(spec.Size)
	if err != nil {
		return nil, s.fail(ctx, OpKey, err)
	}

	if spec.Usage == domain.KeyUsageAEAD {
		if err := s.selfTest(spec, key); err != nil {
			clear(key)
			return nil, s.fail(ctx, OpKey, err)
		}
	}

	s.done(ctx, OpKey, "algorithm", spec.Algorithm, "size", spec.Size)
	return &KeyResult{KeySpec: spec, Key: key}, nil
}

func (s *GeneratorService) selfTest(spec domain.KeySpec, key []byte) error {
	c, err := adaptive.New(adaptive.Algorithm(spec.Algorithm), key, s.rand)
	if err != nil {
		return domain.ErrInternal.WithCause(err)
	}
	if err := c.SelfTest(); err != nil {
		if securerand.IsEntropySourceError(err) {
			return err
		}
		return domain.ErrSelfTest.WithDetails(spec.Algorithm).WithCause(err)
	}
	return nil
}

// ID returns a ULID correlation identifier.
func (s *GeneratorService) ID(ctx context.Context) (string, error) {
	id, err := domain.NewID(s.now(), s.rand.Reader())
	if err != nil {
		return "", s.fail(ctx, OpID, err)
	}
	s.done(ctx, OpID)
	return id, nil
}

// VerifyToken checks a plaintext token against a stored hash.
func (s *GeneratorService) VerifyToken(plaintext, hash string) error {
	if plaintext == "" || len(hash) != token.HashLength {
		return domain.ErrTokenMalformed
	}
	if !token.Verify(plaintext, hash) {
		return domain.ErrTokenMismatch
	}
	return nil
}

// VerifySignedToken checks a plaintext token against an HMAC-SHA256
// signature made with key.
func (s *GeneratorService) VerifySignedToken(key []byte, plaintext, signature string) error {
	if len(key) == 0 {
		return domain.ErrMissingArgument.WithDetails("hmac key")
	}
	if plaintext == "" || len(signature) != token.HashLength {
		return domain.ErrTokenMalformed
	}
	if !token.VerifySignature(key, plaintext, signature) {
		return domain.ErrTokenMismatch
	}
	return nil
}

// ctxLogger prefers the context logger and adds the request ID.
func (s *GeneratorService) ctxLogger(ctx context.Context) logger.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, logger.FromContextOr(ctx, s.log))
	return logger.L(ctx).WithContext(ctx)
}

func (s *GeneratorService) done(ctx context.Context, op string, args ...any) {
	s.rec.ObserveOperation(op, nil)
	s.ctxLogger(ctx).Debug("generated", append([]any{"operation", op}, args...)...)
}

// fail records and logs err, then returns its domain form.
func (s *GeneratorService) fail(ctx context.Context, op string, err error) error {
	s.rec.ObserveOperation(op, err)

	l := s.ctxLogger(ctx).With("operation", op)
	var ese *securerand.EntropySourceError
	if errors.As(err, &ese) {
		l.Error("entropy source failure, aborting",
			"requested", ese.Requested,
			"read", ese.Read,
			"error", err.Error(),
		)
	} else {
		l.Warn("generation rejected", "error", err.Error())
	}
	return domain.FromError(err)
}
