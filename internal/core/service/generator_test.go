package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/internal/telemetry/logger"
	"github.com/yndnr/tokgen-go/pkg/securerand"
	"github.com/yndnr/tokgen-go/pkg/token"
)

type recordedOp struct {
	op  string
	err error
}

type fakeRecorder struct {
	mu  sync.Mutex
	ops []recordedOp
}

func (r *fakeRecorder) ObserveOperation(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, recordedOp{op: op, err: err})
}

// shortProvider yields a provider whose source runs dry after n bytes.
func shortProvider(n int) *securerand.Provider {
	return securerand.New(securerand.WithSource(io.LimitReader(securerand.Default().Reader(), int64(n))))
}

func newTestService(t *testing.T, p *securerand.Provider) (*GeneratorService, *fakeRecorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { logger.SetLevel("warn") })

	rec := &fakeRecorder{}
	return NewGeneratorService(p, WithLogger(l), WithRecorder(rec)), rec, &buf
}

func TestGeneratorService_Bytes(t *testing.T) {
	s, rec, _ := newTestService(t, nil)

	b, err := s.Bytes(context.Background(), 32)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if len(b) != 32 {
		t.Errorf("Bytes() length = %d, want 32", len(b))
	}
	if len(rec.ops) != 1 || rec.ops[0].op != OpBytes || rec.ops[0].err != nil {
		t.Errorf("recorded ops = %+v", rec.ops)
	}
}

func TestGeneratorService_Bytes_InvalidCount(t *testing.T) {
	s, _, _ := newTestService(t, nil)

	for _, n := range []int{-5, securerand.MaxBytes + 1} {
		b, err := s.Bytes(context.Background(), n)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("Bytes(%d) error = %v, want ErrInvalidArgument", n, err)
		}
		if b != nil {
			t.Errorf("Bytes(%d) returned a value", n)
		}
	}
}

func TestGeneratorService_String(t *testing.T) {
	s, _, _ := newTestService(t, nil)

	v, err := s.String(context.Background(), 32)
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if len(v) != 44 {
		t.Errorf("String(32) length = %d, want 44", len(v))
	}
}

func TestGeneratorService_EntropyFailure(t *testing.T) {
	s, rec, buf := newTestService(t, shortProvider(10))
	ctx := logger.WithRequestID(context.Background(), "req-42")

	b, err := s.Bytes(ctx, 32)
	if b != nil {
		t.Error("Bytes() returned data alongside error")
	}
	if !errors.Is(err, domain.ErrEntropySource) {
		t.Fatalf("Bytes() error = %v, want ErrEntropySource", err)
	}
	if !securerand.IsEntropySourceError(err) {
		t.Error("domain error should wrap the EntropySourceError")
	}

	var de *domain.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("Bytes() error %T is not a DomainError", err)
	}
	if strings.Contains(de.Public(), "32") {
		t.Errorf("public message should be generic, got %q", de.Public())
	}

	out := buf.String()
	for _, want := range []string{`"level":"ERROR"`, `"requested":32`, `"read":10`, `"request_id":"req-42"`, `"operation":"bytes"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}

	if len(rec.ops) != 1 || rec.ops[0].err == nil {
		t.Errorf("failure not recorded: %+v", rec.ops)
	}
}

func TestGeneratorService_StringFailure(t *testing.T) {
	s, _, _ := newTestService(t, shortProvider(10))

	v, err := s.String(context.Background(), 32)
	if v != "" {
		t.Errorf("String() returned %q alongside error", v)
	}
	if !errors.Is(err, domain.ErrEntropySource) {
		t.Errorf("String() error = %v", err)
	}
}

func TestGeneratorService_Token(t *testing.T) {
	s, _, buf := newTestService(t, nil)

	tests := []struct {
		kind   string
		prefix string
		bytes  int
	}{
		{"session", "tgs_", 32},
		{"csrf", "tgc_", 32},
		{"api", "tga_", 48},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			res, err := s.Token(context.Background(), tt.kind)
			if err != nil {
				t.Fatalf("Token(%s) error = %v", tt.kind, err)
			}
			if !token.ValidateFormat(res.Token, tt.prefix, tt.bytes) {
				t.Errorf("Token(%s) = %q, invalid format", tt.kind, res.Token)
			}
			if res.Hash != token.Hash(res.Token) {
				t.Error("Token() hash does not match token")
			}
			if err := s.VerifyToken(res.Token, res.Hash); err != nil {
				t.Errorf("VerifyToken() error = %v", err)
			}
			if strings.Contains(buf.String(), res.Token) {
				t.Error("plaintext token leaked into logs")
			}
		})
	}
}

func TestGeneratorService_Token_UnknownKind(t *testing.T) {
	s, rec, _ := newTestService(t, nil)

	res, err := s.Token(context.Background(), "cookie")
	if res != nil || !errors.Is(err, domain.ErrUnknownTokenKind) {
		t.Errorf("Token(cookie) = %v, %v", res, err)
	}
	if len(rec.ops) != 1 || rec.ops[0].err == nil {
		t.Errorf("rejection not recorded: %+v", rec.ops)
	}
}

func TestGeneratorService_Token_EntropyFailure(t *testing.T) {
	s, _, _ := newTestService(t, shortProvider(10))

	res, err := s.Token(context.Background(), "session")
	if res != nil {
		t.Error("Token() returned a result alongside error")
	}
	if !errors.Is(err, domain.ErrEntropySource) {
		t.Errorf("Token() error = %v", err)
	}
}

func TestGeneratorService_Key(t *testing.T) {
	s, _, _ := newTestService(t, nil)

	for _, spec := range domain.KeySpecs() {
		t.Run(spec.Algorithm, func(t *testing.T) {
			res, err := s.Key(context.Background(), spec.Algorithm)
			if err != nil {
				t.Fatalf("Key(%s) error = %v", spec.Algorithm, err)
			}
			if len(res.Key) != spec.Size {
				t.Errorf("Key(%s) length = %d, want %d", spec.Algorithm, len(res.Key), spec.Size)
			}
			if res.Usage != spec.Usage {
				t.Errorf("Key(%s) usage = %s, want %s", spec.Algorithm, res.Usage, spec.Usage)
			}
		})
	}
}

func TestGeneratorService_Key_Unknown(t *testing.T) {
	s, _, _ := newTestService(t, nil)

	if _, err := s.Key(context.Background(), "rc4"); !errors.Is(err, domain.ErrUnknownAlgorithm) {
		t.Errorf("Key(rc4) error = %v", err)
	}
}

func TestGeneratorService_Key_SelfTestEntropyFailure(t *testing.T) {
	// Enough for the key itself, not for the self-test sample.
	s, _, _ := newTestService(t, shortProvider(32))

	res, err := s.Key(context.Background(), "aes-256-gcm")
	if res != nil {
		t.Error("Key() returned a result alongside error")
	}
	if !errors.Is(err, domain.ErrEntropySource) {
		t.Errorf("Key() error = %v, want ErrEntropySource", err)
	}
}

func TestGeneratorService_ID(t *testing.T) {
	fixed := time.UnixMilli(1_750_000_000_000)
	s := NewGeneratorService(nil, WithLogger(logger.Nop()), WithClock(func() time.Time { return fixed }))

	id, err := s.ID(context.Background())
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if !domain.IsValidID(id) {
		t.Errorf("ID() = %q, invalid", id)
	}
	if ts, _ := domain.IDTime(id); !ts.Equal(fixed) {
		t.Errorf("ID() timestamp = %v, want %v", ts, fixed)
	}
}

func TestGeneratorService_ID_EntropyFailure(t *testing.T) {
	s, _, _ := newTestService(t, shortProvider(2))

	id, err := s.ID(context.Background())
	if id != "" || !errors.Is(err, domain.ErrEntropySource) {
		t.Errorf("ID() = %q, %v", id, err)
	}
}

func TestGeneratorService_VerifyToken(t *testing.T) {
	s := NewGeneratorService(nil)
	hash := token.Hash("tgs_abc")

	tests := []struct {
		name  string
		token string
		hash  string
		want  error
	}{
		{"match", "tgs_abc", hash, nil},
		{"mismatch", "tgs_abd", hash, domain.ErrTokenMismatch},
		{"empty token", "", hash, domain.ErrTokenMalformed},
		{"short hash", "tgs_abc", "abc", domain.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.VerifyToken(tt.token, tt.hash)
			if tt.want == nil {
				if err != nil {
					t.Errorf("VerifyToken() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("VerifyToken() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGeneratorService_VerifySignedToken(t *testing.T) {
	s := NewGeneratorService(nil)
	key := bytes.Repeat([]byte{0x42}, 32)
	sig := token.Sign(key, "tgs_abc")

	tests := []struct {
		name  string
		key   []byte
		token string
		sig   string
		want  error
	}{
		{"match", key, "tgs_abc", sig, nil},
		{"wrong key", bytes.Repeat([]byte{0x43}, 32), "tgs_abc", sig, domain.ErrTokenMismatch},
		{"plain hash", key, "tgs_abc", token.Hash("tgs_abc"), domain.ErrTokenMismatch},
		{"no key", nil, "tgs_abc", sig, domain.ErrMissingArgument},
		{"short signature", key, "tgs_abc", "abc", domain.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.VerifySignedToken(tt.key, tt.token, tt.sig)
			if tt.want == nil {
				if err != nil {
					t.Errorf("VerifySignedToken() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("VerifySignedToken() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGeneratorService_Concurrent(t *testing.T) {
	s := NewGeneratorService(nil, WithLogger(logger.Nop()))

	var wg sync.WaitGroup
	results := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.Token(context.Background(), "session")
			if err != nil {
				t.Error(err)
				return
			}
			results <- res.Token
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for tok := range results {
		if seen[tok] {
			t.Fatalf("duplicate token %s", tok)
		}
		seen[tok] = true
	}
}
