// Package buildinfo exposes version information injected at build time:
//
//	go build -ldflags "-X github.com/yndnr/tokgen-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/tokgen-go/internal/infra/buildinfo.Commit=abc123"
//
// Without ldflags, values fall back to the module build info recorded by
// the Go toolchain.
package buildinfo
