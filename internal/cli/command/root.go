// Package command provides CLI command definitions for tokgen.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokgen-go/internal/cli/config"
	"github.com/yndnr/tokgen-go/internal/cli/output"
	"github.com/yndnr/tokgen-go/internal/core/domain"
	"github.com/yndnr/tokgen-go/internal/core/service"
	"github.com/yndnr/tokgen-go/internal/infra/buildinfo"
	"github.com/yndnr/tokgen-go/internal/telemetry/logger"
	"github.com/yndnr/tokgen-go/internal/telemetry/metric"
	"github.com/yndnr/tokgen-go/pkg/securerand"
)

const runtimeKey = "runtime"

// Runtime holds the components shared by all commands of one invocation.
type Runtime struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metric.Registry
	Service *service.GeneratorService

	requestID string
	format    output.Format
	formatter output.Formatter
}

// Option customizes the application, mainly for tests.
type Option func(*appOptions)

type appOptions struct {
	source      securerand.Source
	entropyPath string
}

// WithEntropySource replaces crypto/rand.Reader as the entropy source.
func WithEntropySource(src securerand.Source) Option {
	return func(o *appOptions) {
		o.source = src
	}
}

// WithEntropyAvailPath overrides the kernel entropy file read for metrics.
func WithEntropyAvailPath(path string) Option {
	return func(o *appOptions) {
		o.entropyPath = path
	}
}

// App creates the CLI application.
func App(opts ...Option) *cli.App {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	info := buildinfo.Get()
	return &cli.App{
		Name:    "tokgen",
		Usage:   "Generate secure random bytes, tokens, keys and IDs",
		Version: info.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			BytesCommand(),
			StringCommand(),
			TokenCommand(),
			KeyCommand(),
			IDCommand(),
			HashCommand(),
			VerifyCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		HideVersion: true,
		Before: func(c *cli.Context) error {
			rt, err := newRuntime(c, o)
			if err != nil {
				return err
			}
			c.App.Metadata[runtimeKey] = rt
			return nil
		},
		After: writeMetrics,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.tokgen/config.yaml if present)",
			EnvVars: []string{"TOKGEN_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// flagOverrides maps explicitly set global flags onto config keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("metrics-file") {
		overrides["metrics.file"] = c.String("metrics-file")
	}
	return overrides
}

func newRuntime(c *cli.Context, o appOptions) (*Runtime, error) {
	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:             cfg.Log.Level,
		Format:            cfg.Log.Format,
		Output:            c.App.ErrWriter,
		SensitivePrefixes: domain.SensitivePrefixes(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	reg := metric.NewRegistry()
	if err := reg.Register(metric.NewCollector(o.entropyPath)); err != nil {
		return nil, fmt.Errorf("register entropy collector: %w", err)
	}
	info := buildinfo.Get()
	reg.SetBuildInfo(info.Version, info.Commit)

	randOpts := []securerand.Option{securerand.WithObserver(reg)}
	if o.source != nil {
		randOpts = append(randOpts, securerand.WithSource(o.source))
	}
	provider := securerand.New(randOpts...)

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config:  cfg,
		Logger:  log,
		Metrics: reg,
		Service: service.NewGeneratorService(provider,
			service.WithLogger(log),
			service.WithRecorder(reg),
		),
		requestID: domain.IDPrefix + strings.ToLower(ulid.Make().String()),
		format:    format,
		formatter: output.NewFormatter(format),
	}, nil
}

// GetRuntime retrieves the runtime created by the Before hook.
func GetRuntime(c *cli.Context) (*Runtime, error) {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok {
		return nil, domain.ErrInternal.WithDetails("runtime not initialized")
	}
	return rt, nil
}

// Context returns the command context carrying the runtime logger and the
// invocation's request ID. The request ID uses ulid's default entropy, not
// the configured source.
func (rt *Runtime) Context(c *cli.Context) context.Context {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRequestID(ctx, rt.requestID)
	return logger.WithLogger(ctx, rt.Logger)
}

// Render writes data in the selected format. In table format, plain is
// written instead when non-nil so single values stay pipeable.
func (rt *Runtime) Render(w io.Writer, plain, data any) error {
	if rt.format == output.FormatTable && plain != nil {
		return rt.formatter.Format(w, plain)
	}
	return rt.formatter.Format(w, data)
}

func writeMetrics(c *cli.Context) error {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok || rt.Config.Metrics.File == "" {
		return nil
	}
	if err := rt.Metrics.WriteTextfile(rt.Config.Metrics.File); err != nil {
		rt.Logger.Warn("failed to write metrics file", "path", rt.Config.Metrics.File, "error", err.Error())
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// ErrorMessage returns the text shown to the user for err. Domain errors
// expose only their code and generic message.
func ErrorMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Public()
	}
	return err.Error()
}

// countArg parses the optional byte count argument, falling back to def.
func countArg(c *cli.Context, def int) (int, error) {
	if c.NArg() == 0 {
		return def, nil
	}
	if c.NArg() > 1 {
		return 0, domain.ErrInvalidArgument.WithDetails("expected a single byte count")
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, domain.ErrInvalidArgument.WithDetails("byte count must be an integer")
	}
	return n, nil
}
