// Package command provides CLI command definitions for tokgen.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokgen-go/internal/cli/config"
	"github.com/yndnr/tokgen-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "[FILE]",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	cfg := rt.Config
	if rt.format != output.FormatTable {
		return rt.formatter.Format(c.App.Writer, cfg)
	}

	table := &output.Table{}
	table.SetHeaders("KEY", "VALUE")
	table.AddRow("output.format", cfg.Output.Format)
	table.AddRow("log.level", cfg.Log.Level)
	table.AddRow("log.format", cfg.Log.Format)
	table.AddRow("entropy.bytes", fmt.Sprint(cfg.Entropy.Bytes))
	table.AddRow("token.kind", cfg.Token.Kind)
	table.AddRow("key.algorithm", cfg.Key.Algorithm)
	table.AddRow("key.encoding", cfg.Key.Encoding)
	table.AddRow("metrics.file", orDash(cfg.Metrics.File))
	return table.Render(c.App.Writer)
}

func configValidate(c *cli.Context) error {
	path := c.String("config")
	if c.NArg() > 0 {
		path = c.Args().First()
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := config.Load(path, nil); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	_, err := fmt.Fprintf(c.App.Writer, "%s: ok\n", path)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
