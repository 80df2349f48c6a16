// Package command provides CLI command definitions for tokgen.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokgen-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Action: showVersion,
	}
}

func showVersion(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	info := buildinfo.Get()
	return rt.Render(c.App.Writer, info.String(), info)
}
