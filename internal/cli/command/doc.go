// Package command provides CLI command definitions for tokgen.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, runtime wiring and error mapping
//   - generate.go: bytes, string, token, key and id
//   - verify.go: hash and verify
//   - config.go: config show and validate
//   - system.go: version
//
// Commands parse their arguments, call the generator service and render the
// result with the output formatter selected by --output. Generated values go
// to the app writer; diagnostics go to the error writer.
package command
