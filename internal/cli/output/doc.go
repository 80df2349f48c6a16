// Package output renders tokgen results for the terminal.
//
//   - table: aligned FIELD/VALUE or row tables (default)
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// Generated values go to stdout; diagnostics go to stderr through the
// logger, so `tokgen string 32 > secret` stays clean.
package output
