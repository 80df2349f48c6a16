// Package config defines the tokgen CLI configuration.
//
//   - spec.go: Config struct and defaults
//   - loader.go: layered loading (flags > TOKGEN_* env > YAML file > defaults)
//
// The default file is ~/.tokgen/config.yaml and is optional.
package config
