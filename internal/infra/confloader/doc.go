// Package confloader loads layered configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (TOKGEN_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Defaults
//
// Nested keys are dot separated; environment variables map underscores
// to dots, so leaf key names must not contain underscores.
package confloader
