package config

import "github.com/tacogips/scmver/internal/backend"

// Config represents the scmver configuration.
type Config struct {
	// Commands overrides the executables run for each SCM.
	Commands backend.Commands `json:"commands" yaml:"commands"`
	// Reference is a stored version file preferred over live SCM state.
	Reference string `json:"reference" yaml:"reference"`
	// Output configures how versions are printed.
	Output OutputConfig `json:"output" yaml:"output"`
}

// OutputConfig represents output settings.
type OutputConfig struct {
	// Format is one of the Format* constants.
	Format string `json:"format" yaml:"format"`
	// Template is a text/template rendered instead of Format when set.
	Template string `json:"template" yaml:"template"`
	// MacroName is the m4 macro defined by the m4 format.
	MacroName string `json:"macro_name" yaml:"macro_name"`
}

// Output formats.
const (
	// FormatNormal prints the normalized version string.
	FormatNormal = "normal"
	// FormatDotted prints the configure-style dotted version.
	FormatDotted = "dotted"
	// FormatM4 prints an m4 define of the dotted version.
	FormatM4 = "m4"
	// FormatJSON prints the record as JSON.
	FormatJSON = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatNormal, FormatDotted, FormatM4, FormatJSON}
