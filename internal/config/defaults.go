package config

import "github.com/tacogips/scmver/internal/backend"

// DefaultMacroName is the macro defined by the m4 output format.
const DefaultMacroName = "YUCK_SCMVER_VERSION"

// FileNames are the configuration files looked up, in order of preference.
var FileNames = []string{".scmver.yaml", ".scmver.yml", ".scmver.json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Commands: backend.DefaultCommands(),
		Output: OutputConfig{
			Format:    FormatNormal,
			MacroName: DefaultMacroName,
		},
	}
}
