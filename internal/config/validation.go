package config

import (
	"slices"
	"strings"
)

// Validate checks a configuration for values the commands cannot use.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration is nil")
	}

	commands := map[string]string{
		"commands.git": config.Commands.Git,
		"commands.hg":  config.Commands.Hg,
		"commands.bzr": config.Commands.Bzr,
	}
	for _, field := range []string{"commands.git", "commands.hg", "commands.bzr"} {
		if cmd := commands[field]; cmd != strings.TrimSpace(cmd) {
			return NewConfigErrorWithField(ConfigValidationFailed, "", field, "command must not have surrounding whitespace")
		}
	}

	if config.Output.Format != "" && !slices.Contains(Formats, config.Output.Format) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output.format",
			"unknown format "+config.Output.Format+", want one of "+strings.Join(Formats, ", "))
	}
	if config.Output.MacroName != "" && !isMacroName(config.Output.MacroName) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "output.macro_name",
			"macro name must be letters, digits and underscores, not starting with a digit")
	}
	return nil
}

// isMacroName reports whether name is a valid m4 macro name.
func isMacroName(name string) bool {
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return name != ""
}
