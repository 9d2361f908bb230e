package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tacogips/scmver/internal/config"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig    = "config"
	FlagReference = "reference"
	FlagFormat    = "format"
	FlagTemplate  = "template"
	FlagMacroName = "macro-name"
	FlagFrom      = "from"
	FlagYes       = "yes"
	FlagExitCode  = "exit-code"
	FlagDir       = "dir"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"

	// Flag descriptions
	DescConfig    = "Path to config file (default: nearest .scmver.yaml, .scmver.yml or .scmver.json)"
	DescReference = "Stored version file preferred over the SCM"
	DescTemplate  = "Go template rendered with the version record"
	DescMacroName = "Macro defined by the m4 format"
	DescFrom      = "Read the version from this file instead of the SCM"
	DescYes       = "Overwrite without asking"
	DescExitCode  = "Exit with status 1 when the versions differ"
	DescDir       = "Start the SCM search in this directory"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress non-error output"
	DescDebug     = "Enable debug logging"
)

// formatValue is a pflag.Value restricted to the known output formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(s string) error {
	if !slices.Contains(config.Formats, s) {
		return fmt.Errorf("unknown format %q, want one of %s", s, strings.Join(config.Formats, ", "))
	}
	*f = formatValue(s)
	return nil
}

func (f *formatValue) Type() string {
	return "format"
}

// outputFlags holds the flags shared by every command that prints a version.
type outputFlags struct {
	format    formatValue
	template  string
	macroName string
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	o.format = config.FormatNormal
	fs.VarP(&o.format, FlagFormat, "f", "Output format: "+strings.Join(config.Formats, ", "))
	fs.StringVarP(&o.template, FlagTemplate, "t", "", DescTemplate)
	fs.StringVar(&o.macroName, FlagMacroName, "", DescMacroName)
}

// apply overrides cfg with the flags that were set on the command line.
func (o *outputFlags) apply(fs *pflag.FlagSet, cfg *config.OutputConfig) {
	if fs.Changed(FlagFormat) {
		cfg.Format = string(o.format)
	}
	if fs.Changed(FlagTemplate) {
		cfg.Template = o.template
	}
	if fs.Changed(FlagMacroName) {
		cfg.MacroName = o.macroName
	}
}
