package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/term"

	"github.com/tacogips/scmver/internal/config"
	"github.com/tacogips/scmver/internal/record"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// colorEnabled reports whether diagnostics on stderr may be colored.
func colorEnabled() bool {
	return !globalNoColor && term.IsTerminal(int(os.Stderr.Fd()))
}

// printSuccess prints a success message to stderr
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%s✓%s %s\n", colorGreen, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "✓ %s\n", msg)
	}
}

// printWarning prints a warning message to stderr
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%s⚠%s %s\n", colorYellow, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
	}
}

// printErrorMsg prints an error message to stderr, even in quiet mode
func printErrorMsg(msg string) {
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

// recordView is the data handed to output templates and the json format.
type recordView struct {
	record.Record
	SCMName  string `json:"scm_name"`
	Version  string `json:"version"`
	Dotted   string `json:"dotted"`
	Revision string `json:"revision,omitempty"`
}

func newRecordView(rec record.Record) recordView {
	v := recordView{
		Record:  rec,
		SCMName: rec.SCM.String(),
		Version: rec.String(),
		Dotted:  rec.Dotted(),
	}
	if rec.HasRev() {
		v.Revision = rec.RevString()
	}
	return v
}

// renderRecord writes rec to w as configured. A template takes precedence
// over the format.
func renderRecord(w io.Writer, rec record.Record, out config.OutputConfig) error {
	if out.Template != "" {
		tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(out.Template)
		if err != nil {
			return fmt.Errorf("failed to parse output template: %w", err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, newRecordView(rec)); err != nil {
			return fmt.Errorf("failed to render output template: %w", err)
		}
		if n := buf.Len(); n == 0 || buf.Bytes()[n-1] != '\n' {
			buf.WriteByte('\n')
		}
		_, err = w.Write(buf.Bytes())
		return err
	}

	var line string
	switch out.Format {
	case config.FormatDotted:
		line = rec.Dotted()
	case config.FormatM4:
		name := out.MacroName
		if name == "" {
			name = config.DefaultMacroName
		}
		line = rec.Macro(name)
	case config.FormatJSON:
		data, err := json.MarshalIndent(newRecordView(rec), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version: %w", err)
		}
		line = string(data)
	case config.FormatNormal, "":
		line = rec.String()
	default:
		return fmt.Errorf("unknown format %q", out.Format)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
