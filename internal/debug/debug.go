// Package debug writes diagnostic trace lines to stderr when enabled with
// --debug or the SCMVER_DEBUG environment variable.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// EnvVar enables debug output when set to a true value.
const EnvVar = "SCMVER_DEBUG"

var (
	mu      sync.RWMutex
	enabled = envEnabled(os.Getenv(EnvVar))
	noColor bool
	out     io.Writer = os.Stderr
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

func envEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(label, msg string) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	if noColor {
		if label != "" {
			fmt.Fprintf(out, "[DEBUG] %s %s %s\n", timestamp, label, msg)
			return
		}
		fmt.Fprintf(out, "[DEBUG] %s %s\n", timestamp, msg)
		return
	}
	if label != "" {
		fmt.Fprintf(out, "%s[DEBUG]%s %s%s%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset,
			colorCyan, label, colorReset, msg)
		return
	}
	fmt.Fprintf(out, "%s[DEBUG]%s %s%s%s %s\n",
		colorCyan, colorReset, colorGray, timestamp, colorReset, msg)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit("", fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	emit("", "=== "+section+" ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	emit(key, fmt.Sprintf("= %v", value))
}

// DebugCommand traces an external command line and its exit status.
// A negative status means the command has not finished yet.
func DebugCommand(name string, args []string, status int) {
	if !IsEnabled() {
		return
	}
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if status < 0 {
		emit("exec", line)
		return
	}
	emit("exec", fmt.Sprintf("%s -> exit %d", line, status))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("failed to marshal %s to JSON: %v", key, err)
		return
	}
	emit(key+":", "\n"+string(data))
}
