// Package backend extracts version information from the describe output of
// each supported source control system. Every extractor expects to run
// inside the root of its working tree.
package backend

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tacogips/scmver/internal/debug"
	"github.com/tacogips/scmver/internal/record"
	"github.com/tacogips/scmver/internal/runner"
	"github.com/tacogips/scmver/internal/scm"
)

const (
	// BufferSize bounds the describe output that is looked at.
	BufferSize = 256
	// TagWindow bounds the sliding window used on tag listings.
	TagWindow = 4096
)

// Extractor produces a version record from live SCM state.
type Extractor interface {
	Extract(ctx context.Context) (record.Record, error)
}

// Commands names the executables used for each backend.
type Commands struct {
	Git string `json:"git" yaml:"git"`
	Hg  string `json:"hg" yaml:"hg"`
	Bzr string `json:"bzr" yaml:"bzr"`
}

// DefaultCommands returns the executables looked up in PATH.
func DefaultCommands() Commands {
	return Commands{Git: "git", Hg: "hg", Bzr: "bzr"}
}

// For returns the extractor for kind.
func For(kind scm.Kind, r runner.Runner, cmds Commands) (Extractor, error) {
	defaults := DefaultCommands()
	switch kind {
	case scm.Git:
		return &Git{Runner: r, Command: pick(cmds.Git, defaults.Git)}, nil
	case scm.Bzr:
		return &Bzr{Runner: r, Command: pick(cmds.Bzr, defaults.Bzr)}, nil
	case scm.Hg:
		return &Hg{Runner: r, Command: pick(cmds.Hg, defaults.Hg)}, nil
	}
	return nil, fmt.Errorf("no extractor for scm kind %s", kind)
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// run starts a backend command, hands its output to read and reaps it. The
// output pipe is released on every path. A non-zero exit takes precedence
// over a read failure since it usually explains the bad output.
func run(ctx context.Context, r runner.Runner, kind scm.Kind, name string, args []string, read func(io.Reader) error) error {
	proc, err := r.Start(ctx, name, args...)
	if err != nil {
		return newError(SpawnFailed, kind, "cannot run "+name, err)
	}

	readErr := read(proc.Output())
	status, err := proc.Finish()
	if err != nil {
		return newError(SpawnFailed, kind, "cannot wait for "+name, err)
	}
	if status != 0 {
		e := newError(ProtocolError, kind, fmt.Sprintf("%s %s exited with status %d", name, strings.Join(args, " "), status), nil)
		e.Stderr = proc.Stderr()
		return e
	}
	return readErr
}

// readLine reads at most BufferSize bytes of output and returns the first
// line of it. The rest of the output is discarded.
func readLine(out io.Reader) (string, error) {
	buf := make([]byte, BufferSize)
	n, err := io.ReadFull(out, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if _, err := io.Copy(io.Discard, out); err != nil {
		return "", err
	}

	line := string(buf[:n])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, "\r")
	debug.DebugValue("output", line)
	return line, nil
}
