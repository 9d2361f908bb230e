// Package runner starts external commands with their standard output piped
// back to the caller and reaps their exit status.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/tacogips/scmver/internal/debug"
)

// AbnormalExit is the status reported for a child that did not exit on its
// own, for example because it was killed by a signal.
const AbnormalExit = 2

// maxStderr bounds how much of a child's stderr is kept for error messages.
const maxStderr = 4096

// Runner starts external commands.
type Runner interface {
	Start(ctx context.Context, name string, args ...string) (Process, error)
}

// Process is a started command. Output must be drained or abandoned before
// Finish is called; Finish always releases the output pipe.
type Process interface {
	// Output is the read end of the child's standard output.
	Output() io.Reader
	// Finish waits for the child and returns its exit status.
	Finish() (int, error)
	// Stderr returns what the child wrote to standard error, bounded.
	Stderr() string
}

// Exec runs commands with os/exec.
type Exec struct {
	// Dir is the working directory of started commands; empty means the
	// current directory of this process.
	Dir string
	// Env, when non-nil, replaces the child's environment.
	Env []string
}

// New returns an Exec runner for the current directory.
func New() *Exec {
	return &Exec{}
}

// Start spawns name with args and returns a handle whose Output is the
// child's stdout. No handle is returned when spawning fails.
func (e *Exec) Start(ctx context.Context, name string, args ...string) (Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Env = e.Env

	stderr := &boundedBuffer{limit: maxStderr}
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, newSpawnError(name, args, "pipe setup failed", err)
	}
	debug.DebugCommand(name, args, -1)
	if err := cmd.Start(); err != nil {
		stdout.Close()
		return nil, newSpawnError(name, args, "start failed", err)
	}

	return &process{cmd: cmd, stdout: stdout, stderr: stderr, name: name, args: args}, nil
}

type process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr *boundedBuffer
	name   string
	args   []string
	once   sync.Once
	status int
	err    error
}

func (p *process) Output() io.Reader {
	return p.stdout
}

func (p *process) Stderr() string {
	return strings.TrimSpace(p.stderr.String())
}

// Finish closes the output pipe, waits for the child and maps its state to
// an exit status: the child's own status when it exited, AbnormalExit
// otherwise. Only failures to wait at all are returned as errors.
func (p *process) Finish() (int, error) {
	p.once.Do(func() {
		p.stdout.Close()
		p.status, p.err = exitStatus(p.cmd.Wait())
		debug.DebugCommand(p.name, p.args, p.status)
	})
	return p.status, p.err
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Exited() {
			return exitErr.ExitCode(), nil
		}
		return AbnormalExit, nil
	}
	return AbnormalExit, err
}

// boundedBuffer keeps the first limit bytes written to it and drops the
// rest, so a chatty child cannot grow memory without bound.
type boundedBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	limit int
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *boundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
