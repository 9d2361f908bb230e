package runner

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecStartOutput(t *testing.T) {
	requireShell(t)

	proc, err := New().Start(context.Background(), "sh", "-c", "printf 'v1.0-3-g1a2b3c4\\n'")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	data, err := io.ReadAll(proc.Output())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	status, err := proc.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if status != 0 {
		t.Errorf("Finish() status = %d, want 0", status)
	}
	if got := string(data); got != "v1.0-3-g1a2b3c4\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExecExitStatus(t *testing.T) {
	requireShell(t)

	tests := []struct {
		name   string
		script string
		want   int
	}{
		{name: "success", script: "exit 0", want: 0},
		{name: "failure", script: "exit 3", want: 3},
		{name: "killed by signal", script: "kill -KILL $$", want: AbnormalExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, err := New().Start(context.Background(), "sh", "-c", tt.script)
			if err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			status, err := proc.Finish()
			if err != nil {
				t.Fatalf("Finish() error = %v", err)
			}
			if status != tt.want {
				t.Errorf("Finish() status = %d, want %d", status, tt.want)
			}

			// a second Finish reports the same outcome
			again, _ := proc.Finish()
			if again != status {
				t.Errorf("second Finish() status = %d, want %d", again, status)
			}
		})
	}
}

func TestExecStderr(t *testing.T) {
	requireShell(t)

	proc, err := New().Start(context.Background(), "sh", "-c", "echo 'fatal: No names found' >&2; exit 128")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	status, err := proc.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if status != 128 {
		t.Errorf("Finish() status = %d, want 128", status)
	}
	if got := proc.Stderr(); got != "fatal: No names found" {
		t.Errorf("Stderr() = %q", got)
	}
}

func TestExecSpawnFailure(t *testing.T) {
	proc, err := New().Start(context.Background(), "scmver-no-such-command", "describe")
	if proc != nil {
		t.Error("Start() should not return a process on failure")
	}
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("Start() error = %v, want *SpawnError", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Start() error should wrap exec.ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "scmver-no-such-command describe") {
		t.Errorf("error should name the command line, got %q", err.Error())
	}
}

func TestExecDir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	runner := &Exec{Dir: dir}
	proc, err := runner.Start(context.Background(), "sh", "-c", "pwd -P")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	data, _ := io.ReadAll(proc.Output())
	if _, err := proc.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks() error = %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != want {
		t.Errorf("pwd = %q, want %q", got, want)
	}
}

func TestExecFinishWithoutDraining(t *testing.T) {
	requireShell(t)

	proc, err := New().Start(context.Background(), "sh", "-c", "i=0; while [ $i -lt 100000 ]; do echo v1.0; i=$((i+1)); done")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	buf := make([]byte, 16)
	if _, err := io.ReadFull(proc.Output(), buf); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	// closing the pipe early must not leave Finish blocked on the child
	if _, err := proc.Finish(); err != nil {
		t.Errorf("Finish() error = %v", err)
	}
}

func TestBoundedBuffer(t *testing.T) {
	b := &boundedBuffer{limit: 4}
	n, err := b.Write([]byte("abcdef"))
	if err != nil || n != 6 {
		t.Errorf("Write() = (%d, %v), want (6, nil)", n, err)
	}
	b.Write([]byte("gh"))
	if got := b.String(); got != "abcd" {
		t.Errorf("String() = %q, want %q", got, "abcd")
	}
}
