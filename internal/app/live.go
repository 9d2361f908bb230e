package app

import (
	"context"
	"errors"
	"os"

	"github.com/tacogips/scmver/internal/backend"
	"github.com/tacogips/scmver/internal/debug"
	"github.com/tacogips/scmver/internal/record"
	"github.com/tacogips/scmver/internal/runner"
	"github.com/tacogips/scmver/internal/scm"
)

// LiveOptions contains options for resolving a version from SCM state.
type LiveOptions struct {
	// Start is where the search for the SCM root begins. Empty means the
	// current directory.
	Start string
	// Commands overrides the backend executables.
	Commands backend.Commands
	// Runner starts backend commands. Nil means os/exec.
	Runner runner.Runner
}

// ResolveLive locates the SCM root above opts.Start, changes into it, runs
// the matching extractor and changes back. The original working directory
// is restored on every path; failing to restore it is reported even when
// the extraction succeeded.
//
// When no SCM root is found the returned record is the tarball state and
// the error is a NotFound *AppError.
func ResolveLive(ctx context.Context, opts LiveOptions) (rec record.Record, err error) {
	debug.DebugSection("Resolve live")

	kind, root, err := scm.Locate(opts.Start)
	if err != nil {
		return record.Record{SCM: scm.Error}, NewDetectionError("cannot locate scm root", err)
	}
	if kind == scm.Tarball {
		return record.Record{SCM: scm.Tarball}, NewNotFoundError("no git, bzr or hg root above " + displayStart(opts.Start))
	}
	debug.DebugValue("scm", kind)
	debug.DebugValue("root", root)

	r := opts.Runner
	if r == nil {
		r = runner.New()
	}
	ex, err := backend.For(kind, r, opts.Commands)
	if err != nil {
		return record.Record{}, NewDetectionError("unsupported scm", err)
	}

	orig, err := os.Getwd()
	if err != nil {
		return record.Record{}, NewIOError("cannot determine working directory", err)
	}
	if err := os.Chdir(root); err != nil {
		return record.Record{}, NewIOError("cannot change into scm root", err)
	}
	defer func() {
		debug.Debug("restoring working directory %s", orig)
		if cerr := os.Chdir(orig); cerr != nil && err == nil {
			err = NewRestoreError("cannot restore working directory "+orig, cerr)
		}
	}()

	rec, err = ex.Extract(ctx)
	if err != nil {
		return record.Record{}, wrapBackendError(err)
	}
	rec.SCM = kind
	debug.DebugValue("record", rec)
	return rec, nil
}

func wrapBackendError(err error) *AppError {
	var be *backend.Error
	if errors.As(err, &be) && be.Type == backend.SpawnFailed {
		return NewAppError(SpawnFailed, "cannot run "+be.Backend.String(), err)
	}
	return NewAppError(BackendProtocol, "cannot read version", err)
}

func displayStart(start string) string {
	if start == "" {
		return "."
	}
	return start
}
