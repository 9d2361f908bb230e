package app

import (
	"context"

	"github.com/tacogips/scmver/internal/debug"
	"github.com/tacogips/scmver/internal/record"
)

// ResolveOptions contains options for Resolve.
type ResolveOptions struct {
	LiveOptions
	// Reference is a stored version file consulted before the SCM.
	Reference string
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Record is the resolved version.
	Record record.Record
	// FromReference is set when the record came from the reference file.
	FromReference bool
}

// Resolve prefers the reference file when one is configured and decodes
// cleanly, and queries the SCM otherwise. A failing reference is not an
// error on its own; only the live result is reported.
func Resolve(ctx context.Context, opts ResolveOptions) (*Resolution, error) {
	if opts.Reference != "" {
		rec, err := ResolveFromRecord(opts.Reference)
		if err == nil {
			return &Resolution{Record: rec, FromReference: true}, nil
		}
		debug.Debug("reference %s unusable, falling back to scm: %v", opts.Reference, err)
	}

	rec, err := ResolveLive(ctx, opts.LiveOptions)
	if err != nil {
		return nil, err
	}
	return &Resolution{Record: rec}, nil
}
