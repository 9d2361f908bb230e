package backend

import (
	"context"
	"io"
	"strings"

	"github.com/tacogips/scmver/internal/record"
	"github.com/tacogips/scmver/internal/runner"
	"github.com/tacogips/scmver/internal/scm"
	"github.com/tacogips/scmver/internal/textutil"
)

var (
	// BzrRevnoArgs asks for the working tree revision number.
	BzrRevnoArgs = []string{"revno"}
	// BzrTagsArgs lists tags oldest first.
	BzrTagsArgs = []string{"tags", "--sort=time"}
)

// Bzr reads versions from bzr revno and bzr tags.
type Bzr struct {
	Runner  runner.Runner
	Command string
}

// Extract combines the working tree revno with the newest tag. The record's
// revision is the revno itself, its width the number of decimal digits.
func (b *Bzr) Extract(ctx context.Context) (record.Record, error) {
	rec := record.Record{SCM: scm.Bzr}

	var revno uint32
	err := run(ctx, b.Runner, scm.Bzr, b.Command, BzrRevnoArgs, func(out io.Reader) error {
		line, err := readLine(out)
		if err != nil {
			return newError(ProtocolError, scm.Bzr, "cannot read revno output", err)
		}
		var digits int
		revno, digits = textutil.ParseUint(strings.TrimLeft(line, " \t"))
		if digits == 0 {
			return protocolError(scm.Bzr, "revno output %q is not a number", line)
		}
		rec.SetRev(revno, digits)
		return nil
	})
	if err != nil {
		return rec, err
	}

	err = run(ctx, b.Runner, scm.Bzr, b.Command, BzrTagsArgs, func(out io.Reader) error {
		last, err := textutil.TailLine(out, TagWindow)
		if err != nil {
			return newError(ProtocolError, scm.Bzr, "cannot read tag list", err)
		}
		return ApplyBzrTag(&rec, revno, string(last))
	})
	return rec, err
}

// ApplyBzrTag parses the last line of a time-sorted tag listing,
//
//	vTAG   TAGREVNO
//
// into rec and sets the distance from the working tree revno. A tag revno
// that is not a plain number (a merged or ghost revision) leaves the
// distance at zero. A tag revno beyond the working tree revno is rejected.
func ApplyBzrTag(rec *record.Record, revno uint32, line string) error {
	if line == "" {
		return protocolError(scm.Bzr, "no tags")
	}
	if line[0] != 'v' {
		return protocolError(scm.Bzr, "newest tag in %q does not start with v", line)
	}

	tag, rest, found := strings.Cut(line[1:], " ")
	rec.SetTag(tag)
	if !found {
		return nil
	}

	field := strings.TrimSpace(rest)
	tagRevno, digits := textutil.ParseUint(field)
	if digits == 0 || digits != len(field) {
		return nil
	}
	if tagRevno > revno {
		return protocolError(scm.Bzr, "tag v%s is at revno %d, past the working tree revno %d", tag, tagRevno, revno)
	}
	rec.Dist = revno - tagRevno
	return nil
}
