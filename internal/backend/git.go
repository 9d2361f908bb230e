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

// GitArgs is the describe invocation used for git working trees.
var GitArgs = []string{"describe", "--tags", "--match=v[0-9]*", "--abbrev=8", "--dirty"}

// Git reads versions from git describe.
type Git struct {
	Runner  runner.Runner
	Command string
}

// Extract runs git describe and parses its output.
func (g *Git) Extract(ctx context.Context) (record.Record, error) {
	var rec record.Record
	err := run(ctx, g.Runner, scm.Git, g.Command, GitArgs, func(out io.Reader) error {
		line, err := readLine(out)
		if err != nil {
			return newError(ProtocolError, scm.Git, "cannot read describe output", err)
		}
		rec, err = ParseGitDescribe(line)
		return err
	})
	return rec, err
}

// ParseGitDescribe parses one line of the form
//
//	vTAG[-DIST-gHASH][-dirty]
//
// The tag ends at the first dash. Fields after the tag are optional.
func ParseGitDescribe(line string) (record.Record, error) {
	rec := record.Record{SCM: scm.Git}
	if line == "" {
		return rec, protocolError(scm.Git, "empty describe output")
	}
	if line[0] != 'v' {
		return rec, protocolError(scm.Git, "describe output %q does not start with a v tag", line)
	}

	tag, rest, found := strings.Cut(line[1:], "-")
	rec.SetTag(tag)
	if !found {
		return rec, nil
	}
	if rest == "dirty" {
		rec.Dirty = true
		return rec, nil
	}

	dist, rest, _ := strings.Cut(rest, "-")
	rec.Dist, _ = textutil.ParseUint(dist)
	if strings.HasPrefix(rest, "g") {
		value, width, tail := textutil.ParseHex(rest[1:])
		rec.SetRev(value, width)
		rest = strings.TrimPrefix(tail, "-")
	}
	if rest == "dirty" {
		rec.Dirty = true
	}
	return rec, nil
}
