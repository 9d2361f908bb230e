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

// HgArgs is the log invocation used for mercurial working copies.
var HgArgs = []string{"log", "--rev", ".", "--template", "{latesttag}\t{latesttagdistance}\t{node|short}\n"}

// Hg reads versions from hg log.
type Hg struct {
	Runner  runner.Runner
	Command string
}

// Extract runs hg log for the working copy parent and parses its output.
func (h *Hg) Extract(ctx context.Context) (record.Record, error) {
	var rec record.Record
	err := run(ctx, h.Runner, scm.Hg, h.Command, HgArgs, func(out io.Reader) error {
		line, err := readLine(out)
		if err != nil {
			return newError(ProtocolError, scm.Hg, "cannot read log output", err)
		}
		rec, err = ParseHgLog(line)
		return err
	})
	return rec, err
}

// ParseHgLog parses one TAG<tab>DISTANCE<tab>NODE line. Only tags starting
// with v are accepted; there is no search for an older v tag.
func ParseHgLog(line string) (record.Record, error) {
	rec := record.Record{SCM: scm.Hg}
	if line == "" {
		return rec, protocolError(scm.Hg, "empty log output")
	}
	if line[0] != 'v' {
		return rec, protocolError(scm.Hg, "latest tag in %q does not start with v", line)
	}

	tag, rest, found := strings.Cut(line[1:], "\t")
	rec.SetTag(tag)
	if !found {
		return rec, protocolError(scm.Hg, "log output %q has no distance field", line)
	}

	dist, node, _ := strings.Cut(rest, "\t")
	rec.Dist, _ = textutil.ParseUint(dist)
	value, width, _ := textutil.ParseHex(node)
	rec.SetRev(value, width)
	return rec, nil
}
