package app

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tacogips/scmver/internal/debug"
	"github.com/tacogips/scmver/internal/record"
)

// Stdio is the path that names standard input or standard output.
const Stdio = "-"

// MaxRecordLine bounds how much of a stored record is read.
const MaxRecordLine = 256

// stdin and stdout back the Stdio path.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// ResolveFromRecord reads the first line of source, at most MaxRecordLine
// bytes, and decodes it. A source of "-" reads standard input.
func ResolveFromRecord(source string) (record.Record, error) {
	debug.DebugValue("reference", source)

	var in io.Reader = stdin
	if source != Stdio {
		f, err := os.Open(source)
		if err != nil {
			return record.Record{}, NewIOError("cannot open version file", err)
		}
		defer f.Close()
		in = f
	}

	buf := make([]byte, MaxRecordLine)
	n, err := io.ReadFull(in, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return record.Record{}, NewIOError("cannot read version file", err)
	}
	line := string(buf[:n])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	} else if n == MaxRecordLine {
		// an unterminated full buffer loses its last byte
		line = line[:n-1]
	}
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return record.Record{}, NewParseError("empty version file "+source, nil)
	}

	rec, err := record.Parse(line)
	if err != nil {
		return record.Record{}, NewParseError("cannot decode version file "+source, err)
	}
	debug.DebugValue("record", rec)
	return rec, nil
}

// Persist writes the normalized form of rec and a newline to dest,
// creating or truncating it. A dest of "-" writes standard output.
func Persist(rec record.Record, dest string) (err error) {
	line := rec.String() + "\n"
	if dest == Stdio {
		if _, err := io.WriteString(stdout, line); err != nil {
			return NewIOError("cannot write version", err)
		}
		return nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return NewIOError("cannot open version file", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewIOError("cannot close version file", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(line); err != nil {
		return NewIOError("cannot write version file", err)
	}
	if err := w.Flush(); err != nil {
		return NewIOError("cannot write version file", err)
	}
	debug.Debug("wrote %s to %s", rec, dest)
	return nil
}

// Ordering is the result of comparing two records.
type Ordering int

// Orderings returned by Compare.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	}
	return "equal"
}

// Compare orders a against b, see record.Compare.
func Compare(a, b record.Record) Ordering {
	switch c := record.Compare(a, b); {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}
