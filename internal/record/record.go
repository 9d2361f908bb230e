// Package record defines the version record and its normalized text form
//
//	v<tag>[-<dist>-<scm letter><hex revision>][-dirty]
//
// together with the alternate form some build pipelines emit, where the SCM
// name is embedded after the tag:
//
//	v<tag>{.git|.bzr|.hg}<dist>[.<hex revision>][.dirty]
//
// Both forms are accepted by Parse; String only produces the first.
package record

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/tacogips/scmver/internal/scm"
	"github.com/tacogips/scmver/internal/textutil"
)

// TagCapacity is the fixed size of the tag field, terminator included.
// Longer tags are truncated to TagCapacity-1 bytes.
const TagCapacity = 16

// MaxTagLen is the longest tag a record keeps.
const MaxTagLen = TagCapacity - 1

// Record is the version information of a project.
type Record struct {
	// SCM is the backend the version was taken from. Tarball when unknown.
	SCM scm.Kind `json:"scm"`
	// Tag is the version tag without its leading "v".
	Tag string `json:"tag"`
	// Dist is the number of commits since Tag; 0 means exactly at Tag.
	Dist uint32 `json:"dist"`
	// Rev is the abbreviated revision, parsed as hex.
	Rev uint32 `json:"rev"`
	// RevWidth is the number of hex digits Rev was written with (0-7).
	RevWidth uint8 `json:"rev_width"`
	// Dirty is set when the working tree had local modifications.
	Dirty bool `json:"dirty"`
}

// SetTag stores tag, truncated to MaxTagLen bytes.
func (r *Record) SetTag(tag string) {
	r.Tag = textutil.Truncate(tag, TagCapacity)
}

// SetRev stores a revision and its display width.
func (r *Record) SetRev(value uint32, width int) {
	r.Rev = value
	r.RevWidth = uint8(width & 0x07)
}

// Packed returns the revision in its packed form: value shifted left by
// four bits, digit count in the low three bits.
func (r Record) Packed() uint32 {
	return textutil.PackHex(r.Rev, int(r.RevWidth))
}

// HasRev reports whether the record carries a revision at all.
func (r Record) HasRev() bool {
	return r.Packed() != 0
}

// RevString returns the revision as zero-padded hex of its recorded width.
func (r Record) RevString() string {
	return fmt.Sprintf("%0*x", int(r.RevWidth), r.Rev)
}

// IsExact reports whether the record names a tagged revision.
func (r Record) IsExact() bool {
	return r.Dist == 0
}

// Equal compares two records field by field. Revision and dirty state are
// only considered when the distance is non-zero.
func (r Record) Equal(o Record) bool {
	if r.SCM != o.SCM || r.Tag != o.Tag || r.Dist != o.Dist {
		return false
	}
	if r.Dist == 0 {
		return true
	}
	return r.Packed() == o.Packed() && r.Dirty == o.Dirty
}

// String returns the normalized version string. The revision part is only
// written for records with a distance, a real SCM and a revision, and the
// dirty marker only together with the revision.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('v')
	b.WriteString(textutil.Truncate(r.Tag, TagCapacity))
	if r.Dist == 0 {
		return b.String()
	}
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(uint64(r.Dist), 10))
	if !r.HasRev() || !r.SCM.IsSCM() {
		return b.String()
	}
	b.WriteByte('-')
	b.WriteByte(r.SCM.Letter())
	b.WriteString(r.RevString())
	if r.Dirty {
		b.WriteString("-dirty")
	}
	return b.String()
}

// Dotted returns the configure-style form
//
//	<tag>[.<scm name><dist>.<hex revision>][.dirty]
//
// used for package version macros. Unlike String it keeps the dirty marker
// on records without a distance.
func (r Record) Dotted() string {
	var b strings.Builder
	b.WriteString(r.Tag)
	if r.SCM.IsSCM() && r.Dist != 0 {
		fmt.Fprintf(&b, ".%s%d.%s", r.SCM, r.Dist, r.RevString())
	}
	if r.Dirty {
		b.WriteString(".dirty")
	}
	return b.String()
}

// Macro returns an m4 definition of name holding the dotted version.
func (r Record) Macro(name string) string {
	return fmt.Sprintf("define(%s, %s)", name, r.Dotted())
}

// Compare orders two records. Records that both sit exactly on a tag are
// ordered by their tag bytes alone. Otherwise all fields take part in the
// order SCM, tag, distance, revision, dirty, so a dirty record sorts after
// an otherwise identical clean one. The order detects changes; it is not a
// version precedence.
func Compare(a, b Record) int {
	ta := textutil.Truncate(a.Tag, TagCapacity)
	tb := textutil.Truncate(b.Tag, TagCapacity)
	if a.Dist == 0 && b.Dist == 0 {
		return strings.Compare(ta, tb)
	}
	if c := cmp.Compare(a.SCM, b.SCM); c != 0 {
		return c
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Dist, b.Dist); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Packed(), b.Packed()); c != 0 {
		return c
	}
	return cmp.Compare(boolRank(a.Dirty), boolRank(b.Dirty))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
