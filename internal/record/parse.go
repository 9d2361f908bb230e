package record

import (
	"github.com/tacogips/scmver/internal/scm"
	"github.com/tacogips/scmver/internal/textutil"
)

const dirtyFlag = "dirty"

// embedded SCM markers of the alternate form, in lookup order
var embeddedMarkers = []scm.Kind{scm.Git, scm.Bzr, scm.Hg}

// Parse decodes a normalized version string. Missing optional parts leave
// their fields at zero; only a string that does not start with "v", "V" or
// a digit, or a "." separator without any SCM marker, is an error.
func Parse(text string) (Record, error) {
	var r Record

	if text == "" {
		return r, newParseError(text, 0, "empty version string")
	}
	pos := 0
	switch c := text[0]; {
	case c == 'v' || c == 'V':
		pos = 1
	case c >= '0' && c <= '9':
	default:
		return r, newParseError(text, 0, "version must start with v or a digit")
	}

	tagStart := pos
	tagEnd := len(text)
	distAt := -1
	if i := indexByteFrom(text, tagStart, '-'); i >= 0 {
		tagEnd = i
		distAt = i + 1
	}
	// an embedded .git/.bzr/.hg marker wins over the dash and ends the tag
	for _, kind := range embeddedMarkers {
		marker := kind.Marker()
		if i := textutil.IndexString(text[tagStart:], marker); i >= 0 {
			r.SCM = kind
			tagEnd = tagStart + i
			distAt = tagEnd + len(marker)
			break
		}
	}
	r.SetTag(text[tagStart:tagEnd])

	if distAt < 0 {
		return r, nil
	}
	dist, n := textutil.ParseUint(text[distAt:])
	r.Dist = dist
	pos = distAt + n

	if pos >= len(text) {
		return r, nil
	}
	switch text[pos] {
	case '.':
		if !r.SCM.IsSCM() {
			return r, newParseError(text, pos, "dot separator without scm marker")
		}
	case '-':
	default:
		return r, nil
	}
	pos++

	if pos < len(text) {
		switch c := text[pos]; {
		case c == 'g':
			r.SCM = scm.Git
			pos++
		case c == 'h':
			r.SCM = scm.Hg
			pos++
		case c == 'b' && !r.SCM.IsSCM():
			r.SCM = scm.Bzr
			pos++
		case r.SCM.IsSCM():
			// the revision follows directly; a leading b is a hex digit
		default:
			return r, nil
		}
	} else if !r.SCM.IsSCM() {
		return r, nil
	}

	value, width, rest := textutil.ParseHex(text[pos:])
	r.SetRev(value, width)

	if len(rest) > len(dirtyFlag) && (rest[0] == '-' || rest[0] == '.') &&
		rest[1:1+len(dirtyFlag)] == dirtyFlag {
		r.Dirty = true
	}
	return r, nil
}

func indexByteFrom(s string, from int, c byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
