// Package scm identifies which source control system manages a directory
// tree and locates the root of that tree.
package scm

import "fmt"

// Kind is the source control system a version was taken from.
type Kind int

const (
	// Error marks a failed detection.
	Error Kind = iota - 1
	// Tarball means no SCM metadata is available.
	Tarball
	// Git is a git working tree.
	Git
	// Bzr is a bazaar branch.
	Bzr
	// Hg is a mercurial working copy.
	Hg
)

var kindNames = map[Kind]string{
	Error:   "error",
	Tarball: "tarball",
	Git:     "git",
	Bzr:     "bzr",
	Hg:      "hg",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("scm(%d)", int(k))
}

// IsSCM reports whether k is a real version control backend.
func (k Kind) IsSCM() bool {
	return k > Tarball
}

// Letter is the single-character SCM marker used in normalized version
// strings. It is zero for kinds that have none.
func (k Kind) Letter() byte {
	switch k {
	case Git:
		return 'g'
	case Bzr:
		return 'b'
	case Hg:
		return 'h'
	}
	return 0
}

// Marker is the metadata directory name that identifies the kind.
func (k Kind) Marker() string {
	switch k {
	case Git:
		return ".git"
	case Bzr:
		return ".bzr"
	case Hg:
		return ".hg"
	}
	return ""
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Error, fmt.Errorf("unknown scm kind: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Backends lists the real backends in marker probe order.
var Backends = []Kind{Git, Bzr, Hg}
