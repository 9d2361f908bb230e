package scm

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/scmver/internal/debug"
)

// MaxPathLen bounds the candidate path during the upward walk.
const MaxPathLen = 4096

// room reserved behind the candidate for the longest marker suffix
const markerRoom = 5

// Locate walks from start up to the filesystem root looking for a directory
// that holds one of the .git, .bzr or .hg metadata directories, probed in
// that order. start defaults to the current directory; a file is replaced
// by its directory.
//
// Absolute starts step up by dropping the last path component until only
// the root is left. Relative starts stay relative: the walk appends ".."
// segments, so the returned root is valid for os.Chdir from the current
// directory, and the filesystem root is detected by ".." naming the same
// directory (device and inode) as the candidate itself.
//
// If no marker is found the result is Tarball with an empty root and a nil
// error. Any stat failure or over-long path yields Error and a
// *LocateError.
func Locate(start string) (Kind, string, error) {
	path := start
	if path == "" {
		path = "."
	}
	if filepath.IsAbs(path) {
		path = filepath.Clean(path)
	}

	var cur dirID
	for {
		if len(path)+markerRoom >= MaxPathLen {
			return Error, "", newLocateError(path, "path too long", nil)
		}
		id, isDir, err := statPath(path)
		if err != nil {
			return Error, "", newLocateError(path, "cannot stat", err)
		}
		if isDir {
			cur = id
			break
		}
		path = filepath.Dir(path)
	}

	for {
		debug.Debug("scm: probing %s", path)
		for _, kind := range Backends {
			if isDirectory(joinRaw(path, kind.Marker())) {
				debug.Debug("scm: found %s root at %s", kind, path)
				return kind, path, nil
			}
		}

		if filepath.IsAbs(path) {
			parent := filepath.Dir(path)
			if parent == path {
				debug.Debug("scm: reached filesystem root at %s", path)
				return Tarball, "", nil
			}
			path = parent
			continue
		}

		parent := joinRaw(path, "..")
		if len(parent)+markerRoom >= MaxPathLen {
			return Error, "", newLocateError(parent, "path too long", nil)
		}
		up, _, err := statPath(parent)
		if err != nil {
			return Error, "", newLocateError(parent, "cannot stat", err)
		}
		if up == cur {
			debug.Debug("scm: reached filesystem root at %s", path)
			return Tarball, "", nil
		}
		path, cur = parent, up
	}
}

// joinRaw appends name without cleaning, so ".." keeps its on-disk meaning
// across symlinked directories.
func joinRaw(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func isDirectory(path string) bool {
	_, isDir, err := statPath(path)
	return err == nil && isDir
}
