//go:build unix

package scm

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// dirID identifies a directory independent of the path used to reach it.
type dirID struct {
	dev uint64
	ino uint64
}

func statPath(path string) (dirID, bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return dirID{}, false, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	id := dirID{dev: uint64(st.Dev), ino: uint64(st.Ino)}
	return id, st.Mode&unix.S_IFMT == unix.S_IFDIR, nil
}
