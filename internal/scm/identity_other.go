//go:build !unix

package scm

import (
	"os"
	"path/filepath"
)

// dirID identifies a directory by its absolute path where inode numbers
// are not available.
type dirID struct {
	abs string
}

func statPath(path string) (dirID, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return dirID{}, false, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return dirID{}, false, err
	}
	return dirID{abs: abs}, info.IsDir(), nil
}
