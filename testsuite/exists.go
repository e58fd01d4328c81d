// exists.go -- handy checks for file/dir existence

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Wot a complicated way to do things in golang!
func entryIs(nm, what string, want func(fs.FileMode) bool) (bool, error) {
	st, err := os.Lstat(nm)
	if err == nil {
		if want(st.Mode()) {
			return true, nil
		}
		return false, fmt.Errorf("%s: entry exists but not a %s", nm, what)
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("%s: lstat %w", nm, err)
}

// Return true if dir exists, false otherwise
func DirExists(dn string) (bool, error) {
	return entryIs(dn, "dir", func(m fs.FileMode) bool { return m.IsDir() })
}

// Return true if file exists, false otherwise
func FileExists(fn string) (bool, error) {
	return entryIs(fn, "file", func(m fs.FileMode) bool { return m.IsRegular() })
}

// Return true if symlink exists, false otherwise
func LinkExists(fn string) (bool, error) {
	return entryIs(fn, "symlink", func(m fs.FileMode) bool { return m&fs.ModeSymlink != 0 })
}

// Return true if fifo exists, false otherwise
func FifoExists(fn string) (bool, error) {
	return entryIs(fn, "fifo", func(m fs.FileMode) bool { return m&fs.ModeNamedPipe != 0 })
}
