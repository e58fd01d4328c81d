// meta_nop.go - metadata updates without the unix syscall surface
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build !unix

package fcopy

import (
	"io/fs"
	"os"
)

// set atime/mtime through the portable interface. There is no
// lchtimes equivalent, so symlink pairs are left untouched;
// metadata copying is best effort by contract.
func copyTimes(dst string, fi *Info, follow bool) error {
	if !follow {
		return nil
	}

	if err := os.Chtimes(dst, fi.Atim, fi.Mtim); err != nil {
		return &CopyError{"utimes", fi.Nam, dst, err}
	}
	return nil
}

// carry over what little of the perm bits these hosts understand;
// symlinks are skipped as above.
func copyMode(dst string, fi *Info, follow bool) error {
	if !follow {
		return nil
	}

	mode := fi.Mode() & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
	if err := os.Chmod(dst, mode); err != nil {
		return &CopyError{"chmod", fi.Nam, dst, err}
	}
	return nil
}
