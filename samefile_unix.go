// samefile_unix.go - file identity via dev+inode
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

//go:build unix

package fcopy

import (
	"syscall"
)

// sameFile returns true if 'a' and 'b' name the same underlying
// file. Symlinks are followed; if either path can't be stat'ed the
// two can't be proven identical and we say no.
func sameFile(a, b string) bool {
	var sa, sb syscall.Stat_t

	if err := syscall.Stat(a, &sa); err != nil {
		return false
	}
	if err := syscall.Stat(b, &sb); err != nil {
		return false
	}
	return sa.Dev == sb.Dev && sa.Ino == sb.Ino
}
