// samefile_other.go - file identity off the unix stat surface
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
	"os"
	"path/filepath"
	"strings"
)

// sameFile returns true if 'a' and 'b' name the same underlying
// file. Symlinks are followed; when both paths stat cleanly the
// stat info carries real identity (volume serial + file index on
// windows). Only when stat can't answer do we fall back to
// case-normalized absolute path equality.
func sameFile(a, b string) bool {
	fa, erra := os.Stat(a)
	fb, errb := os.Stat(b)
	if erra == nil && errb == nil {
		return os.SameFile(fa, fb)
	}

	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return strings.EqualFold(aa, bb)
}
