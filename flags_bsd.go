// flags_bsd.go - BSD file flags (st_flags)
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

//go:build darwin || freebsd || netbsd || openbsd

package fcopy

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// copy the st_flags bits onto dst. A filesystem that doesn't
// support flags is tolerated; every other failure (EPERM included)
// is real. There is no portable lchflags, so with follow disabled
// this is a no-op.
func copyFlags(dst string, fi *Info, follow bool) error {
	if !follow {
		return nil
	}

	err := unix.Chflags(dst, int(fi.Flags))
	if err != nil && !errAny(err, syscall.ENOTSUP, syscall.EOPNOTSUPP) {
		return &CopyError{"chflags", fi.Nam, dst, err}
	}
	return nil
}
