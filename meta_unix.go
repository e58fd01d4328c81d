// meta_unix.go - timestamp and mode updates for unixish platforms
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
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// set atime/mtime on dst at nanosecond resolution. A host that
// can't set times this way (or can't do so on a symlink) is not an
// error - the copy carries on without.
func copyTimes(dst string, fi *Info, follow bool) error {
	ts := []unix.Timespec{
		unix.NsecToTimespec(fi.Atim.UnixNano()),
		unix.NsecToTimespec(fi.Mtim.UnixNano()),
	}

	var flags int
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}

	err := unix.UtimesNanoAt(unix.AT_FDCWD, dst, ts, flags)
	if err != nil && !errAny(err, syscall.ENOSYS, syscall.ENOTSUP, syscall.EOPNOTSUPP) {
		return &CopyError{"utimes", fi.Nam, dst, err}
	}
	return nil
}

// copy the permission bits - rwx plus setuid/setgid/sticky -
// onto dst. With follow a failed chmod is an error; without it a
// host that can't chmod a symlink at all is tolerated (the perm
// bits of a symlink are meaningless there anyway).
func copyMode(dst string, fi *Info, follow bool) error {
	mode := fi.Mode() & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)

	if follow {
		if err := os.Chmod(dst, mode); err != nil {
			return &CopyError{"chmod", fi.Nam, dst, err}
		}
		return nil
	}

	err := unix.Fchmodat(unix.AT_FDCWD, dst, syscallMode(mode), unix.AT_SYMLINK_NOFOLLOW)
	if err != nil && !errAny(err, syscall.ENOTSUP, syscall.EOPNOTSUPP, syscall.ENOSYS) {
		return &CopyError{"chmod", fi.Nam, dst, err}
	}
	return nil
}

// fs.FileMode permission bits to their syscall encoding
func syscallMode(m fs.FileMode) (o uint32) {
	o = uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		o |= syscall.S_ISUID
	}
	if m&fs.ModeSetgid != 0 {
		o |= syscall.S_ISGID
	}
	if m&fs.ModeSticky != 0 {
		o |= syscall.S_ISVTX
	}
	return o
}
