// copy.go - copy a single file along with (optional) metadata
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

// Package fcopy copies one file - content and, optionally, its
// metadata (timestamps, permission bits, xattr, BSD file flags) -
// from a source path to a destination path. It refuses copies that
// are destructive or meaningless: source and destination resolving
// to the same file, or either endpoint being a named pipe.
package fcopy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

type opt struct {
	// dereference symlinks; on by default
	follow bool

	// also copy timestamps, xattr, mode, file flags
	meta bool
}

// Option is the common type of the copy options below
type Option func(o *opt)

// WithMetadata copies file metadata (atime/mtime, extended
// attributes, permission bits and - where the platform has them -
// BSD file flags) after the content is copied.
func WithMetadata() Option {
	return func(o *opt) {
		o.meta = true
	}
}

// NoFollowSymlinks recreates a symlink source as a symlink at the
// destination instead of dereferencing it and copying the bytes
// underneath.
func NoFollowSymlinks() Option {
	return func(o *opt) {
		o.follow = false
	}
}

// captures one copy invocation; dst is rewritten to the effective
// destination if the caller named a directory
type copier struct {
	opt
	src string
	dst string
}

// Copy copies file 'src' to 'dst' and returns the resolved
// destination path: if 'dst' names an existing directory, the copy
// lands at dst/basename(src). Content is copied in fixed sized
// chunks; a failure mid-copy leaves a partially written destination
// behind. Copy returns *SameFileError if both paths resolve to the
// same file and *SpecialFileError if either endpoint is a fifo;
// everything else surfaces as a *CopyError wrapping the underlying
// OS error.
func Copy(dst, src string, opts ...Option) (string, error) {
	o := opt{follow: true}
	for _, fp := range opts {
		fp(&o)
	}

	c := &copier{opt: o, src: src, dst: dst}
	if err := c.resolve(); err != nil {
		return "", err
	}
	if err := c.checkPaths(); err != nil {
		return "", err
	}
	if err := c.transfer(); err != nil {
		return "", err
	}
	if c.meta {
		if err := c.copyMeta(); err != nil {
			return "", err
		}
	}
	return c.dst, nil
}

func (c *copier) resolve() error {
	if len(c.src) == 0 || len(c.dst) == 0 {
		return &CopyError{"copy", c.src, c.dst, syscall.EINVAL}
	}

	// copying into a directory keeps the source basename
	if st, err := os.Stat(c.dst); err == nil && st.IsDir() {
		c.dst = filepath.Join(c.dst, filepath.Base(c.src))
	}
	return nil
}

// validations that must run before the destination is touched:
// same-file identity and the fifo check. Only fifos are refused;
// sockets and devices are left to fail (or not) on their own.
func (c *copier) checkPaths() error {
	if sameFile(c.src, c.dst) {
		return &SameFileError{c.src, c.dst}
	}

	si, err := os.Stat(c.src)
	if err != nil {
		return &CopyError{"stat", c.src, c.dst, err}
	}
	if si.Mode().Type() == fs.ModeNamedPipe {
		return &SpecialFileError{c.src}
	}

	// the destination may be missing - we are about to create it;
	// any other stat failure is real
	di, err := os.Stat(c.dst)
	switch {
	case err == nil:
		if di.Mode().Type() == fs.ModeNamedPipe {
			return &SpecialFileError{c.dst}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return &CopyError{"stat", c.src, c.dst, err}
	}
	return nil
}

func (c *copier) transfer() error {
	if !c.follow {
		fi, err := os.Lstat(c.src)
		if err != nil {
			return &CopyError{"lstat", c.src, c.dst, err}
		}
		if fi.Mode()&fs.ModeSymlink != 0 {
			return clonelink(c.dst, c.src)
		}
	}

	s, err := os.Open(c.src)
	if err != nil {
		return &CopyError{"open", c.src, c.dst, err}
	}
	defer s.Close()

	// catch a directory source before the destination is
	// created or truncated
	st, err := s.Stat()
	if err != nil {
		return &CopyError{"stat", c.src, c.dst, err}
	}
	if st.IsDir() {
		return &CopyError{"open", c.src, c.dst, syscall.EISDIR}
	}

	d, err := os.OpenFile(c.dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return &CopyError{"create", c.src, c.dst, err}
	}

	err = CopyFd(d, s)
	if cerr := d.Close(); err == nil && cerr != nil {
		err = &CopyError{"close", c.src, c.dst, cerr}
	}
	return err
}

// recreate a symlink - the copy points at the same target as src
func clonelink(dst string, src string) error {
	targ, err := os.Readlink(src)
	if err != nil {
		return &CopyError{"readlink", src, dst, err}
	}
	if err = os.Symlink(targ, dst); err != nil {
		return &CopyError{"symlink", src, dst, err}
	}
	return nil
}
