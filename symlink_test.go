// symlink_test.go -- symlink copy behavior

//go:build unix

package fcopy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCopySymlinkNoFollow(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	targ := filepath.Join(tmpdir, "target")
	ln := filepath.Join(tmpdir, "ln")
	dst := filepath.Join(tmpdir, "ln-copy")

	tsum, err := createFile(targ, 0)
	assert(err == nil, "create %s: %s", targ, err)

	err = os.Symlink(targ, ln)
	assert(err == nil, "symlink: %s", err)

	ret, err := Copy(dst, ln, NoFollowSymlinks())
	assert(err == nil, "copy: %s", err)
	assert(ret == dst, "resolved dst: exp %s, saw %s", dst, ret)

	fi, err := os.Lstat(dst)
	assert(err == nil, "lstat %s: %s", dst, err)
	assert(fi.Mode()&fs.ModeSymlink != 0, "%s: not a symlink", dst)

	rd, err := os.Readlink(dst)
	assert(err == nil, "readlink %s: %s", dst, err)
	assert(rd == targ, "link target: exp %s, saw %s", targ, rd)

	// both links point at the same bytes
	dsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(tsum, dsum), "cksum mismatch: %s", dst)
}

func TestCopySymlinkFollow(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	targ := filepath.Join(tmpdir, "target")
	ln := filepath.Join(tmpdir, "ln")
	dst := filepath.Join(tmpdir, "deref")

	tsum, err := createFile(targ, 0)
	assert(err == nil, "create %s: %s", targ, err)

	err = os.Symlink(targ, ln)
	assert(err == nil, "symlink: %s", err)

	// following is the default: the copy is a plain file with the
	// target's bytes
	_, err = Copy(dst, ln)
	assert(err == nil, "copy: %s", err)

	fi, err := os.Lstat(dst)
	assert(err == nil, "lstat %s: %s", dst, err)
	assert(fi.Mode().IsRegular(), "%s: exp regular file, saw %s", dst, fi.Mode())

	dsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(tsum, dsum), "cksum mismatch: %s", dst)
}

func TestCopySymlinkRelativeTarget(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	targ := filepath.Join(tmpdir, "target")
	ln := filepath.Join(tmpdir, "ln")
	sub := filepath.Join(tmpdir, "sub")
	dst := filepath.Join(sub, "ln-copy")

	_, err := createFile(targ, 0)
	assert(err == nil, "create %s: %s", targ, err)

	err = os.Symlink("target", ln)
	assert(err == nil, "symlink: %s", err)

	err = os.Mkdir(sub, 0700)
	assert(err == nil, "mkdir %s: %s", sub, err)

	// the textual target is recreated as-is, even into a
	// different directory
	_, err = Copy(dst, ln, NoFollowSymlinks())
	assert(err == nil, "copy: %s", err)

	rd, err := os.Readlink(dst)
	assert(err == nil, "readlink %s: %s", dst, err)
	assert(rd == "target", "link target: exp target, saw %s", rd)
}

func TestCopySymlinkNoFollowRegular(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dst := filepath.Join(tmpdir, "file-b")

	srcsum, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	// no-follow on a regular file is an ordinary byte copy
	_, err = Copy(dst, src, NoFollowSymlinks())
	assert(err == nil, "copy: %s", err)

	fi, err := os.Lstat(dst)
	assert(err == nil, "lstat %s: %s", dst, err)
	assert(fi.Mode().IsRegular(), "%s: exp regular file, saw %s", dst, fi.Mode())

	dstsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", dst)
}

func TestCopySymlinkDangling(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	ln := filepath.Join(tmpdir, "dangling")
	dst := filepath.Join(tmpdir, "out")

	err := os.Symlink(filepath.Join(tmpdir, "no-such-file"), ln)
	assert(err == nil, "symlink: %s", err)

	// the pre-copy stat follows the link and fails; nothing is
	// created
	_, err = Copy(dst, ln, NoFollowSymlinks())
	assert(errors.Is(err, fs.ErrNotExist), "exp not-exist, saw %v", err)

	_, err = os.Lstat(dst)
	assert(errors.Is(err, fs.ErrNotExist), "%s: created by refused copy", dst)
}
