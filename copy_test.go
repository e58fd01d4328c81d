// copy_test.go - file copy tests
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

package fcopy

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestCopyBasic(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dst := filepath.Join(tmpdir, "file-b")

	srcsum, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	ret, err := Copy(dst, src)
	assert(err == nil, "copy %s to %s: %s", src, dst, err)
	assert(ret == dst, "resolved dst: exp %s, saw %s", dst, ret)

	dstsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", dst)
}

func TestCopyBig(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "big-a")
	dst := filepath.Join(tmpdir, "big-b")

	// many chunks plus a ragged tail
	srcsum, err := createFile(src, 256*1024+37)
	assert(err == nil, "create %s: %s", src, err)

	_, err = Copy(dst, src)
	assert(err == nil, "copy: %s", err)

	dstsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", dst)
}

func TestCopyZeroByte(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "empty-a")
	dst := filepath.Join(tmpdir, "empty-b")

	err := os.WriteFile(src, nil, 0600)
	assert(err == nil, "create %s: %s", src, err)

	_, err = Copy(dst, src)
	assert(err == nil, "copy: %s", err)

	st, err := os.Stat(dst)
	assert(err == nil, "stat %s: %s", dst, err)
	assert(st.Size() == 0, "size: exp 0, saw %d", st.Size())
}

func TestCopyIntoDir(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dir := filepath.Join(tmpdir, "out")

	srcsum, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	err = os.Mkdir(dir, 0700)
	assert(err == nil, "mkdir %s: %s", dir, err)

	ret, err := Copy(dir, src)
	assert(err == nil, "copy into dir: %s", err)

	want := filepath.Join(dir, "file-a")
	assert(ret == want, "resolved dst: exp %s, saw %s", want, ret)

	dstsum, err := fileCksum(want)
	assert(err == nil, "cksum %s: %s", want, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", want)
}

func TestCopyOverwrite(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dst := filepath.Join(tmpdir, "file-b")

	srcsum, err := createFile(src, 8*1024)
	assert(err == nil, "create %s: %s", src, err)

	// pre-existing dst with different and larger content
	_, err = createFile(dst, 64*1024)
	assert(err == nil, "create %s: %s", dst, err)

	_, err = Copy(dst, src)
	assert(err == nil, "copy: %s", err)

	st, err := os.Stat(dst)
	assert(err == nil, "stat %s: %s", dst, err)
	assert(st.Size() == 8*1024, "size: exp %d, saw %d", 8*1024, st.Size())

	dstsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", dst)
}

func TestCopySameFile(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")

	srcsum, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	_, err = Copy(src, src)
	var same *SameFileError
	assert(errors.As(err, &same), "exp samefile error, saw %v", err)

	after, err := fileCksum(src)
	assert(err == nil, "cksum %s: %s", src, err)
	assert(byteEq(srcsum, after), "%s: content touched by refused copy", src)
}

func TestCopyMissingSource(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "no-such-file")
	dst := filepath.Join(tmpdir, "out")

	_, err := Copy(dst, src)
	assert(err != nil, "copy of missing source succeeded?")
	assert(errors.Is(err, fs.ErrNotExist), "exp not-exist, saw %v", err)

	var ce *CopyError
	assert(errors.As(err, &ce), "exp copy error, saw %v", err)
	assert(ce.Op == "stat", "op: exp stat, saw %s", ce.Op)
}

func TestCopyDirSource(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	sdir := filepath.Join(tmpdir, "srcdir")
	dst := filepath.Join(tmpdir, "out")

	err := os.Mkdir(sdir, 0700)
	assert(err == nil, "mkdir %s: %s", sdir, err)

	_, err = Copy(dst, sdir)
	assert(errors.Is(err, syscall.EISDIR), "exp EISDIR, saw %v", err)

	_, err = os.Lstat(dst)
	assert(errors.Is(err, fs.ErrNotExist), "%s: created by refused copy", dst)
}

func TestCopyEmptyArgs(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	_, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	_, err = Copy("", src)
	assert(errors.Is(err, syscall.EINVAL), "empty dst: exp EINVAL, saw %v", err)

	_, err = Copy(src, "")
	assert(errors.Is(err, syscall.EINVAL), "empty src: exp EINVAL, saw %v", err)
}

func TestCopyFd(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	src := filepath.Join(tmpdir, "file-a")
	dst := filepath.Join(tmpdir, "file-b")

	srcsum, err := createFile(src, 0)
	assert(err == nil, "create %s: %s", src, err)

	s, err := os.Open(src)
	assert(err == nil, "open %s: %s", src, err)
	defer s.Close()

	d, err := os.Create(dst)
	assert(err == nil, "create %s: %s", dst, err)

	err = CopyFd(d, s)
	assert(err == nil, "copyfd: %s", err)

	err = d.Close()
	assert(err == nil, "close %s: %s", dst, err)

	dstsum, err := fileCksum(dst)
	assert(err == nil, "cksum %s: %s", dst, err)
	assert(byteEq(srcsum, dstsum), "cksum mismatch: %s", dst)
}

var testDir = flag.String("testdir", "", "Use 'T' as the testdir for file I/O tests")

func getTmpdir(t *testing.T) string {
	assert := newAsserter(t)
	tmpdir := t.TempDir()

	if len(*testDir) > 0 {
		tmpdir = filepath.Join(*testDir, t.Name())
		err := os.MkdirAll(tmpdir, 0700)
		assert(err == nil, "mkdir %s: %s", tmpdir, err)
		t.Logf("Using %s as test dir .. \n", tmpdir)
		t.Cleanup(func() {
			t.Logf("cleaning up %s ..\n", tmpdir)
			os.RemoveAll(tmpdir)
		})
	}
	return tmpdir
}
