// info_test.go -- info tests
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
	"errors"
	"io/fs"
	"os"
	"path"
	"syscall"
	"testing"
)

func TestBasicInfo(t *testing.T) {
	assert := newAsserter(t)

	tmp := t.TempDir()
	nm := path.Join(tmp, "testfile")
	err := mkfilex(nm)
	assert(err == nil, "test file %s: %s", nm, err)

	ii, err := Lstat(nm)
	assert(err == nil, "fcopy.Lstat: %s: %s", nm, err)

	fi, err := os.Lstat(nm)
	assert(err == nil, "os.Lstat: %s: %s", nm, err)

	assert(fi.Size() == ii.Size(), "size: exp %d, saw %d", fi.Size(), ii.Size())
	assert(fi.ModTime().Equal(ii.ModTime()), "mtime: exp %s, saw %s", fi.ModTime(), ii.ModTime())
	assert(fi.Mode() == ii.Mode(), "mode: exp %#b, saw %#b", fi.Mode(), ii.Mode())

	var mi Info
	err = Statm(nm, &mi)
	assert(err == nil, "fcopy.Statm: %s: %s", nm, err)
	assert(mi.Size() == ii.Size(), "statm size: exp %d, saw %d", ii.Size(), mi.Size())
	assert(mi.Ino == ii.Ino, "statm ino: exp %d, saw %d", ii.Ino, mi.Ino)
}

func TestInfoFollow(t *testing.T) {
	assert := newAsserter(t)

	tmp := t.TempDir()
	nm := path.Join(tmp, "testfile")
	ln := path.Join(tmp, "testlink")

	err := mkfilex(nm)
	assert(err == nil, "test file %s: %s", nm, err)

	err = os.Symlink(nm, ln)
	assert(err == nil, "symlink: %s", err)

	ii, err := Stat(ln)
	assert(err == nil, "fcopy.Stat: %s: %s", ln, err)
	assert(ii.Mode().IsRegular(), "stat mode: exp regular, saw %s", ii.Mode())
	assert(ii.Name() == ln, "stat name: exp %s, saw %s", ln, ii.Name())

	li, err := Lstat(ln)
	assert(err == nil, "fcopy.Lstat: %s: %s", ln, err)
	assert(li.Mode()&fs.ModeSymlink != 0, "lstat mode: exp symlink, saw %s", li.Mode())
}

func TestXattr(t *testing.T) {
	assert := newAsserter(t)

	tmp := t.TempDir()
	nm := path.Join(tmp, "testfile")
	err := mkfilex(nm)
	assert(err == nil, "test file %s: %s", nm, err)

	x, err := GetXattr(nm)
	assert(err == nil, "getxattr: %s", err)
	assert(x != nil, "xattr is nil?")

	x["user.foo.bar"] = nm

	err = SetXattr(nm, x)
	if err != nil && errors.Is(err, syscall.ENOTSUP) {
		t.Logf("no support for SetXattr on %s\n", tmp)
		return
	}
	assert(err == nil, "setxattr: %s", err)

	x2, err := GetXattr(nm)
	assert(err == nil, "getxattr: %s", err)

	assert(x2["user.foo.bar"] == nm, "xattr: user.foo.bar: %s", x2["user.foo.bar"])
	assert(x2.Equal(x), "xattr: exp %s, saw %s", x, x2)
}
