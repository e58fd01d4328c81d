// xattr.go - extended attribute support
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
	"fmt"
	"strings"
	"syscall"

	"github.com/pkg/xattr"
)

// Xattr is a collection of all the extended attributes of a given file
type Xattr map[string]string

// String returns the string representation of all the extended attributes
func (x Xattr) String() string {
	var s strings.Builder
	for k, v := range x {
		s.WriteString(fmt.Sprintf("%s=%s\n", k, v))
	}
	return s.String()
}

// Equal returns true if all xattr of 'x' is the same as all the
// xattr of 'y' and returns false otherwise.
func (x Xattr) Equal(y Xattr) bool {
	if len(x) != len(y) {
		return false
	}
	for k, a := range x {
		if b, ok := y[k]; !ok || a != b {
			return false
		}
	}
	return true
}

// the xattr syscall surface; bound once at startup to a real or a
// no-op implementation depending on what the host can do
type xattrOps interface {
	list(nm string) ([]string, error)
	get(nm, key string) ([]byte, error)
	set(nm, key string, val []byte) error

	llist(nm string) ([]string, error)
	lget(nm, key string) ([]byte, error)
	lset(nm, key string, val []byte) error
}

var xops xattrOps = pickXattrOps()

func pickXattrOps() xattrOps {
	if xattr.XATTR_SUPPORTED {
		return sysXattr{}
	}
	return nopXattr{}
}

type sysXattr struct{}

func (sysXattr) list(nm string) ([]string, error)  { return xattr.List(nm) }
func (sysXattr) llist(nm string) ([]string, error) { return xattr.LList(nm) }

func (sysXattr) get(nm, key string) ([]byte, error)  { return xattr.Get(nm, key) }
func (sysXattr) lget(nm, key string) ([]byte, error) { return xattr.LGet(nm, key) }

func (sysXattr) set(nm, key string, val []byte) error  { return xattr.Set(nm, key, val) }
func (sysXattr) lset(nm, key string, val []byte) error { return xattr.LSet(nm, key, val) }

type nopXattr struct{}

func (nopXattr) list(string) ([]string, error)  { return nil, nil }
func (nopXattr) llist(string) ([]string, error) { return nil, nil }

func (nopXattr) get(string, string) ([]byte, error)  { return nil, nil }
func (nopXattr) lget(string, string) ([]byte, error) { return nil, nil }

func (nopXattr) set(string, string, []byte) error  { return nil }
func (nopXattr) lset(string, string, []byte) error { return nil }

// errnos that mean "this file or fs has no xattr to speak of" when
// listing; such a file simply has an empty attribute set
var xlistOk = []syscall.Errno{
	syscall.ENOTSUP,
	syscall.EOPNOTSUPP,
	xattr.ENOATTR,
	syscall.EINVAL,
}

// per attribute get/set errnos that skip just that attribute;
// anything else aborts the operation
var xattrOk = []syscall.Errno{
	syscall.EPERM,
	syscall.ENOTSUP,
	syscall.EOPNOTSUPP,
	xattr.ENOATTR,
	syscall.EINVAL,
}

// GetXattr returns all the extended attributes of a file.
// This function will traverse symlinks. Filesystems without xattr
// support yield an empty set and no error.
func GetXattr(nm string) (Xattr, error) {
	return fetch(nm, xops.list, xops.get)
}

// LgetXattr returns all the extended attributes of a file.
// If 'nm' points to a symlink, LgetXattr will return the
// extended attributes of the symlink and *not* the target.
func LgetXattr(nm string) (Xattr, error) {
	return fetch(nm, xops.llist, xops.lget)
}

// SetXattr sets/updates the xattr list for a given file.
func SetXattr(nm string, x Xattr) error {
	for k, v := range x {
		if err := xops.set(nm, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// LsetXattr sets/updates the xattr list for a given file.
// If 'nm' points to a symlink, LsetXattr will set/update the
// extended attributes of the symlink and *not* the target.
func LsetXattr(nm string, x Xattr) error {
	for k, v := range x {
		if err := xops.lset(nm, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// copy the attributes captured in fi.Xattr onto dst; individual
// attributes that can't be written are skipped, everything else
// aborts
func copyXattrs(dst string, fi *Info, follow bool) error {
	set := xops.set
	if !follow {
		set = xops.lset
	}

	for k, v := range fi.Xattr {
		if err := set(dst, k, []byte(v)); err != nil {
			if errAny(err, xattrOk...) {
				continue
			}
			return &CopyError{"xattr", fi.Nam, dst, err}
		}
	}
	return nil
}

// handy helper that works for files and symlinks
func fetch(nm string, list func(nm string) ([]string, error),
	get func(nm string, k string) ([]byte, error)) (Xattr, error) {
	keys, err := list(nm)
	if err != nil {
		if errAny(err, xlistOk...) {
			return make(Xattr), nil
		}
		return nil, err
	}

	x := make(Xattr, len(keys))
	for _, k := range keys {
		b, err := get(nm, k)
		if err != nil {
			if errAny(err, xattrOk...) {
				continue
			}
			return nil, err
		}
		x[k] = string(b)
	}
	return x, nil
}
