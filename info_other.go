// info_other.go - stat/lstat fallback for everything else
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

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !solaris

package fcopy

import (
	"io/fs"
	"os"
)

// These platforms only see what the portable stat exposes; the
// unix specific fields of Info stay zero.

// Stat is like os.Stat() but also returns xattr
func Stat(nm string) (*Info, error) {
	var ii Info
	if err := Statm(nm, &ii); err != nil {
		return nil, err
	}
	return &ii, nil
}

// Statm is like Stat above - except it uses caller supplied memory
func Statm(nm string, fi *Info) error {
	st, err := os.Stat(nm)
	if err != nil {
		return err
	}

	x, err := GetXattr(nm)
	if err != nil {
		return err
	}

	fillInfo(fi, nm, st, x)
	return nil
}

// Lstat is like os.Lstat() but also returns xattr
func Lstat(nm string) (*Info, error) {
	var ii Info
	if err := Lstatm(nm, &ii); err != nil {
		return nil, err
	}
	return &ii, nil
}

// Lstatm is like Lstat except it uses the caller's supplied memory
func Lstatm(nm string, fi *Info) error {
	st, err := os.Lstat(nm)
	if err != nil {
		return err
	}

	x, err := LgetXattr(nm)
	if err != nil {
		return err
	}

	fillInfo(fi, nm, st, x)
	return nil
}

func fillInfo(fi *Info, nm string, st fs.FileInfo, x Xattr) {
	*fi = Info{
		Nam:   nm,
		Mod:   st.Mode(),
		Siz:   st.Size(),
		Atim:  st.ModTime(),
		Mtim:  st.ModTime(),
		Ctim:  st.ModTime(),
		Xattr: x,
	}
}
