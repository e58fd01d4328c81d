// meta.go - metadata phase of a copy
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
	"io/fs"
	"os"
)

// an applier copies one class of metadata onto dst; fi.Nam is the
// source path for error reporting
type applier func(dst string, fi *Info, follow bool) error

// applied after the content phase: times first, then xattr,
// permission bits and finally file flags
var mdAppliers = []applier{
	copyTimes,
	copyXattrs,
	copyMode,
	copyFlags,
}

// copy metadata from c.src to c.dst. Symlinks are followed unless
// the caller asked not to AND both endpoints are themselves
// symlinks; a lone symlink on either side still gets the metadata
// of whatever it points at.
func (c *copier) copyMeta() error {
	follow := c.follow || !(isLink(c.src) && isLink(c.dst))

	var fi *Info
	var err error
	if follow {
		fi, err = Stat(c.src)
	} else {
		fi, err = Lstat(c.src)
	}
	if err != nil {
		return &CopyError{"stat", c.src, c.dst, err}
	}

	for _, fp := range mdAppliers {
		if err := fp(c.dst, fi, follow); err != nil {
			return err
		}
	}
	return nil
}

func isLink(nm string) bool {
	fi, err := os.Lstat(nm)
	return err == nil && fi.Mode()&fs.ModeSymlink != 0
}
