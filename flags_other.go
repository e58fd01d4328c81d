// flags_other.go - file flags for hosts without st_flags
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

//go:build !darwin && !freebsd && !netbsd && !openbsd

package fcopy

// no st_flags on this host; nothing to copy
func copyFlags(dst string, fi *Info, follow bool) error {
	return nil
}
