// errors.go - descriptive errors for fcopy
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
	"fmt"
	"syscall"
)

// SameFileError is returned when source and destination resolve
// to the identical underlying file; the copy is refused before
// anything is written.
type SameFileError struct {
	Src string
	Dst string
}

// Error returns a string representation of SameFileError
func (e *SameFileError) Error() string {
	return fmt.Sprintf("%s and %s are the same file", e.Src, e.Dst)
}

// SpecialFileError is returned when one of the endpoints is a
// named pipe; a fifo has no stored bytes to copy.
type SpecialFileError struct {
	Path string
}

// Error returns a string representation of SpecialFileError
func (e *SpecialFileError) Error() string {
	return fmt.Sprintf("`%s` is a named pipe", e.Path)
}

// CopyError represents the errors returned by
// Copy and CopyFd
type CopyError struct {
	Op  string
	Src string
	Dst string
	Err error
}

// Error returns a string representation of CopyError
func (e *CopyError) Error() string {
	return fmt.Sprintf("copy: %s '%s' '%s': %s",
		e.Op, e.Src, e.Dst, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *CopyError) Unwrap() error {
	return e.Err
}

// errAny returns true if err - or anything it wraps - is one of
// the errnos in 'errs'.
func errAny(err error, errs ...syscall.Errno) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

var _ error = &SameFileError{}
var _ error = &SpecialFileError{}
var _ error = &CopyError{}
