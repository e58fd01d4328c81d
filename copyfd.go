// copyfd.go - chunked copy between two open files
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
	"io"
	"os"
)

// copy buffer size; bounds peak memory use regardless of the
// size of the input file
const chunkSize = 16 * 1024

// CopyFd copies the contents of open file 'src' to open file
// 'dst' in fixed sized chunks until EOF. 'src' must be open for
// reading and 'dst' for writing; the file offsets are wherever
// the caller left them.
func CopyFd(dst, src *os.File) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := fullWrite(dst, buf[:n]); werr != nil {
				return &CopyError{"write", src.Name(), dst.Name(), werr}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return &CopyError{"read", src.Name(), dst.Name(), err}
		}
	}
}

// write all of 'b'; a single write(2) is allowed to be short
func fullWrite(d *os.File, b []byte) (int, error) {
	var z int
	n := len(b)
	for n > 0 {
		m, err := d.Write(b)
		if err != nil {
			return z, err
		}
		n -= m
		b = b[m:]
		z += m
	}
	return z, nil
}
