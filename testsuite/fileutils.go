// fileutils.go - utilities to make, checksum and mangle files

package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path"
	"strconv"

	"github.com/opencoff/go-mmap"
)

// make intermediate dirs as needed for 'dn'
func mkdir(dn string) error {
	exists, err := DirExists(dn)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return os.MkdirAll(dn, 0700)
}

// make a random file of size 'size' and return its sha256.
// A zero mode leaves the default creation mode alone.
func mkfile(fn string, size int64, mode fs.FileMode) ([]byte, error) {
	if err := mkdir(path.Dir(fn)); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", path.Dir(fn), err)
	}

	fd, err := os.OpenFile(fn, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	const chunkSize int64 = 65536

	h := sha256.New()
	buf := make([]byte, chunkSize)
	for size > 0 {
		sz := min(size, chunkSize)
		randBytes(buf[:sz])
		n, err := fd.Write(buf[:sz])
		if err != nil {
			return nil, err
		}
		h.Write(buf[:n])
		size -= int64(n)
	}

	if err = fd.Sync(); err != nil {
		return nil, err
	}

	if err = fd.Close(); err != nil {
		return nil, err
	}

	if mode != 0 {
		if err = os.Chmod(fn, mode); err != nil {
			return nil, err
		}
	}

	return h.Sum(nil), nil
}

// scribble over ~5% of 'fn' and extend it, so that a subsequent
// copy onto it must overwrite and truncate
func mutate(fn string) error {
	fd, err := os.OpenFile(fn, os.O_RDWR, 0600)
	if err != nil {
		return err
	}
	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return err
	}

	sz := st.Size()
	if sz > 0 {
		mm := mmap.New(fd)
		mapping, err := mm.Map(0, 0, mmap.PROT_WRITE|mmap.PROT_READ, 0)
		if err != nil {
			return err
		}

		n := max(sz/20, 1)
		buf := randBuf(n)
		ptr := mapping.Bytes()
		for i := int64(0); i < n; i++ {
			off := rand.N(sz)
			ptr[off] = buf[i]
		}
		mapping.Unmap()
	}

	// always grow the file
	if _, err = fd.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	if _, err = fd.Write(randBuf(4096)); err != nil {
		return err
	}

	return fd.Close()
}

// checksum the current contents of 'fn'
func cksumFile(fn string) ([]byte, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return nil, err
	}

	h := sha256.New()

	// empty files can't be mmap'd
	if st.Size() == 0 {
		return h.Sum(nil), nil
	}

	_, err = mmap.Reader(fd, func(b []byte) error {
		h.Write(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// parse an octal mode string like 0640 or 4755
func parseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: bad mode: %w", s, err)
	}

	m := fs.FileMode(v & 0777)
	if v&04000 != 0 {
		m |= fs.ModeSetuid
	}
	if v&02000 != 0 {
		m |= fs.ModeSetgid
	}
	if v&01000 != 0 {
		m |= fs.ModeSticky
	}
	return m, nil
}
