// internal/eeprom/eeprom.go

// Package eeprom provides access to the fixed-size non-volatile region
// holding the configuration header and blocks. The daemon backs it with a
// file image; tests use the in-memory device.
package eeprom

import (
	"errors"
	"fmt"
	"os"
)

// Size is the region capacity in bytes, matching the part the image is
// flashed to.
const Size = 1024

var ErrOutOfBounds = errors.New("eeprom: access outside region")

// Device is the region access contract. Reads and writes are synchronous
// and bounded-latency; writes are durable when the call returns.
type Device interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int
}

func checkBounds(size int, n int, off int64) error {
	if off < 0 || off+int64(n) > int64(size) {
		return fmt.Errorf("%w: %d bytes at %d", ErrOutOfBounds, n, off)
	}
	return nil
}

// File is a Device backed by a fixed-size file image.
type File struct {
	f    *os.File
	size int
}

// OpenFile opens (creating if absent) a file image of exactly size bytes.
// A new image is zero-filled, which reads back as an invalid fingerprint
// and triggers factory initialization.
func OpenFile(path string, size int) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() != int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, err
		}
	}
	return &File{f: f, size: size}, nil
}

func (d *File) Size() int { return d.size }

func (d *File) ReadAt(p []byte, off int64) (int, error) {
	if err := checkBounds(d.size, len(p), off); err != nil {
		return 0, err
	}
	return d.f.ReadAt(p, off)
}

// WriteAt writes and syncs. EEPROM writes are slow but durable; the file
// image keeps the same contract so a crash never loses an acknowledged
// store mutation.
func (d *File) WriteAt(p []byte, off int64) (int, error) {
	if err := checkBounds(d.size, len(p), off); err != nil {
		return 0, err
	}
	n, err := d.f.WriteAt(p, off)
	if err != nil {
		return n, err
	}
	return n, d.f.Sync()
}

func (d *File) Close() error { return d.f.Close() }

// Mem is an in-memory Device for tests.
type Mem struct {
	buf []byte
}

func NewMem(size int) *Mem { return &Mem{buf: make([]byte, size)} }

func (d *Mem) Size() int { return len(d.buf) }

func (d *Mem) ReadAt(p []byte, off int64) (int, error) {
	if err := checkBounds(len(d.buf), len(p), off); err != nil {
		return 0, err
	}
	return copy(p, d.buf[off:]), nil
}

func (d *Mem) WriteAt(p []byte, off int64) (int, error) {
	if err := checkBounds(len(d.buf), len(p), off); err != nil {
		return 0, err
	}
	return copy(d.buf[off:], p), nil
}

// Bytes exposes the raw image for layout assertions in tests.
func (d *Mem) Bytes() []byte { return d.buf }
