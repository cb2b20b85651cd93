// internal/eeprom/eeprom_test.go
package eeprom

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jogwheel.eeprom")
	dev, err := OpenFile(path, Size)
	if err != nil {
		t.Fatalf("OpenFile err=%v", err)
	}
	defer dev.Close()

	if dev.Size() != Size {
		t.Fatalf("Size() = %d", dev.Size())
	}

	want := []byte{0x9D, 0xC2, 0x01, 0x00}
	if _, err := dev.WriteAt(want, 0); err != nil {
		t.Fatalf("WriteAt err=%v", err)
	}
	got := make([]byte, len(want))
	if _, err := dev.ReadAt(got, 0); err != nil {
		t.Fatalf("ReadAt err=%v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("read back %x, want %x", got, want)
	}

	// A fresh image reads back zero-filled.
	tail := make([]byte, 8)
	if _, err := dev.ReadAt(tail, Size-8); err != nil {
		t.Fatalf("ReadAt tail err=%v", err)
	}
	if !bytes.Equal(tail, make([]byte, 8)) {
		t.Errorf("fresh image tail not zero: %x", tail)
	}
}

func TestFile_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jogwheel.eeprom")
	dev, err := OpenFile(path, Size)
	if err != nil {
		t.Fatalf("OpenFile err=%v", err)
	}
	if _, err := dev.WriteAt([]byte{0xAB}, 100); err != nil {
		t.Fatalf("WriteAt err=%v", err)
	}
	dev.Close()

	dev, err = OpenFile(path, Size)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	defer dev.Close()
	b := make([]byte, 1)
	if _, err := dev.ReadAt(b, 100); err != nil {
		t.Fatalf("ReadAt err=%v", err)
	}
	if b[0] != 0xAB {
		t.Errorf("byte lost across reopen: %#02x", b[0])
	}
}

func TestBounds(t *testing.T) {
	dev := NewMem(Size)
	if _, err := dev.WriteAt([]byte{1, 2}, Size-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("overrun write err=%v", err)
	}
	if _, err := dev.ReadAt(make([]byte, 1), -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("negative offset err=%v", err)
	}
	if _, err := dev.WriteAt([]byte{1}, Size-1); err != nil {
		t.Errorf("last byte write err=%v", err)
	}
}
