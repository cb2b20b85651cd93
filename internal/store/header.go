// internal/store/header.go
package store

import "encoding/binary"

// On-image layout constants. These define the persisted format and MUST NOT
// change: existing EEPROM images depend on them. All multi-byte fields are
// little-endian (the format originated as an AVR struct dump).
const (
	// Fingerprint marks a region initialized by this firmware family.
	Fingerprint uint16 = 0xC29D

	// HeaderSize is the encoded header length: fingerprint (2) +
	// selection (1) + active map (7) + block offsets (16).
	HeaderSize = 26

	// NumSlots is the number of configuration block slots.
	NumSlots = 8

	// NumCombos is the number of non-zero button chords (1..7); the active
	// map and the selection index both range over 0..NumCombos-1.
	NumCombos = 7
)

// Header is the singleton record at offset 0.
type Header struct {
	Fingerprint uint16
	// Selection indexes ActiveMap and names the chord whose mapping is in
	// effect.
	Selection uint8
	// ActiveMap[i] is the block slot assigned to chord i+1.
	ActiveMap [NumCombos]uint8
	// BlockOffset[n] is the byte offset of slot n's block, or 0 for an
	// unused slot. Non-zero offsets are strictly increasing and packed
	// contiguously after the header; zeros form a trailing suffix. Slot 0
	// is permanent.
	BlockOffset [NumSlots]uint16
}

func (h *Header) encode() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], h.Fingerprint)
	b[2] = h.Selection
	copy(b[3:10], h.ActiveMap[:])
	for i, off := range h.BlockOffset {
		binary.LittleEndian.PutUint16(b[10+2*i:], off)
	}
	return b
}

func decodeHeader(b []byte) Header {
	var h Header
	h.Fingerprint = binary.LittleEndian.Uint16(b[0:2])
	h.Selection = b[2]
	copy(h.ActiveMap[:], b[3:10])
	for i := range h.BlockOffset {
		h.BlockOffset[i] = binary.LittleEndian.Uint16(b[10+2*i:])
	}
	return h
}
