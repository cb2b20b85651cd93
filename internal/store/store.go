// internal/store/store.go

// Package store manages the configuration header and blocks kept in the
// EEPROM region: allocation, lookup, update, append, and removal with
// compaction.
//
// Mutations follow a fixed discipline: all affected blocks are rewritten
// first and the header is persisted last, so a power loss mid-operation can
// lose new data but never leaves the offset table pointing at garbage.
// A crash mid-compaction can leave blocks shifted with the header not yet
// updated; without transactional writes that window is accepted.
package store

import (
	"sync"

	"github.com/dehne/jogwheel/internal/action"
	"github.com/dehne/jogwheel/internal/eeprom"
)

// Factory default: one block mapping clockwise to up-arrow and
// counterclockwise to down-arrow.
const (
	keyUpArrow   = 0xDA
	keyDownArrow = 0xD9
)

// Store owns the header's in-memory mirror; every mutation funnels through
// it. The mutex serializes the dispatch loop, the selector and the console,
// which share the one store.
type Store struct {
	mu     sync.Mutex
	dev    eeprom.Device
	header Header
}

// Open loads the header from the device. On a fingerprint mismatch the
// region is (re)initialized to the factory default; the second result
// reports whether that happened.
func Open(dev eeprom.Device) (*Store, bool, error) {
	s := &Store{dev: dev}
	buf := make([]byte, HeaderSize)
	if _, err := dev.ReadAt(buf, 0); err != nil {
		return nil, false, err
	}
	s.header = decodeHeader(buf)
	if s.header.Fingerprint == Fingerprint {
		// The selection indexes ActiveMap everywhere downstream; a
		// fingerprint-valid image with an out-of-range selection byte is
		// corrupt, not salvageable.
		if s.header.Selection >= NumCombos {
			return nil, false, ErrCorrupt
		}
		return s, false, nil
	}

	h := Header{Fingerprint: Fingerprint, Selection: 1}
	h.BlockOffset[0] = HeaderSize
	blk := Block{Entries: []action.Entry{{
		action.Keystroke{Code: keyUpArrow}.Word(),
		action.Keystroke{Code: keyDownArrow}.Word(),
	}}}
	if err := s.writeBlockAt(HeaderSize, blk); err != nil {
		return nil, false, err
	}
	s.header = h
	if err := s.writeHeader(); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (s *Store) writeHeader() error {
	_, err := s.dev.WriteAt(s.header.encode(), 0)
	return err
}

func (s *Store) writeBlockAt(off uint16, b Block) error {
	_, err := s.dev.WriteAt(b.encode(), int64(off))
	return err
}

// readBlock reads the block for a used slot. Callers hold the lock and have
// validated the slot.
func (s *Store) readBlock(slot int) (Block, error) {
	off := int64(s.header.BlockOffset[slot])
	count := make([]byte, 1)
	if _, err := s.dev.ReadAt(count, off); err != nil {
		return Block{}, err
	}
	size := 1 + 4*int(count[0])
	if off+int64(size) > int64(s.dev.Size()) {
		return Block{}, ErrCorrupt
	}
	raw := make([]byte, size)
	if _, err := s.dev.ReadAt(raw, off); err != nil {
		return Block{}, err
	}
	return decodeBlock(raw), nil
}

// blockSize returns a used slot's encoded size without decoding its entries.
func (s *Store) blockSize(slot int) (int, error) {
	count := make([]byte, 1)
	if _, err := s.dev.ReadAt(count, int64(s.header.BlockOffset[slot])); err != nil {
		return 0, err
	}
	return 1 + 4*int(count[0]), nil
}

func (s *Store) checkUsedSlot(slot int) error {
	if slot < 0 || slot >= NumSlots {
		return ErrBadSlot
	}
	if s.header.BlockOffset[slot] == 0 {
		return ErrUnusedSlot
	}
	return nil
}

// ReadBlock returns the configuration stored in a used slot.
func (s *Store) ReadBlock(slot int) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUsedSlot(slot); err != nil {
		return Block{}, err
	}
	return s.readBlock(slot)
}

// WriteBlock rewrites a used slot in place. The caller must have validated
// that the new block has the same encoded size budget; the offsets of
// higher slots are not adjusted.
func (s *Store) WriteBlock(slot int, b Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUsedSlot(slot); err != nil {
		return err
	}
	if err := b.validate(); err != nil {
		return err
	}
	return s.writeBlockAt(s.header.BlockOffset[slot], b)
}

func (s *Store) freeSpace() (int, error) {
	free := s.dev.Size() - HeaderSize
	for slot := 0; slot < NumSlots && s.header.BlockOffset[slot] != 0; slot++ {
		size, err := s.blockSize(slot)
		if err != nil {
			return 0, err
		}
		free -= size
	}
	return free, nil
}

// FreeSpace reports the bytes still available for new blocks.
func (s *Store) FreeSpace() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freeSpace()
}

// ConfiguredCount reports the number of used slots, always at least 1.
func (s *Store) ConfiguredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 1
	for n < NumSlots && s.header.BlockOffset[n] != 0 {
		n++
	}
	return n
}

// AddBlock appends the block at the first unused slot and returns the slot
// number. The block is persisted before the header so a crash in between
// leaves the image describing the old state.
func (s *Store) AddBlock(b Block) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := b.validate(); err != nil {
		return 0, err
	}
	free, err := s.freeSpace()
	if err != nil {
		return 0, err
	}
	if b.EncodedSize() > free || s.header.BlockOffset[NumSlots-1] != 0 {
		return 0, ErrNoSpace
	}
	slot := 1
	for s.header.BlockOffset[slot] != 0 {
		slot++
	}
	prevSize, err := s.blockSize(slot - 1)
	if err != nil {
		return 0, err
	}
	off := s.header.BlockOffset[slot-1] + uint16(prevSize)
	if err := s.writeBlockAt(off, b); err != nil {
		return 0, err
	}
	s.header.BlockOffset[slot] = off
	if err := s.writeHeader(); err != nil {
		return 0, err
	}
	return slot, nil
}

// RemoveBlock deletes a slot and compacts everything above it: higher
// blocks move down one slot with their offsets reduced by the removed
// block's size, chord mappings pointing at the slot fall back to 0, and
// mappings above it shift down. Slot 0 cannot be removed.
func (s *Store) RemoveBlock(slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot == 0 {
		return ErrDefaultBlock
	}
	if err := s.checkUsedSlot(slot); err != nil {
		return err
	}
	size, err := s.blockSize(slot)
	if err != nil {
		return err
	}
	delta := uint16(size)

	h := s.header
	for c := range h.ActiveMap {
		switch {
		case h.ActiveMap[c] == uint8(slot):
			h.ActiveMap[c] = 0
		case h.ActiveMap[c] > uint8(slot):
			h.ActiveMap[c]--
		}
	}

	shifted := false
	for i := slot + 1; i < NumSlots && s.header.BlockOffset[i] != 0; i++ {
		blk, err := s.readBlock(i)
		if err != nil {
			return err
		}
		newOff := s.header.BlockOffset[i] - delta
		if err := s.writeBlockAt(newOff, blk); err != nil {
			return err
		}
		h.BlockOffset[i-1] = newOff
		h.BlockOffset[i] = 0
		shifted = true
	}
	if !shifted {
		h.BlockOffset[slot] = 0
	}

	s.header = h
	return s.writeHeader()
}

// SetMapping assigns a used slot to a chord (0..NumCombos-1) and persists
// the header.
func (s *Store) SetMapping(combo, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if combo < 0 || combo >= NumCombos {
		return ErrBadCombo
	}
	if err := s.checkUsedSlot(slot); err != nil {
		return err
	}
	s.header.ActiveMap[combo] = uint8(slot)
	return s.writeHeader()
}

// Selection reports which chord's mapping is in effect.
func (s *Store) Selection() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.header.Selection)
}

// SetSelection records the active chord and persists the header.
func (s *Store) SetSelection(sel int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sel < 0 || sel >= NumCombos {
		return ErrBadCombo
	}
	s.header.Selection = uint8(sel)
	return s.writeHeader()
}

// ActiveBlock reads the block the current selection maps to.
func (s *Store) ActiveBlock() (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := int(s.header.ActiveMap[s.header.Selection])
	if err := s.checkUsedSlot(slot); err != nil {
		return Block{}, err
	}
	return s.readBlock(slot)
}

// Header returns a copy of the in-memory mirror, for display.
func (s *Store) Header() Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}
