// internal/store/block.go
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/dehne/jogwheel/internal/action"
)

// Block is one stored configuration: an ordered list of clockwise /
// counterclockwise word pairs. A pointer move occupies two consecutive
// entries.
type Block struct {
	Entries []action.Entry
}

// EncodedSize is the block's on-image footprint: one count byte plus two
// 16-bit words per entry.
func (b Block) EncodedSize() int { return 1 + 4*len(b.Entries) }

func (b Block) encode() []byte {
	out := make([]byte, b.EncodedSize())
	out[0] = uint8(len(b.Entries))
	for i, e := range b.Entries {
		binary.LittleEndian.PutUint16(out[1+4*i:], uint16(e[action.Clockwise]))
		binary.LittleEndian.PutUint16(out[3+4*i:], uint16(e[action.Counterclockwise]))
	}
	return out
}

func decodeBlock(raw []byte) Block {
	n := int(raw[0])
	b := Block{Entries: make([]action.Entry, n)}
	for i := 0; i < n; i++ {
		b.Entries[i][action.Clockwise] = action.Word(binary.LittleEndian.Uint16(raw[1+4*i:]))
		b.Entries[i][action.Counterclockwise] = action.Word(binary.LittleEndian.Uint16(raw[3+4*i:]))
	}
	return b
}

func (b Block) validate() error {
	if len(b.Entries) > action.MaxEntries {
		return fmt.Errorf("%w: %d entries", ErrBlockTooLarge, len(b.Entries))
	}
	return nil
}
