// internal/action/word.go
package action

// Word is the 16-bit wire form of one directional action. The layout is
// protocol-locked: it is what gets persisted to the EEPROM image, so these
// values MUST NOT change.
//
//	bit 15      0 = keyboard, 1 = mouse
//	bits 13:12  mouse subtype (wheel=0, x-move=1, y-move=2, click=3)
//	bits 11:8   modifier flags (ctrl/alt/shift/gui), except in an x-move
//	            word where they are the held-button flags (left/mid/right)
//	bits 7:0    value byte: keycode for keyboard, two's-complement
//	            distance for wheel and moves, button mask for clicks
//
// The all-zero word is reserved: it would read as "keyboard, no modifiers,
// keycode 0", which is never a meaningful keystroke, so zero means "unset".
type Word uint16

const (
	wordTypeMouse Word = 0x8000

	subtypeMask  Word = 0x3000
	subtypeShift      = 12

	subWheel Word = 0
	subMoveX Word = 1
	subMoveY Word = 2
	subClick Word = 3

	wordCtrl  Word = 0x0800
	wordAlt   Word = 0x0400
	wordShift Word = 0x0200
	wordGui   Word = 0x0100

	wordHeldLeft   Word = 0x0400
	wordHeldMiddle Word = 0x0200
	wordHeldRight  Word = 0x0100

	valueMask Word = 0x00FF
)

// Mods is the in-memory set of keyboard modifier flags.
type Mods uint8

const (
	ModCtrl Mods = 1 << 3
	ModAlt  Mods = 1 << 2
	// ModShift is implied by character case for printable keystrokes and is
	// cleared on encode for them; it survives only on raw keycode entries.
	ModShift Mods = 1 << 1
	ModGui   Mods = 1 << 0
)

func (m Mods) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Mods) Alt() bool   { return m&ModAlt != 0 }
func (m Mods) Shift() bool { return m&ModShift != 0 }
func (m Mods) Gui() bool   { return m&ModGui != 0 }

// Buttons is a mouse button mask. The same three bits are used for the
// buttons held during a move and for the buttons named in a click.
type Buttons uint8

const (
	ButtonLeft   Buttons = 1 << 0
	ButtonRight  Buttons = 1 << 1
	ButtonMiddle Buttons = 1 << 2
)

// Kind tells which variant a single word encodes.
type Kind uint8

const (
	KindKeystroke Kind = iota
	KindWheel
	KindMoveX
	KindMoveY
	KindClick
)

func (w Word) Kind() Kind {
	if w&wordTypeMouse == 0 {
		return KindKeystroke
	}
	switch (w & subtypeMask) >> subtypeShift {
	case subWheel:
		return KindWheel
	case subMoveX:
		return KindMoveX
	case subMoveY:
		return KindMoveY
	default:
		return KindClick
	}
}

func modsOf(w Word) Mods {
	var m Mods
	if w&wordCtrl != 0 {
		m |= ModCtrl
	}
	if w&wordAlt != 0 {
		m |= ModAlt
	}
	if w&wordShift != 0 {
		m |= ModShift
	}
	if w&wordGui != 0 {
		m |= ModGui
	}
	return m
}

func wordOf(m Mods) Word {
	var w Word
	if m.Ctrl() {
		w |= wordCtrl
	}
	if m.Alt() {
		w |= wordAlt
	}
	if m.Shift() {
		w |= wordShift
	}
	if m.Gui() {
		w |= wordGui
	}
	return w
}

// Entry is one configuration entry: the clockwise word and the
// counterclockwise word. A pointer move occupies two consecutive entries
// (x words, then y words).
type Entry [2]Word

// Directions index into an Entry.
const (
	Clockwise        = 0
	Counterclockwise = 1
)
