// internal/action/action.go
package action

// In-memory action variants. These are deliberately distinct from Word:
// Word is the storage format, these are what the dispatcher works with.

// Keystroke is a keyboard chord: modifiers plus one keycode. Code holds a
// printable ASCII character or an HID usage in the 0x80+ range (arrows,
// function keys and so on).
type Keystroke struct {
	Mods Mods
	Code uint8
}

// WheelRoll spins the mouse wheel by Amount while the modifiers are held.
type WheelRoll struct {
	Mods   Mods
	Amount int8
}

// ButtonClick clicks the masked mouse buttons while the modifiers are held.
type ButtonClick struct {
	Mods    Mods
	Buttons Buttons
}

// PointerMove moves the pointer by (DX, DY) with Held mouse buttons pressed
// and the modifiers down. It persists as two words: the x word carries only
// the held-button flags and never causes output on its own; the y word
// carries the modifiers and is what triggers the move.
type PointerMove struct {
	Mods Mods
	Held Buttons
	DX   int8
	DY   int8
}

func isPrintable(c uint8) bool { return c >= 0x20 && c < 0x7F }

// Word encodes the keystroke. Printable keystrokes have the shift flag
// cleared: shift state is implied by character case, not carried separately.
func (k Keystroke) Word() Word {
	m := k.Mods
	if isPrintable(k.Code) {
		m &^= ModShift
	}
	return wordOf(m) | Word(k.Code)
}

func (r WheelRoll) Word() Word {
	return wordTypeMouse | subWheel<<subtypeShift | wordOf(r.Mods) | Word(uint8(r.Amount))
}

func (c ButtonClick) Word() Word {
	return wordTypeMouse | subClick<<subtypeShift | wordOf(c.Mods) | Word(uint8(c.Buttons)&uint8(valueMask))
}

// Words encodes the move as its x and y words, in storage order.
func (m PointerMove) Words() (Word, Word) {
	x := wordTypeMouse | subMoveX<<subtypeShift | Word(uint8(m.DX))
	if m.Held&ButtonLeft != 0 {
		x |= wordHeldLeft
	}
	if m.Held&ButtonMiddle != 0 {
		x |= wordHeldMiddle
	}
	if m.Held&ButtonRight != 0 {
		x |= wordHeldRight
	}
	y := wordTypeMouse | subMoveY<<subtypeShift | wordOf(m.Mods) | Word(uint8(m.DY))
	return x, y
}

func DecodeKeystroke(w Word) Keystroke {
	return Keystroke{Mods: modsOf(w), Code: uint8(w & valueMask)}
}

func DecodeWheel(w Word) WheelRoll {
	return WheelRoll{Mods: modsOf(w), Amount: int8(w & valueMask)}
}

func DecodeClick(w Word) ButtonClick {
	return ButtonClick{Mods: modsOf(w), Buttons: Buttons(w & valueMask & 0x7)}
}

// DecodeMove reconstructs a move from its word pair. The x word contributes
// the held buttons and x distance, the y word the modifiers and y distance.
func DecodeMove(x, y Word) PointerMove {
	var held Buttons
	if x&wordHeldLeft != 0 {
		held |= ButtonLeft
	}
	if x&wordHeldMiddle != 0 {
		held |= ButtonMiddle
	}
	if x&wordHeldRight != 0 {
		held |= ButtonRight
	}
	return PointerMove{
		Mods: modsOf(y),
		Held: held,
		DX:   int8(x & valueMask),
		DY:   int8(y & valueMask),
	}
}
