// internal/action/format.go
package action

import (
	"fmt"
	"strings"
)

// Formatting renders words back into the console grammar. Every field
// round-trips: parsing a formatted spec reproduces the word bit-for-bit.

func writeMods(b *strings.Builder, m Mods) {
	if m.Ctrl() {
		b.WriteByte('c')
	}
	if m.Alt() {
		b.WriteByte('a')
	}
	if m.Shift() {
		b.WriteByte('s')
	}
	if m.Gui() {
		b.WriteByte('g')
	}
}

func writeButtons(b *strings.Builder, buttons Buttons) {
	if buttons&ButtonLeft != 0 {
		b.WriteByte('l')
	}
	if buttons&ButtonMiddle != 0 {
		b.WriteByte('m')
	}
	if buttons&ButtonRight != 0 {
		b.WriteByte('r')
	}
}

// FormatKeystroke renders a keystroke word body. Printable characters above
// space use the quote form; everything else renders as a hex keycode.
func FormatKeystroke(w Word) string {
	k := DecodeKeystroke(w)
	var b strings.Builder
	writeMods(&b, k.Mods)
	if isPrintable(k.Code) && k.Code > ' ' {
		b.WriteByte('\'')
		b.WriteByte(k.Code)
	} else {
		fmt.Fprintf(&b, "0x%02X", k.Code)
	}
	return b.String()
}

func FormatWheel(w Word) string {
	r := DecodeWheel(w)
	var b strings.Builder
	writeMods(&b, r.Mods)
	fmt.Fprintf(&b, "%+d", r.Amount)
	return b.String()
}

func FormatClick(w Word) string {
	c := DecodeClick(w)
	var b strings.Builder
	writeMods(&b, c.Mods)
	writeButtons(&b, c.Buttons)
	return b.String()
}

// FormatMove renders a move word pair: modifiers from the y word, held
// buttons from the x word, then the two distances.
func FormatMove(x, y Word) string {
	m := DecodeMove(x, y)
	var b strings.Builder
	writeMods(&b, m.Mods)
	writeButtons(&b, m.Held)
	fmt.Fprintf(&b, "%+d%+d", m.DX, m.DY)
	return b.String()
}

// FormatConfig renders entries as spec-pair tokens, the inverse of
// ParseConfig. The clockwise token carries the type character.
func FormatConfig(entries []Entry) ([]string, error) {
	var tokens []string
	for i := 0; i < len(entries); i++ {
		e := entries[i]
		switch e[Clockwise].Kind() {
		case KindKeystroke:
			tokens = append(tokens,
				"k"+FormatKeystroke(e[Clockwise]),
				FormatKeystroke(e[Counterclockwise]))
		case KindWheel:
			tokens = append(tokens,
				"w"+FormatWheel(e[Clockwise]),
				FormatWheel(e[Counterclockwise]))
		case KindClick:
			tokens = append(tokens,
				"c"+FormatClick(e[Clockwise]),
				FormatClick(e[Counterclockwise]))
		case KindMoveX:
			if i+1 >= len(entries) {
				return nil, fmt.Errorf("move entry %d has no y words", i)
			}
			y := entries[i+1]
			tokens = append(tokens,
				"m"+FormatMove(e[Clockwise], y[Clockwise]),
				FormatMove(e[Counterclockwise], y[Counterclockwise]))
			i++
		default:
			return nil, fmt.Errorf("entry %d: stray y-move word", i)
		}
	}
	return tokens, nil
}
