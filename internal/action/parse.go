// internal/action/parse.go
package action

import (
	"fmt"
)

// MaxEntries is the most entries a configuration may hold. A pointer move
// consumes two, so a configuration of nothing but moves holds 15 of them.
const MaxEntries = 31

// The console grammar, per direction:
//
//	<spec>      = <k-modifiers><payload>
//	<k-modifiers> = [c][a][s][g]            (case-insensitive)
//	keystroke   = '<printable-char> | 0x<hex><hex>
//	wheel       = <signed-num>
//	move        = [l][m][r]<signed-num><signed-num>   (x then y)
//	click       = 1..3 of l|m|r
//	<signed-num> = (+|-)<dec-digits>, value in -255..+255
//
// The leading type character (k|m|w|c) appears only on the clockwise spec
// of a pair; the counterclockwise spec reuses it.

type scanner struct {
	s string
	i int
}

func (sc *scanner) done() bool { return sc.i >= len(sc.s) }

func (sc *scanner) peek() (byte, bool) {
	if sc.done() {
		return 0, false
	}
	return sc.s[sc.i], true
}

func (sc *scanner) next() (byte, bool) {
	c, ok := sc.peek()
	if ok {
		sc.i++
	}
	return c, ok
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// scanMods consumes leading keyboard modifier letters.
func scanMods(sc *scanner) Mods {
	var m Mods
	for {
		c, ok := sc.peek()
		if !ok {
			return m
		}
		switch lower(c) {
		case 'c':
			m |= ModCtrl
		case 'a':
			m |= ModAlt
		case 's':
			m |= ModShift
		case 'g':
			m |= ModGui
		default:
			return m
		}
		sc.i++
	}
}

// scanSigned reads a mandatory sign and decimal digits. The magnitude limit
// is 255; the value is folded to its two's-complement low byte on encode.
func scanSigned(sc *scanner) (int, error) {
	sign, ok := sc.next()
	if !ok {
		return 0, fmt.Errorf("%w: expected signed number", ErrTruncated)
	}
	neg := false
	switch sign {
	case '+':
	case '-':
		neg = true
	default:
		return 0, fmt.Errorf("%w: %q is not a sign", ErrBadNumber, sign)
	}
	v := 0
	digits := 0
	for {
		c, ok := sc.peek()
		if !ok || !isDigit(c) {
			break
		}
		sc.i++
		v = v*10 + int(c-'0')
		digits++
		if v > 255 {
			return 0, fmt.Errorf("%w: %d exceeds 255", ErrOutOfRange, v)
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: sign without digits", ErrBadNumber)
	}
	if neg {
		v = -v
	}
	return v, nil
}

func trailing(sc *scanner) error {
	if !sc.done() {
		return fmt.Errorf("%w: trailing %q", ErrBadCharacter, sc.s[sc.i:])
	}
	return nil
}

// ParseKeystroke parses a k-spec body (type character already stripped).
func ParseKeystroke(s string) (Word, error) {
	sc := &scanner{s: s}
	mods := scanMods(sc)
	c, ok := sc.next()
	if !ok {
		return 0, fmt.Errorf("%w: keystroke value missing", ErrTruncated)
	}
	var code uint8
	switch c {
	case '\'':
		v, ok := sc.next()
		if !ok {
			return 0, fmt.Errorf("%w: quoted character missing", ErrTruncated)
		}
		if !isPrintable(v) {
			return 0, fmt.Errorf("%w: unprintable quoted character", ErrBadCharacter)
		}
		code = v & 0x7F
	case '0':
		x, ok := sc.next()
		if !ok || lower(x) != 'x' {
			return 0, fmt.Errorf("%w: expected 0x prefix", ErrBadNumber)
		}
		hh, ok1 := sc.next()
		hl, ok2 := sc.next()
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: keystroke needs two hex digits", ErrTruncated)
		}
		hi, okHi := hexVal(hh)
		lo, okLo := hexVal(hl)
		if !okHi || !okLo {
			return 0, fmt.Errorf("%w: bad hex digits in keystroke", ErrBadNumber)
		}
		code = hi<<4 | lo
	default:
		return 0, fmt.Errorf("%w: %q starts neither a quoted character nor a hex keycode", ErrBadCharacter, c)
	}
	if err := trailing(sc); err != nil {
		return 0, err
	}
	w := Keystroke{Mods: mods, Code: code}.Word()
	if w == 0 {
		return 0, ErrReservedWord
	}
	return w, nil
}

// ParseWheel parses a w-spec body.
func ParseWheel(s string) (Word, error) {
	sc := &scanner{s: s}
	mods := scanMods(sc)
	v, err := scanSigned(sc)
	if err != nil {
		return 0, err
	}
	if err := trailing(sc); err != nil {
		return 0, err
	}
	return WheelRoll{Mods: mods, Amount: int8(uint8(v))}.Word(), nil
}

// ParseClick parses a c-spec body.
func ParseClick(s string) (Word, error) {
	sc := &scanner{s: s}
	mods := scanMods(sc)
	if sc.done() {
		return 0, fmt.Errorf("%w: which button(s) to click", ErrMissingButton)
	}
	var buttons Buttons
	for i := 0; i < 3 && !sc.done(); i++ {
		c, _ := sc.next()
		switch lower(c) {
		case 'l':
			buttons |= ButtonLeft
		case 'm':
			buttons |= ButtonMiddle
		case 'r':
			buttons |= ButtonRight
		default:
			return 0, fmt.Errorf("%w: bad button name %q", ErrBadCharacter, c)
		}
	}
	if err := trailing(sc); err != nil {
		return 0, err
	}
	return ButtonClick{Mods: mods, Buttons: buttons}.Word(), nil
}

// ParseMove parses an m-spec body and returns the x and y words in storage
// order. Held-button letters mix freely with the modifier letters.
func ParseMove(s string) (Word, Word, error) {
	sc := &scanner{s: s}
	var mods Mods
	var held Buttons
scanFlags:
	for {
		c, ok := sc.peek()
		if !ok {
			break
		}
		switch lower(c) {
		case 'c':
			mods |= ModCtrl
		case 'a':
			mods |= ModAlt
		case 's':
			mods |= ModShift
		case 'g':
			mods |= ModGui
		case 'l':
			held |= ButtonLeft
		case 'm':
			held |= ButtonMiddle
		case 'r':
			held |= ButtonRight
		default:
			break scanFlags
		}
		sc.i++
	}
	dx, err := scanSigned(sc)
	if err != nil {
		return 0, 0, err
	}
	dy, err := scanSigned(sc)
	if err != nil {
		return 0, 0, err
	}
	if err := trailing(sc); err != nil {
		return 0, 0, err
	}
	x, y := PointerMove{Mods: mods, Held: held, DX: int8(uint8(dx)), DY: int8(uint8(dy))}.Words()
	return x, y, nil
}

// ParseConfig turns a flat token list ("k0xDA 0xD9 w+1 -1" style) into
// configuration entries. Tokens pair up clockwise-then-counterclockwise;
// a move pair contributes two entries.
func ParseConfig(tokens []string) ([]Entry, error) {
	var entries []Entry
	for i := 0; i < len(tokens); i += 2 {
		cw := tokens[i]
		if i+1 >= len(tokens) {
			return nil, ErrMissingSpec
		}
		cc := tokens[i+1]
		if cw == "" {
			return nil, fmt.Errorf("%w: empty spec", ErrTruncated)
		}
		kind := lower(cw[0])
		body := [2]string{cw[1:], cc}

		switch kind {
		case 'm':
			if len(entries)+2 > MaxEntries {
				return nil, ErrTooManyEntries
			}
			var e [2]Entry // e[0] x words, e[1] y words
			for dir := 0; dir < 2; dir++ {
				x, y, err := ParseMove(body[dir])
				if err != nil {
					return nil, fmt.Errorf("mouse spec %q: %w", tokens[i+dir], err)
				}
				e[0][dir] = x
				e[1][dir] = y
			}
			entries = append(entries, e[0], e[1])
		case 'k', 'w', 'c':
			if len(entries)+1 > MaxEntries {
				return nil, ErrTooManyEntries
			}
			var e Entry
			for dir := 0; dir < 2; dir++ {
				var w Word
				var err error
				switch kind {
				case 'k':
					w, err = ParseKeystroke(body[dir])
				case 'w':
					w, err = ParseWheel(body[dir])
				case 'c':
					w, err = ParseClick(body[dir])
				}
				if err != nil {
					return nil, fmt.Errorf("%c-spec %q: %w", kind, tokens[i+dir], err)
				}
				e[dir] = w
			}
			entries = append(entries, e)
		default:
			return nil, fmt.Errorf("%w: %q (must be k, m, w or c)", ErrUnknownType, cw[0])
		}
	}
	return entries, nil
}
