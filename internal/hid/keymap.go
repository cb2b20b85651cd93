// internal/hid/keymap.go
package hid

// Stored keystroke values use the Arduino Keyboard library's encoding:
// printable ASCII stands for itself and non-printable codes 0x80.. name
// modifier and navigation keys. The tables below translate both to Linux
// input key codes, with a shift flag for characters that need it.

type mappedKey struct {
	Key   int
	Shift bool
}

// Linux input event codes (input-event-codes.h).
const (
	keyEsc       = 1
	keyBackspace = 14
	keyTab       = 15
	keyEnter     = 28
	keyLeftCtrl  = 29
	keyLeftShift = 42
	keyLeftAlt   = 56
	keySpace     = 57
	keyCapsLock  = 58
	keyHome      = 102
	keyUp        = 103
	keyPageUp    = 104
	keyLeft      = 105
	keyRight     = 106
	keyEnd       = 107
	keyDown      = 108
	keyPageDown  = 109
	keyInsert    = 110
	keyDelete    = 111
	keyLeftMeta  = 125
)

// specialKeys maps the non-printable stored codes.
var specialKeys = map[uint8]mappedKey{
	0x80: {Key: keyLeftCtrl},  // left ctrl
	0x81: {Key: keyLeftShift}, // left shift
	0x82: {Key: keyLeftAlt},   // left alt
	0x83: {Key: keyLeftMeta},  // left gui
	0xB0: {Key: keyEnter},
	0xB1: {Key: keyEsc},
	0xB2: {Key: keyBackspace},
	0xB3: {Key: keyTab},
	0xC1: {Key: keyCapsLock},
	0xC2: {Key: 59}, // F1
	0xC3: {Key: 60},
	0xC4: {Key: 61},
	0xC5: {Key: 62},
	0xC6: {Key: 63},
	0xC7: {Key: 64},
	0xC8: {Key: 65},
	0xC9: {Key: 66},
	0xCA: {Key: 67},
	0xCB: {Key: 68}, // F10
	0xCC: {Key: 87}, // F11
	0xCD: {Key: 88}, // F12
	0xD1: {Key: keyInsert},
	0xD2: {Key: keyHome},
	0xD3: {Key: keyPageUp},
	0xD4: {Key: keyDelete},
	0xD5: {Key: keyEnd},
	0xD6: {Key: keyPageDown},
	0xD7: {Key: keyRight},
	0xD8: {Key: keyLeft},
	0xD9: {Key: keyDown},
	0xDA: {Key: keyUp},
}

// asciiRows lays out the printable keys row by row; shifted variants share
// the unshifted key's code.
var asciiKeys = buildASCIIKeys()

func buildASCIIKeys() map[uint8]mappedKey {
	// Space, grave and backslash sit apart from the contiguous rows
	// (key 42 between them is left shift).
	m := map[uint8]mappedKey{
		' ':  {Key: keySpace},
		'`':  {Key: 41},
		'~':  {Key: 41, Shift: true},
		'\\': {Key: 43},
		'|':  {Key: 43, Shift: true},
	}

	rows := []struct {
		first   int    // key code of the first character
		plain   string // unshifted characters in key-code order
		shifted string // same keys with shift held
	}{
		{2, "1234567890", "!@#$%^&*()"},
		{12, "-=", "_+"},
		{16, "qwertyuiop[]", "QWERTYUIOP{}"},
		{30, "asdfghjkl;'", "ASDFGHJKL:\""},
		{44, "zxcvbnm,./", "ZXCVBNM<>?"},
	}
	for _, r := range rows {
		for i := range r.plain {
			m[r.plain[i]] = mappedKey{Key: r.first + i}
			m[r.shifted[i]] = mappedKey{Key: r.first + i, Shift: true}
		}
	}
	return m
}

// lookupKey resolves a stored keystroke value to a Linux key.
func lookupKey(code uint8) (mappedKey, bool) {
	if k, ok := asciiKeys[code]; ok {
		return k, true
	}
	k, ok := specialKeys[code]
	return k, ok
}
