// internal/action/format_test.go
package action

import (
	"testing"
)

func TestFormatParse_RoundTrip(t *testing.T) {
	// Every encodable action must survive format -> parse bit-for-bit.
	words := []struct {
		name string
		w    Word
		kind Kind
	}{
		{"up arrow", Keystroke{Code: 0xDA}.Word(), KindKeystroke},
		{"ctrl-z", Keystroke{Mods: ModCtrl, Code: 'z'}.Word(), KindKeystroke},
		{"shifted keycode", Keystroke{Mods: ModShift, Code: 0x0B}.Word(), KindKeystroke},
		{"quote char", Keystroke{Code: '\''}.Word(), KindKeystroke},
		{"wheel up", WheelRoll{Amount: 1}.Word(), KindWheel},
		{"wheel down big", WheelRoll{Mods: ModAlt, Amount: -100}.Word(), KindWheel},
		{"wheel byte fold", WheelRoll{Amount: -56}.Word(), KindWheel},
		{"click left", ButtonClick{Buttons: ButtonLeft}.Word(), KindClick},
		{"click all", ButtonClick{Mods: ModGui, Buttons: ButtonLeft | ButtonMiddle | ButtonRight}.Word(), KindClick},
	}
	for _, c := range words {
		var text string
		switch c.kind {
		case KindKeystroke:
			text = FormatKeystroke(c.w)
		case KindWheel:
			text = FormatWheel(c.w)
		case KindClick:
			text = FormatClick(c.w)
		}
		var got Word
		var err error
		switch c.kind {
		case KindKeystroke:
			got, err = ParseKeystroke(text)
		case KindWheel:
			got, err = ParseWheel(text)
		case KindClick:
			got, err = ParseClick(text)
		}
		if err != nil {
			t.Fatalf("%s: parse(%q) err=%v", c.name, text, err)
		}
		if got != c.w {
			t.Errorf("%s: %#04x -> %q -> %#04x", c.name, c.w, text, got)
		}
	}
}

func TestFormatParse_MoveRoundTrip(t *testing.T) {
	moves := []PointerMove{
		{DX: 1, DY: 1},
		{Mods: ModCtrl | ModShift, Held: ButtonLeft, DX: -5, DY: 100},
		{Held: ButtonLeft | ButtonMiddle | ButtonRight, DX: -128, DY: 127},
	}
	for _, m := range moves {
		x, y := m.Words()
		text := FormatMove(x, y)
		gx, gy, err := ParseMove(text)
		if err != nil {
			t.Fatalf("parse(%q) err=%v", text, err)
		}
		if gx != x || gy != y {
			t.Errorf("move (%#04x,%#04x) -> %q -> (%#04x,%#04x)", x, y, text, gx, gy)
		}
	}
}

func TestFormatConfig_RoundTrip(t *testing.T) {
	in := []string{"k0xDA", "0xD9", "mcl+10-20", "r-10+20", "cl", "r", "w+1", "-1"}
	entries, err := ParseConfig(in)
	if err != nil {
		t.Fatalf("ParseConfig err=%v", err)
	}
	out, err := FormatConfig(entries)
	if err != nil {
		t.Fatalf("FormatConfig err=%v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("token count %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("token %d = %q, want %q", i, out[i], in[i])
		}
	}
}

func TestDecodeMove_ModsFromYOnly(t *testing.T) {
	// The x word's flag bits are the held buttons (they share bit positions
	// with the modifier flags); modifiers ride only on the y word. Stripping
	// the y word's flag bits must drop the modifiers without touching the
	// held set or the distances.
	m := PointerMove{Mods: ModCtrl, Held: ButtonRight, DX: 3, DY: -3}
	x, y := m.Words()
	if x.Kind() != KindMoveX || y.Kind() != KindMoveY {
		t.Fatalf("kinds: %v %v", x.Kind(), y.Kind())
	}
	if got := DecodeMove(x, y); got != m {
		t.Errorf("DecodeMove = %+v, want %+v", got, m)
	}
	bare := DecodeMove(x, y&^(wordCtrl|wordAlt|wordShift|wordGui))
	if bare.Mods != 0 {
		t.Errorf("modifiers decoded from x word: %+v", bare)
	}
	if bare.Held != ButtonRight || bare.DX != 3 || bare.DY != -3 {
		t.Errorf("stripping y flags changed non-modifier fields: %+v", bare)
	}
}

func TestKeystrokeWord_ZeroReserved(t *testing.T) {
	if w := (Keystroke{}).Word(); w != 0 {
		t.Fatalf("zero keystroke encodes to %#04x", w)
	}
	if _, err := ParseKeystroke("0x00"); err == nil {
		t.Errorf("reserved zero word parsed successfully")
	}
}
