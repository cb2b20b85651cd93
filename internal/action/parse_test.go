// internal/action/parse_test.go
package action

import (
	"errors"
	"testing"
)

func TestParseKeystroke(t *testing.T) {
	cases := []struct {
		in   string
		want Word
	}{
		{"0xDA", 0x00DA},
		{"0xd9", 0x00D9},
		{"'A", 0x0041},
		{"'a", 0x0061},
		{"c'x", 0x0878},
		{"cag0x1B", 0x0D1B},
		{"g'q", 0x0171},
	}
	for _, c := range cases {
		got, err := ParseKeystroke(c.in)
		if err != nil {
			t.Fatalf("ParseKeystroke(%q) err=%v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseKeystroke(%q) = %#04x, want %#04x", c.in, got, c.want)
		}
	}
}

func TestParseKeystroke_ShiftClearedForPrintable(t *testing.T) {
	got, err := ParseKeystroke("s'A")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != 0x0041 {
		t.Errorf("shift not cleared: got %#04x", got)
	}
	// Raw keycodes keep shift.
	got, err = ParseKeystroke("s0xDA")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != 0x02DA {
		t.Errorf("shift lost on keycode entry: got %#04x", got)
	}
}

func TestParseKeystroke_Failures(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrTruncated},
		{"c", ErrTruncated},
		{"'", ErrTruncated},
		{"0x4", ErrTruncated},
		{"0xZZ", ErrBadNumber},
		{"07", ErrBadNumber},
		{"q", ErrBadCharacter},
		{"0x41junk", ErrBadCharacter},
		{"0x00", ErrReservedWord},
	}
	for _, c := range cases {
		_, err := ParseKeystroke(c.in)
		if !errors.Is(err, c.want) {
			t.Errorf("ParseKeystroke(%q) err=%v, want %v", c.in, err, c.want)
		}
	}
}

func TestParseWheel(t *testing.T) {
	cases := []struct {
		in   string
		want Word
	}{
		{"+1", 0x8001},
		{"-1", 0x80FF},
		{"c+5", 0x8805},
		{"casg+127", 0x8F7F},
		{"-128", 0x8080},
	}
	for _, c := range cases {
		got, err := ParseWheel(c.in)
		if err != nil {
			t.Fatalf("ParseWheel(%q) err=%v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseWheel(%q) = %#04x, want %#04x", c.in, got, c.want)
		}
	}
}

func TestParseWheel_OutOfRange(t *testing.T) {
	for _, in := range []string{"+256", "-256", "+999"} {
		if _, err := ParseWheel(in); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ParseWheel(%q) err=%v, want ErrOutOfRange", in, err)
		}
	}
	if _, err := ParseWheel("5"); !errors.Is(err, ErrBadNumber) {
		t.Errorf("unsigned magnitude accepted")
	}
	if _, err := ParseWheel("+"); !errors.Is(err, ErrBadNumber) {
		t.Errorf("bare sign accepted")
	}
}

func TestParseClick(t *testing.T) {
	cases := []struct {
		in   string
		want Word
	}{
		{"l", 0xB001},
		{"r", 0xB002},
		{"m", 0xB004},
		{"lmr", 0xB007},
		{"cl", 0xB801},
	}
	for _, c := range cases {
		got, err := ParseClick(c.in)
		if err != nil {
			t.Fatalf("ParseClick(%q) err=%v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseClick(%q) = %#04x, want %#04x", c.in, got, c.want)
		}
	}
	if _, err := ParseClick("ca"); !errors.Is(err, ErrMissingButton) {
		t.Errorf("click without button accepted: %v", err)
	}
	if _, err := ParseClick("x"); !errors.Is(err, ErrBadCharacter) {
		t.Errorf("bad button name accepted: %v", err)
	}
}

func TestParseMove(t *testing.T) {
	x, y, err := ParseMove("cl+10-20")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	// x word: mouse, subtype 1, left held, dx=10
	if x != 0x940A {
		t.Errorf("x = %#04x, want 0x940A", x)
	}
	// y word: mouse, subtype 2, ctrl, dy=-20
	if y != 0xA8EC {
		t.Errorf("y = %#04x, want 0xA8EC", y)
	}

	if _, _, err := ParseMove("+1"); !errors.Is(err, ErrTruncated) {
		t.Errorf("single distance accepted: %v", err)
	}
	if _, _, err := ParseMove("+300+1"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out-of-range x accepted: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	entries, err := ParseConfig([]string{"k0xDA", "0xD9", "w+1", "-1"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0] != (Entry{0x00DA, 0x00D9}) {
		t.Errorf("entry 0 = %#04x", entries[0])
	}
	if entries[1] != (Entry{0x8001, 0x80FF}) {
		t.Errorf("entry 1 = %#04x", entries[1])
	}
}

func TestParseConfig_MovePair(t *testing.T) {
	entries, err := ParseConfig([]string{"m+5+0", "-5+0"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("move should occupy two entries, got %d", len(entries))
	}
	if entries[0][Clockwise].Kind() != KindMoveX || entries[1][Clockwise].Kind() != KindMoveY {
		t.Errorf("entries not in x-then-y order: %v %v",
			entries[0][Clockwise].Kind(), entries[1][Clockwise].Kind())
	}
}

func TestParseConfig_Failures(t *testing.T) {
	if _, err := ParseConfig([]string{"k0xDA"}); !errors.Is(err, ErrMissingSpec) {
		t.Errorf("odd token count accepted: %v", err)
	}
	if _, err := ParseConfig([]string{"x+1", "+1"}); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type accepted: %v", err)
	}

	// 16 move pairs need 32 entries, one over the budget.
	var tokens []string
	for i := 0; i < 16; i++ {
		tokens = append(tokens, "m+1+1", "+1+1")
	}
	if _, err := ParseConfig(tokens); !errors.Is(err, ErrTooManyEntries) {
		t.Errorf("oversized config accepted: %v", err)
	}
}
