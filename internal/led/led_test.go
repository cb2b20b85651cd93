// internal/led/led_test.go
package led

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShow(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		RedPath:   filepath.Join(dir, "red"),
		GreenPath: filepath.Join(dir, "green"),
		BluePath:  filepath.Join(dir, "blue"),
	}
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	l.Show(5) // magenta: red + blue
	for path, want := range map[string]string{
		cfg.RedPath:   "1",
		cfg.GreenPath: "0",
		cfg.BluePath:  "1",
	} {
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", filepath.Base(path), got, want)
		}
	}
}

func TestColorName(t *testing.T) {
	for combo, want := range map[uint8]string{
		0: "off", 1: "red", 3: "yellow", 7: "white", 9: "off",
	} {
		if got := ColorName(combo); got != want {
			t.Errorf("ColorName(%d) = %q, want %q", combo, got, want)
		}
	}
}
