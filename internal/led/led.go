// internal/led/led.go

// Package led drives the selection indicator, an RGB LED exposed through
// sysfs. Chord bits map straight onto channels (bit 0 red, bit 1 green,
// bit 2 blue), so chord 1 shows red, 3 yellow, 7 white.
package led

import (
	"errors"
	"log"
	"os"
)

type Config struct {
	RedPath   string // e.g. /sys/class/leds/jog:red/brightness
	GreenPath string
	BluePath  string
}

// SysfsRGB implements selector.Indicator. Writes are best effort: a
// missing or unwritable LED must not stall the main loop.
type SysfsRGB struct {
	paths [3]string
}

func New(cfg Config) (*SysfsRGB, error) {
	if cfg.RedPath == "" || cfg.GreenPath == "" || cfg.BluePath == "" {
		return nil, errors.New("led: all three channel paths required")
	}
	return &SysfsRGB{paths: [3]string{cfg.RedPath, cfg.GreenPath, cfg.BluePath}}, nil
}

// Show lights the channels for a chord 1..7; 0 turns the LED off.
func (l *SysfsRGB) Show(combo uint8) {
	for i, path := range l.paths {
		val := []byte("0")
		if combo&(1<<i) != 0 {
			val = []byte("1")
		}
		if err := os.WriteFile(path, val, 0o644); err != nil {
			log.Printf("led: write %s: %v", path, err)
		}
	}
}

var colorNames = [8]string{
	"off", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// ColorName names the color a chord displays, for console output.
func ColorName(combo uint8) string {
	if int(combo) >= len(colorNames) {
		return "off"
	}
	return colorNames[combo]
}
