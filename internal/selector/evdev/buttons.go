// internal/selector/evdev/buttons.go

// Package evdev reads the selector buttons from a Linux input device. A
// reader goroutine tracks key state; Read is a non-blocking snapshot for
// the main loop.
package evdev

import (
	"context"
	"sync/atomic"

	evdev "github.com/gvalkov/golang-evdev"
)

type Config struct {
	Device string
	Codes  [3]uint16 // key codes for buttons A, B, C
}

// Buttons implements selector.Buttons.
type Buttons struct {
	dev   *evdev.InputDevice
	codes [3]uint16
	state atomic.Uint32
}

func Open(cfg Config) (*Buttons, error) {
	dev, err := evdev.Open(cfg.Device)
	if err != nil {
		return nil, err
	}
	return &Buttons{dev: dev, codes: cfg.Codes}, nil
}

// Close unblocks a Run stuck in a read.
func (b *Buttons) Close() error {
	return b.dev.File.Close()
}

// Run consumes key events until the context is cancelled or the device
// read fails. Key repeats do not change state.
func (b *Buttons) Run(ctx context.Context) error {
	for {
		ev, err := b.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		keyev := evdev.NewKeyEvent(ev)
		for i, code := range b.codes {
			if keyev.Scancode != code {
				continue
			}
			switch keyev.State {
			case evdev.KeyDown:
				b.setBit(i, true)
			case evdev.KeyUp:
				b.setBit(i, false)
			}
		}
	}
}

func (b *Buttons) setBit(i int, on bool) {
	for {
		old := b.state.Load()
		next := old
		if on {
			next |= 1 << i
		} else {
			next &^= 1 << i
		}
		if b.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// Read reports the current pressed bitmask.
func (b *Buttons) Read() (uint8, error) {
	return uint8(b.state.Load()), nil
}
