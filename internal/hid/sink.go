// internal/hid/sink.go

// Package hid plays decoded actions out through virtual input devices
// created via uinput.
package hid

import (
	"errors"
	"fmt"

	"github.com/bendahl/uinput"

	"github.com/dehne/jogwheel/internal/action"
)

type Config struct {
	Path string // usually /dev/uinput
	Name string // device name reported to the kernel
}

// Uinput implements dispatch.Sink with one virtual keyboard and one
// virtual mouse. Not safe for concurrent use; the dispatch loop is the
// single caller.
type Uinput struct {
	kb    uinput.Keyboard
	mouse uinput.Mouse

	pressed []int // keys down, in press order
}

func New(cfg Config) (*Uinput, error) {
	if cfg.Path == "" {
		return nil, errors.New("hid: uinput path required")
	}
	if cfg.Name == "" {
		return nil, errors.New("hid: device name required")
	}

	kb, err := uinput.CreateKeyboard(cfg.Path, []byte(cfg.Name+" keyboard"))
	if err != nil {
		return nil, err
	}
	mouse, err := uinput.CreateMouse(cfg.Path, []byte(cfg.Name+" mouse"))
	if err != nil {
		kb.Close()
		return nil, err
	}
	return &Uinput{kb: kb, mouse: mouse}, nil
}

func (u *Uinput) Close() error {
	kbErr := u.kb.Close()
	mouseErr := u.mouse.Close()
	if kbErr != nil {
		return kbErr
	}
	return mouseErr
}

func (u *Uinput) press(key int) error {
	if err := u.kb.KeyDown(key); err != nil {
		return err
	}
	u.pressed = append(u.pressed, key)
	return nil
}

// PressModifiers holds down the flagged modifier keys.
func (u *Uinput) PressModifiers(mods action.Mods) error {
	for _, m := range []struct {
		on  bool
		key int
	}{
		{mods.Ctrl(), keyLeftCtrl},
		{mods.Alt(), keyLeftAlt},
		{mods.Shift(), keyLeftShift},
		{mods.Gui(), keyLeftMeta},
	} {
		if !m.on {
			continue
		}
		if err := u.press(m.key); err != nil {
			return err
		}
	}
	return nil
}

// PressKey holds down the key for a stored keystroke value, pressing
// shift first when the character requires it.
func (u *Uinput) PressKey(code uint8) error {
	k, ok := lookupKey(code)
	if !ok {
		return fmt.Errorf("hid: no key mapping for code 0x%02X", code)
	}
	if k.Shift && !u.holding(keyLeftShift) {
		if err := u.press(keyLeftShift); err != nil {
			return err
		}
	}
	return u.press(k.Key)
}

func (u *Uinput) holding(key int) bool {
	for _, k := range u.pressed {
		if k == key {
			return true
		}
	}
	return false
}

// ReleaseKeys lifts everything held, most recent first.
func (u *Uinput) ReleaseKeys() error {
	var firstErr error
	for i := len(u.pressed) - 1; i >= 0; i-- {
		if err := u.kb.KeyUp(u.pressed[i]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	u.pressed = u.pressed[:0]
	return firstErr
}

// MoveMouse moves the pointer and/or spins the vertical wheel.
func (u *Uinput) MoveMouse(dx, dy, roll int8) error {
	if dx != 0 || dy != 0 {
		if err := u.mouse.Move(int32(dx), int32(dy)); err != nil {
			return err
		}
	}
	if roll != 0 {
		if err := u.mouse.Wheel(false, int32(roll)); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uinput) ClickMouse(buttons action.Buttons) error {
	for _, b := range []struct {
		on    bool
		click func() error
	}{
		{buttons&action.ButtonLeft != 0, u.mouse.LeftClick},
		{buttons&action.ButtonRight != 0, u.mouse.RightClick},
		{buttons&action.ButtonMiddle != 0, u.mouse.MiddleClick},
	} {
		if !b.on {
			continue
		}
		if err := b.click(); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uinput) PressMouse(buttons action.Buttons) error {
	for _, b := range []struct {
		on    bool
		press func() error
	}{
		{buttons&action.ButtonLeft != 0, u.mouse.LeftPress},
		{buttons&action.ButtonRight != 0, u.mouse.RightPress},
		{buttons&action.ButtonMiddle != 0, u.mouse.MiddlePress},
	} {
		if !b.on {
			continue
		}
		if err := b.press(); err != nil {
			return err
		}
	}
	return nil
}

func (u *Uinput) ReleaseMouse(buttons action.Buttons) error {
	var firstErr error
	for _, b := range []struct {
		on      bool
		release func() error
	}{
		{buttons&action.ButtonLeft != 0, u.mouse.LeftRelease},
		{buttons&action.ButtonRight != 0, u.mouse.RightRelease},
		{buttons&action.ButtonMiddle != 0, u.mouse.MiddleRelease},
	} {
		if !b.on {
			continue
		}
		if err := b.release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
