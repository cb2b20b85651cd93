// internal/dispatch/dispatch.go

// Package dispatch drains decoded wheel movements and plays the active
// configuration's action list for the detected direction out through the
// HID sink.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dehne/jogwheel/internal/action"
	"github.com/dehne/jogwheel/internal/store"
	"github.com/dehne/jogwheel/internal/wheel"
)

// Sink is the single HID contract the dispatcher drives; the uinput sink
// and the test fakes both implement it.
type Sink interface {
	PressModifiers(mods action.Mods) error
	PressKey(code uint8) error
	ReleaseKeys() error
	MoveMouse(dx, dy, roll int8) error
	ClickMouse(buttons action.Buttons) error
	PressMouse(buttons action.Buttons) error
	ReleaseMouse(buttons action.Buttons) error
}

// source is the dispatcher's read side of the decoder mailbox.
type source interface {
	Take() wheel.Movement
}

type Dispatcher struct {
	st   *store.Store
	sink Sink
	src  source
}

func New(st *store.Store, sink Sink, src source) (*Dispatcher, error) {
	if st == nil || sink == nil || src == nil {
		return nil, errors.New("dispatch: store, sink and source required")
	}
	return &Dispatcher{st: st, sink: sink, src: src}, nil
}

// Step takes at most one pending movement and dispatches the active
// block's actions for its direction. Returns nil when nothing is pending.
func (d *Dispatcher) Step() error {
	m := d.src.Take()
	if m == wheel.None {
		return nil
	}

	blk, err := d.st.ActiveBlock()
	if err != nil {
		return fmt.Errorf("dispatch: active block: %w", err)
	}

	dir := action.Clockwise
	if m == wheel.Counterclockwise {
		dir = action.Counterclockwise
	}

	var errs []string
	for i := 0; i < len(blk.Entries); i++ {
		w := blk.Entries[i][dir]
		if w == 0 {
			// Unset slot, not a keystroke.
			continue
		}

		switch w.Kind() {
		case action.KindKeystroke:
			d.collect(&errs, i, d.keystroke(action.DecodeKeystroke(w)))

		case action.KindWheel:
			d.collect(&errs, i, d.wheelRoll(action.DecodeWheel(w)))

		case action.KindClick:
			d.collect(&errs, i, d.click(action.DecodeClick(w)))

		case action.KindMoveX:
			// The x word only latches a distance; the paired y word in
			// the next entry triggers the move. An x word without its y
			// is never dispatched alone.
			if i+1 >= len(blk.Entries) || blk.Entries[i+1][dir].Kind() != action.KindMoveY {
				errs = append(errs, fmt.Sprintf("entry %d: move x word without y word", i))
				continue
			}
			d.collect(&errs, i, d.move(action.DecodeMove(w, blk.Entries[i+1][dir])))
			i++

		case action.KindMoveY:
			errs = append(errs, fmt.Sprintf("entry %d: stray move y word", i))
		}
	}

	if len(errs) > 0 {
		return errors.New("dispatch: " + strings.Join(errs, "; "))
	}
	return nil
}

func (d *Dispatcher) collect(errs *[]string, i int, err error) {
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("entry %d: %v", i, err))
	}
}

// Modifiers are pressed before the primary action and everything pressed
// is released after it, for all four action kinds. The releases run even
// when the primary action fails: an entry may name a keycode the sink
// rejects, and the modifiers must not stay held on the host.

func (d *Dispatcher) keystroke(k action.Keystroke) error {
	if err := d.sink.PressModifiers(k.Mods); err != nil {
		return err
	}
	err := d.sink.PressKey(k.Code)
	if rerr := d.sink.ReleaseKeys(); err == nil {
		err = rerr
	}
	return err
}

func (d *Dispatcher) wheelRoll(r action.WheelRoll) error {
	if err := d.sink.PressModifiers(r.Mods); err != nil {
		return err
	}
	err := d.sink.MoveMouse(0, 0, r.Amount)
	if rerr := d.sink.ReleaseKeys(); err == nil {
		err = rerr
	}
	return err
}

func (d *Dispatcher) click(c action.ButtonClick) error {
	if err := d.sink.PressModifiers(c.Mods); err != nil {
		return err
	}
	err := d.sink.ClickMouse(c.Buttons)
	if rerr := d.sink.ReleaseKeys(); err == nil {
		err = rerr
	}
	return err
}

func (d *Dispatcher) move(m action.PointerMove) error {
	if err := d.sink.PressMouse(m.Held); err != nil {
		return err
	}
	err := d.sink.PressModifiers(m.Mods)
	if err == nil {
		err = d.sink.MoveMouse(m.DX, m.DY, 0)
	}
	if rerr := d.sink.ReleaseKeys(); err == nil {
		err = rerr
	}
	if rerr := d.sink.ReleaseMouse(m.Held); err == nil {
		err = rerr
	}
	return err
}
