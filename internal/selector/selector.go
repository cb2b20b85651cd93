// internal/selector/selector.go

// Package selector turns button chords into configuration selections. A
// chord is entered by holding a non-zero button combination past the
// commit duration and then releasing all buttons; releasing earlier
// leaves the active selection unchanged.
package selector

import (
	"errors"
	"time"

	"github.com/dehne/jogwheel/internal/store"
)

// Buttons reports the raw pressed state of the three selector buttons as
// a bitmask (bit 0 = first button).
type Buttons interface {
	Read() (uint8, error)
}

// Indicator displays a chord value 1..7, typically as an RGB color.
type Indicator interface {
	Show(combo uint8)
}

// Config is the minimal runtime config the selector needs.
type Config struct {
	Debounce time.Duration
	Commit   time.Duration
}

// Selector runs as part of the main loop; Step is called once per pass.
type Selector struct {
	cfg     Config
	buttons Buttons
	st      *store.Store
	ind     Indicator

	deb [3]Debouncer

	pending   uint8 // chord 1..7 that release would commit
	holding   bool
	heldSince time.Time
	started   bool
}

// New creates a selector with immutable config. The indicator may be nil.
func New(cfg Config, buttons Buttons, st *store.Store, ind Indicator) (*Selector, error) {
	if cfg.Debounce <= 0 || cfg.Commit <= 0 {
		return nil, errors.New("selector: debounce and commit intervals must be > 0")
	}
	if buttons == nil {
		return nil, errors.New("selector: buttons required")
	}
	if st == nil {
		return nil, errors.New("selector: store required")
	}
	s := &Selector{cfg: cfg, buttons: buttons, st: st, ind: ind}
	for i := range s.deb {
		s.deb[i].Interval = cfg.Debounce
	}
	return s, nil
}

func (s *Selector) show(combo uint8) {
	if s.ind != nil {
		s.ind.Show(combo)
	}
}

// Step samples the buttons and advances the chord state machine. The
// pending target starts as the active selection plus one, so an immediate
// press-and-release re-selects the current configuration.
func (s *Selector) Step(now time.Time) error {
	if !s.started {
		s.started = true
		s.pending = uint8(s.st.Selection()) + 1
		s.show(s.pending)
	}

	raw, err := s.buttons.Read()
	if err != nil {
		return err
	}

	var combo uint8
	for i := range s.deb {
		if s.deb[i].Update(raw&(1<<i) != 0, now) {
			combo |= 1 << i
		}
	}

	if combo == 0 {
		s.holding = false
		// The indicator already shows pending from commit time; it now
		// reads as "selected" rather than "live".
		target := int(s.pending) - 1
		if target != s.st.Selection() {
			if err := s.st.SetSelection(target); err != nil {
				return err
			}
		}
		return nil
	}

	if combo == s.pending {
		s.holding = false
		return nil
	}
	if !s.holding {
		s.holding = true
		s.heldSince = now
		return nil
	}
	if now.Sub(s.heldSince) >= s.cfg.Commit {
		s.pending = combo
		s.holding = false
		s.show(combo)
	}
	return nil
}
