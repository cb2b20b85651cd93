// internal/wheel/decoder.go

// Package wheel decodes shaft rotation from two induction coil signals.
// A periodic tick runs one state machine per coil; the order in which the
// two coils rise within a bounded window determines the direction.
package wheel

import (
	"errors"
	"sync/atomic"
	"time"
)

// Movement is one detected rotation step.
type Movement int32

const (
	None Movement = iota
	Clockwise
	Counterclockwise
)

func (m Movement) String() string {
	switch m {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "none"
	}
}

// Sampler abstracts the ADC reading both coils in one pass.
// The decoder depends on levels only.
type Sampler interface {
	Sample() (a, b int, err error)
}

// Config is the minimal runtime config the decoder needs.
type Config struct {
	Trigger     [2]int        // level above which a coil counts as risen
	Reset       [2]int        // level below which a coil re-arms
	MaxPulseSep time.Duration // ceiling between the two coils' rises
}

// Per-coil states. A coil spends exactly one tick in rising; the latch
// decision happens on entry.
type coilState uint8

const (
	low coilState = iota
	rising
	rose
)

// Decoder turns coil samples into at most one pending Movement. The pending
// value is a single-slot mailbox: the tick loop latches it with a
// compare-and-swap and only the consumer's Take clears it, so rotation
// faster than the consumer drains stalls rather than corrupts.
type Decoder struct {
	cfg     Config
	sampler Sampler

	state    [2]coilState
	risingAt [2]time.Time

	pending    atomic.Int32
	sampleErrs atomic.Uint64
}

// New creates a decoder with immutable config.
func New(cfg Config, sampler Sampler) (*Decoder, error) {
	for c := 0; c < 2; c++ {
		if cfg.Trigger[c] <= cfg.Reset[c] {
			return nil, errors.New("wheel: trigger level must exceed reset level")
		}
	}
	if cfg.MaxPulseSep <= 0 {
		return nil, errors.New("wheel: max pulse separation must be > 0")
	}
	if sampler == nil {
		return nil, errors.New("wheel: sampler required")
	}
	return &Decoder{cfg: cfg, sampler: sampler}, nil
}

// Tick runs one sample pass and both coils' transitions. A sampler error
// skips the pass; coil noise has no side channel worth surfacing.
func (d *Decoder) Tick(now time.Time) {
	a, b, err := d.sampler.Sample()
	if err != nil {
		d.sampleErrs.Add(1)
		return
	}
	levels := [2]int{a, b}

	for c := 0; c < 2; c++ {
		switch d.state[c] {
		case low:
			if levels[c] > d.cfg.Trigger[c] {
				d.state[c] = rising
				d.latch(c, now)
			}
		case rising:
			d.state[c] = rose
		case rose:
			if levels[c] < d.cfg.Reset[c] {
				d.state[c] = low
			}
		}
	}
}

// latch records coil c's rise and, when the other coil rose within the
// window and no movement is still pending, latches the direction. Coil A
// rising second means the shaft passed B first: counterclockwise.
//
// Rises are not recorded while a movement sits undrained: a rise from a
// dropped episode must not pair with a fresh one after the drain.
func (d *Decoder) latch(c int, now time.Time) {
	if Movement(d.pending.Load()) != None {
		return
	}
	d.risingAt[c] = now
	other := 1 - c
	if d.risingAt[other].IsZero() || now.Sub(d.risingAt[other]) > d.cfg.MaxPulseSep {
		return
	}
	dir := Clockwise
	if c == 0 {
		dir = Counterclockwise
	}
	d.pending.CompareAndSwap(int32(None), int32(dir))
}

// Take returns the pending movement and clears it in one indivisible step.
func (d *Decoder) Take() Movement {
	return Movement(d.pending.Swap(int32(None)))
}

// SampleErrors reports how many ticks were skipped on sampler failures.
func (d *Decoder) SampleErrors() uint64 {
	return d.sampleErrs.Load()
}
