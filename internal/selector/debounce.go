// internal/selector/debounce.go
package selector

import "time"

// Debouncer accepts a raw level change only after it has held steady for
// Interval. A change that reverts mid-wait is discarded and the timer
// resets.
type Debouncer struct {
	Interval time.Duration

	level   bool
	waiting bool
	since   time.Time
}

// Update feeds one raw sample and returns the accepted level.
func (d *Debouncer) Update(raw bool, now time.Time) bool {
	if raw == d.level {
		d.waiting = false
		return d.level
	}
	if !d.waiting {
		d.waiting = true
		d.since = now
		return d.level
	}
	if now.Sub(d.since) >= d.Interval {
		d.level = raw
		d.waiting = false
	}
	return d.level
}
