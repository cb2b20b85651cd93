// internal/wheel/runner.go
package wheel

import (
	"context"
	"time"
)

// Run drives Tick on a fixed period until the context is cancelled.
// One goroutine per decoder. No overlap.
func (d *Decoder) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.Tick(now)
		}
	}
}
