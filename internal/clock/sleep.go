// Package clock holds small time helpers shared by the polling loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d unless the context ends first, in which case
// it returns the context error.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
