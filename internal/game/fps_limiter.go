package game

import "time"

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	limit int
	next  time.Time
}

// NewFPSLimiter creates a limiter capped at limit frames per second.
// A limit of 0 disables limiting.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Wait blocks until the next frame should be rendered.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
