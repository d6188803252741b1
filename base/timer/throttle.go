// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timer provides a fixed-interval [Throttle] for rate limiting
// per-frame work against an injectable clock.
package timer

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle gates work to run at most once per Interval. It is a plain
// rate limiter: nothing is queued, and calls between ticks are dropped.
// It is not safe for concurrent use.
type Throttle struct {

	// Interval is the minimum time between two ready ticks.
	Interval time.Duration

	// Clock is the time source; the real clock is used if nil.
	Clock clockwork.Clock

	last    time.Time
	started bool
}

// NewThrottle returns a new [Throttle] with the given interval and clock.
func NewThrottle(interval time.Duration, clock clockwork.Clock) *Throttle {
	return &Throttle{Interval: interval, Clock: clock}
}

func (th *Throttle) now() time.Time {
	if th.Clock == nil {
		th.Clock = clockwork.NewRealClock()
	}
	return th.Clock.Now()
}

// Ready returns true if at least Interval has passed since the last
// ready tick, in which case the current time becomes the last tick.
// The first call is always ready.
func (th *Throttle) Ready() bool {
	now := th.now()
	if th.started && now.Sub(th.last) < th.Interval {
		return false
	}
	th.last = now
	th.started = true
	return true
}

// Reset forgets the last tick so that the next call to [Throttle.Ready]
// returns true.
func (th *Throttle) Reset() {
	th.started = false
	th.last = time.Time{}
}
