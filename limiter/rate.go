// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package limiter

import (
	"math"
	"sync/atomic"
	"time"
)

// The limits of the rate controller. The current rate is kept within
// RateBand frames per second of the configured rate and is not changed when
// the measured rate is within RateDeadBand of the configured rate.
const (
	RateBand     = 10
	RateDeadBand = 1.0
)

// the amount of frame time accumulated before a measurement is taken
const measurementWindow = time.Second

// Rate measures the achieved frame rate and adjusts the current target rate
// towards the configured rate.
//
// Only RecordFrame() changes the state of Rate and it should only be called
// from the play loop. Measured() and Current() can be called from any
// goroutine.
type Rate struct {
	clock Clock

	configured int
	perfect    bool

	// current target rate and the period derived from it. period is zero
	// only when the configured rate is zero, meaning there is no limit
	current int
	period  time.Duration

	// measurement window
	frames      int
	accumulated time.Duration
	windowStart time.Duration

	// copies of the measured and current rate for other goroutines
	measured      atomic.Uint64 // float64 bits
	currentShared atomic.Int64
}

// NewRate is the preferred method of initialisation for the Rate type. A
// configured rate of zero or less means there is no limit to the frame rate.
func NewRate(clock Clock, configured int, perfect bool) *Rate {
	r := &Rate{
		clock:      clock,
		configured: max(configured, 0),
		perfect:    perfect,
	}
	r.Start()
	return r
}

// Start a new measurement window and set the current rate to the configured
// rate.
func (r *Rate) Start() {
	r.setCurrent(r.configured)
	r.frames = 0
	r.accumulated = 0
	r.windowStart = r.clock.Now()
	r.measured.Store(math.Float64bits(0))
}

// setCurrent is the only place where current is changed.
//
// a current rate of zero with a configured limit keeps the period of the
// previous rate. the loop continues to sleep and the next measurement can
// raise the rate again
func (r *Rate) setCurrent(rate int) {
	r.current = rate
	if rate > 0 {
		r.period = time.Second / time.Duration(rate)
	} else if r.configured <= 0 {
		r.period = 0
	}
	r.currentShared.Store(int64(rate))
}

// RecordFrame adds a frame of the given length to the measurement window.
// Once a second's worth of frames has been recorded the frame rate is
// measured against the clock and the current target rate is adjusted. Returns
// true if a measurement was taken.
func (r *Rate) RecordFrame(period time.Duration) bool {
	r.frames++
	r.accumulated += period

	if r.accumulated < measurementWindow {
		return false
	}

	now := r.clock.Now()
	elapsed := now - r.windowStart

	if elapsed > 0 {
		measured := float64(r.frames) / float64(elapsed) * float64(time.Second)
		r.measured.Store(math.Float64bits(measured))
		r.adjust(measured)
	}

	r.frames = 0
	r.accumulated = 0
	r.windowStart = now

	return true
}

func (r *Rate) adjust(measured float64) {
	if r.configured <= 0 || r.perfect {
		return
	}

	if measured < float64(r.configured)-RateDeadBand {
		// too slow. allow the loop to sleep less
		r.setCurrent(min(r.current+1, r.configured+RateBand))
	} else if measured > float64(r.configured)+RateDeadBand {
		// too fast. make the loop sleep more
		r.setCurrent(max(r.current-1, r.configured-RateBand, 0))
	}
}

// Period returns the frame period for the current target rate. A value of
// zero means there is no limit, which is only the case if the configured rate
// is zero.
func (r *Rate) Period() time.Duration {
	return r.period
}

// Configured returns the configured frame rate.
func (r *Rate) Configured() int {
	return r.configured
}

// Current returns the current target frame rate.
func (r *Rate) Current() int {
	return int(r.currentShared.Load())
}

// Measured returns the most recently measured frame rate. It is zero until
// the first measurement is taken.
func (r *Rate) Measured() float64 {
	return math.Float64frombits(r.measured.Load())
}
