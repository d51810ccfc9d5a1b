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
	"time"

	"github.com/jetsetilly/framepace/logger"
)

// the number of consecutive frames without a sleep before the Limiter yields
// to other goroutines
const maxNoDelays = 16

// Config is the configuration of a Limiter. It is read once when the Limiter
// is created.
type Config struct {
	// target frame rate. zero means no limit
	FPS int

	// spin until the deadline rather than sleeping
	Perfect bool

	// yield to other goroutines while spinning in perfect mode
	PerfectYield bool
}

// Limiter paces the play loop. CheckFrame() should be called once per frame,
// after the frame has been updated and rendered.
type Limiter struct {
	clock Clock
	cfg   Config

	// the rate controller is fed by CheckFrame()
	Rate *Rate

	// start of the current frame
	frameStart time.Duration

	// difference between the requested and actual length of the previous
	// sleep. can be negative
	overSleep time.Duration

	// consecutive frames where there was no time left to sleep
	noDelays int

	// perfect mode deadline. advances by exactly one period each frame in
	// perfect mode and follows the start of the frame otherwise
	perfectDeadline time.Duration
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(clock Clock, cfg Config) *Limiter {
	cfg.FPS = max(cfg.FPS, 0)
	lmtr := &Limiter{
		clock: clock,
		cfg:   cfg,
		Rate:  NewRate(clock, cfg.FPS, cfg.Perfect),
	}
	lmtr.Start()
	return lmtr
}

// Start resets the Limiter. Should be called immediately before the first
// frame of the loop. An interrupt left over from a previous run is discarded.
func (lmtr *Limiter) Start() {
	lmtr.clock.Reset()
	lmtr.Rate.Start()
	lmtr.frameStart = lmtr.clock.Now()
	lmtr.perfectDeadline = lmtr.frameStart
	lmtr.overSleep = 0
	lmtr.noDelays = 0
}

// Interrupt wakes the Limiter if it is sleeping. Safe to call from any
// goroutine.
func (lmtr *Limiter) Interrupt() {
	lmtr.clock.Interrupt()
}

// CheckFrame waits until the end of the current frame and then begins the
// next frame.
func (lmtr *Limiter) CheckFrame() {
	period := lmtr.Rate.Period()
	frameEnd := lmtr.clock.Now()
	sleep := period - (frameEnd - lmtr.frameStart) - lmtr.overSleep

	if lmtr.cfg.Perfect {
		lmtr.spin()
	} else if sleep > 0 {
		if lmtr.cfg.FPS > 0 {
			if err := lmtr.clock.Sleep(sleep.Truncate(time.Millisecond)); err != nil {
				// an interrupted sleep is the same as waking early
				logger.Log(logger.Allow, "limiter", err)
			}
		}
		lmtr.overSleep = (lmtr.clock.Now() - frameEnd) - sleep
	} else {
		// the update and render used all of the frame period
		lmtr.overSleep = 0
		lmtr.noDelays++
		if lmtr.noDelays >= maxNoDelays {
			lmtr.clock.Yield()
			lmtr.noDelays = 0
		}
	}

	prevStart := lmtr.frameStart
	lmtr.frameStart = lmtr.clock.Now()
	if !lmtr.cfg.Perfect {
		lmtr.perfectDeadline = lmtr.frameStart
	}

	// with no limit the rate controller is given the real length of the
	// frame so that measurements are still taken
	if lmtr.cfg.FPS <= 0 {
		period = lmtr.frameStart - prevStart
	}
	lmtr.Rate.RecordFrame(period)
}

// spin until the perfect mode deadline
func (lmtr *Limiter) spin() {
	if lmtr.cfg.FPS <= 0 {
		lmtr.perfectDeadline = lmtr.clock.Now()
		return
	}

	lmtr.perfectDeadline += time.Second / time.Duration(lmtr.cfg.FPS)
	for lmtr.clock.Now() < lmtr.perfectDeadline {
		if lmtr.cfg.PerfectYield {
			lmtr.clock.Yield()
		}
	}
}

// OverSleep returns the sleep error carried into the next frame.
func (lmtr *Limiter) OverSleep() time.Duration {
	return lmtr.overSleep
}
