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
	"runtime"
	"time"

	"github.com/jetsetilly/framepace/curated"
)

// Interrupted is the pattern of the error returned by Clock.Sleep() when the
// sleep ends early because of a call to Interrupt().
const Interrupted = "limiter: sleep interrupted"

// Clock is the source of time for the Limiter.
type Clock interface {
	// monotonic time since an arbitrary point
	Now() time.Duration

	// suspend the calling goroutine. returns an Interrupted error if the
	// sleep was ended early by Interrupt()
	Sleep(d time.Duration) error

	// give up the processor to other goroutines
	Yield()

	// wake a sleeping goroutine. may be called from any goroutine. if no
	// goroutine is sleeping then the next call to Sleep() returns
	// immediately
	Interrupt()

	// discard an interrupt that was not consumed by a call to Sleep()
	Reset()
}

// RealClock is an implementation of Clock using the host's monotonic clock.
type RealClock struct {
	start     time.Time
	interrupt chan struct{}
}

// NewRealClock is the preferred method of initialisation for the RealClock
// type.
func NewRealClock() *RealClock {
	return &RealClock{
		start:     time.Now(),
		interrupt: make(chan struct{}, 1),
	}
}

// Now implements the Clock interface.
func (clk *RealClock) Now() time.Duration {
	return time.Since(clk.start)
}

// Sleep implements the Clock interface.
func (clk *RealClock) Sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-clk.interrupt:
		return curated.Errorf(Interrupted)
	}
}

// Yield implements the Clock interface.
func (clk *RealClock) Yield() {
	runtime.Gosched()
}

// Interrupt implements the Clock interface.
func (clk *RealClock) Interrupt() {
	select {
	case clk.interrupt <- struct{}{}:
	default:
	}
}

// Reset implements the Clock interface.
func (clk *RealClock) Reset() {
	select {
	case <-clk.interrupt:
	default:
	}
}
