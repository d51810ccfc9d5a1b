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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/limiter"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/test"
)

// simulated clock. time only moves when the test says so or when the
// limiter sleeps or yields
type fakeClock struct {
	now time.Duration

	// requested sleep durations
	sleeps []time.Duration

	// added to the next sleep only
	overshoot time.Duration

	// the next sleep is interrupted half way through
	interruptNext bool

	// each yield advances the clock by this amount
	yieldStep time.Duration
	yields    int
}

func (clk *fakeClock) Now() time.Duration {
	return clk.now
}

func (clk *fakeClock) Sleep(d time.Duration) error {
	clk.sleeps = append(clk.sleeps, d)
	if clk.interruptNext {
		clk.interruptNext = false
		clk.now += d / 2
		return curated.Errorf(limiter.Interrupted)
	}
	clk.now += d + clk.overshoot
	clk.overshoot = 0
	return nil
}

func (clk *fakeClock) Yield() {
	clk.yields++
	clk.now += clk.yieldStep
}

func (clk *fakeClock) Interrupt() {
	clk.interruptNext = true
}

func (clk *fakeClock) Reset() {
	clk.interruptNext = false
}

func (clk *fakeClock) work(d time.Duration) {
	clk.now += d
}

func TestSleepBudget(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})
	test.ExpectEquality(t, lmtr.Rate.Period(), 20*time.Millisecond)

	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.DemandEquality(t, len(clk.sleeps), 1)
	test.ExpectEquality(t, clk.sleeps[0], 15*time.Millisecond)
	test.ExpectEquality(t, lmtr.OverSleep(), time.Duration(0))
	test.ExpectEquality(t, clk.now, 20*time.Millisecond)
}

func TestOverSleepCarriedOnce(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})

	const delta = 2 * time.Millisecond

	// first sleep overshoots
	clk.overshoot = delta
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, lmtr.OverSleep(), delta)

	// second frame has its budget reduced by exactly the overshoot
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, lmtr.OverSleep(), time.Duration(0))

	// third frame is back to normal
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()

	test.DemandEquality(t, len(clk.sleeps), 3)
	test.ExpectEquality(t, clk.sleeps[0], 15*time.Millisecond)
	test.ExpectEquality(t, clk.sleeps[1], 15*time.Millisecond-delta)
	test.ExpectEquality(t, clk.sleeps[2], 15*time.Millisecond)

	// no drift over the three frames
	test.ExpectEquality(t, clk.now, 60*time.Millisecond)
}

func TestUnderSleep(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})

	// negative overshoot means the clock woke early
	clk.overshoot = -3 * time.Millisecond
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, lmtr.OverSleep(), -3*time.Millisecond)

	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.DemandEquality(t, len(clk.sleeps), 2)
	test.ExpectEquality(t, clk.sleeps[1], 18*time.Millisecond)
}

func TestNoDelays(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})

	clk.overshoot = 4 * time.Millisecond
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, lmtr.OverSleep(), 4*time.Millisecond)

	// frames that take longer than the period never sleep and reset the
	// oversleep value
	for i := 1; i <= 32; i++ {
		clk.work(25 * time.Millisecond)
		lmtr.CheckFrame()
		test.ExpectEquality(t, lmtr.OverSleep(), time.Duration(0), i)
		test.ExpectEquality(t, clk.yields, i/16, i)
	}
	test.ExpectEquality(t, len(clk.sleeps), 1)
}

func TestInterruptedSleep(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})

	lmtr.Interrupt()
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()

	// woke early. the shortfall becomes a negative oversleep
	test.ExpectEquality(t, clk.now, 12500*time.Microsecond)
	test.ExpectEquality(t, lmtr.OverSleep(), -7500*time.Microsecond)

	entries := logger.Copy()
	test.DemandSuccess(t, len(entries) > 0)
	test.ExpectEquality(t, entries[len(entries)-1].Tag, "limiter")

	// next frame continues as normal
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, len(clk.sleeps), 2)
}

func TestPerfectMode(t *testing.T) {
	clk := &fakeClock{yieldStep: time.Millisecond}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50, Perfect: true, PerfectYield: true})

	for i := 1; i <= 10; i++ {
		clk.work(time.Duration(i) * time.Millisecond)
		lmtr.CheckFrame()
		test.ExpectEquality(t, clk.now, time.Duration(i)*20*time.Millisecond, i)
	}

	// perfect mode never sleeps
	test.ExpectEquality(t, len(clk.sleeps), 0)
	test.ExpectSuccess(t, clk.yields > 0)

	// a frame that overruns is caught up by the following frames
	clk.work(30 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, clk.now, 230*time.Millisecond)
	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, clk.now, 240*time.Millisecond)
}

func TestPerfectModeNoLimit(t *testing.T) {
	clk := &fakeClock{yieldStep: time.Millisecond}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 0, Perfect: true, PerfectYield: true})

	clk.work(5 * time.Millisecond)
	lmtr.CheckFrame()
	test.ExpectEquality(t, clk.now, 5*time.Millisecond)
	test.ExpectEquality(t, clk.yields, 0)
}

func TestNoLimit(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 0})
	test.ExpectEquality(t, lmtr.Rate.Period(), time.Duration(0))

	// 250 frames of 4ms is one second. the rate is still measured
	for i := 0; i < 250; i++ {
		clk.work(4 * time.Millisecond)
		lmtr.CheckFrame()
	}
	test.ExpectEquality(t, len(clk.sleeps), 0)
	test.ExpectApproximate(t, lmtr.Rate.Measured(), 250.0, 0.001)
	test.ExpectEquality(t, lmtr.Rate.Current(), 0)
}

func TestRateFloorStillSleeps(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 5})

	// measured too fast until the current rate reaches zero
	for i := 0; i < 5; i++ {
		window(t, lmtr.Rate, clk, 10)
	}
	test.DemandEquality(t, lmtr.Rate.Current(), 0)

	// the first frame absorbs the time taken by the measurement windows
	lmtr.CheckFrame()
	test.DemandEquality(t, len(clk.sleeps), 0)

	clk.work(time.Millisecond)
	lmtr.CheckFrame()
	test.DemandEquality(t, len(clk.sleeps), 1)
	test.ExpectEquality(t, clk.sleeps[0], 999*time.Millisecond)

	// one frame in one second is too slow so the rate recovers
	test.ExpectApproximate(t, lmtr.Rate.Measured(), 1.0, 0.001)
	test.ExpectEquality(t, lmtr.Rate.Current(), 1)
}

func TestMeasuredRate(t *testing.T) {
	clk := &fakeClock{}
	lmtr := limiter.NewLimiter(clk, limiter.Config{FPS: 50})

	for i := 0; i < 50; i++ {
		clk.work(5 * time.Millisecond)
		lmtr.CheckFrame()
	}
	test.ExpectApproximate(t, lmtr.Rate.Measured(), 50.0, 0.001)
	test.ExpectEquality(t, lmtr.Rate.Current(), 50)
}
