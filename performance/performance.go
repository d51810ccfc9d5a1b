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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/playmode"
)

// Leadtime is the time allowed for the frame rate to settle down before the
// measurement starts.
const Leadtime = 2 * time.Second

// CheckError is the pattern for errors returned by Check().
const CheckError = "performance: %v"

// Check the performance of the play loop created with the supplied
// configuration. The loop is run for the leadtime and then for the duration
// of the measurement, after which it is shut down.
//
// The loop will be run through the profiler as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, cfg playmode.Config, duration time.Duration, leadtime time.Duration) error {
	var loop *playmode.Loop

	var begin time.Time
	var measuring bool
	var startFrame, endFrame int
	var startTime, endTime time.Time

	hook := cfg.TickHook
	cfg.TickHook = func(frame int) {
		if hook != nil {
			hook(frame)
		}

		now := time.Now()
		if frame == 0 {
			begin = now
		}

		if !measuring {
			if now.Sub(begin) >= leadtime {
				measuring = true
				startFrame = frame
				startTime = now
			}
			return
		}

		if now.Sub(startTime) >= duration && endTime.IsZero() {
			endFrame = frame
			endTime = now
			loop.Shutdown()
		}
	}

	var err error
	loop, err = playmode.NewLoop(cfg)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	if err := RunProfiler(profile, "performance", loop.Run); err != nil {
		return curated.Errorf(CheckError, err)
	}

	if endTime.IsZero() {
		return curated.Errorf(CheckError, "play loop ended before measurement finished")
	}

	numFrames := endFrame - startFrame
	secs := endTime.Sub(startTime).Seconds()

	target := 0
	if cfg.Prefs != nil {
		target = cfg.Prefs.MaxFPS.Get().(int)
	}

	fps, accuracy := CalcFPS(target, numFrames, secs)
	if target > 0 {
		fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, secs, accuracy)
	} else {
		fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) unlimited\n", fps, numFrames, secs)
	}

	return nil
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of the
// target frame rate. Accuracy is zero if the target is zero.
func CalcFPS(target int, numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	if target > 0 {
		accuracy = 100 * fps / float64(target)
	}
	return fps, accuracy
}
