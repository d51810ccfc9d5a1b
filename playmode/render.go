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

package playmode

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/paths"
)

// render for the local path. an error from the engine is returned. an error
// from the surface skips the frame
func (l *Loop) render() error {
	if err := l.cfg.Surface.BeginFrame(); err != nil {
		logger.Logf(logger.Allow, "playmode", "skipping frame: %v", err)
		return nil
	}

	if err := l.cfg.Engine.Render(); err != nil {
		return err
	}

	var ov emulation.Overlay
	l.session.Overlay(&ov)
	l.overlay(&ov)

	if err := l.cfg.Surface.SubmitFrame(ov); err != nil {
		logger.Logf(logger.Allow, "playmode", "submit frame: %v", err)
	}

	l.screenshot()

	return nil
}

// render for the network path. faults are logged and the loop continues
func (l *Loop) renderNet() {
	defer func() {
		if r := recover(); r != nil {
			l.fault("render", fmt.Errorf("%v", r))
		}
	}()

	if err := l.cfg.Surface.BeginFrame(); err != nil {
		logger.Logf(logger.Allow, "playmode", "skipping frame: %v", err)
		return
	}

	if err := l.cfg.Engine.Render(); err != nil {
		l.fault("render", err)
		return
	}

	var ov emulation.Overlay
	l.overlay(&ov)

	if err := l.cfg.Surface.SubmitFrame(ov); err != nil {
		l.fault("submit", err)
	}

	l.screenshot()
}

// overlay fills in the information that is not part of the session
func (l *Loop) overlay(ov *emulation.Overlay) {
	ov.SyncDisplay = l.settings.syncDisplay

	if l.settings.showFPS {
		r := l.lmtr.Rate
		if l.settings.perfect && !l.cfg.NetPlay {
			ov.FPS = fmt.Sprintf("%.1f", r.Measured())
		} else {
			ov.FPS = fmt.Sprintf("%.1f/%d", r.Measured(), r.Current())
		}
	}

	if !l.cfg.NetPlay {
		if observers, players, ok := l.cfg.Observer.Counts(); ok {
			ov.Observers = fmt.Sprintf("%d/%d", observers, players)
		}
	}
}

// screenshot is taken after the frame has been submitted
func (l *Loop) screenshot() {
	if !l.session.TakeScreenshot() {
		return
	}

	dir := l.settings.screenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Logf(logger.Allow, "playmode", "screenshot: %v", err)
		return
	}

	fn := filepath.Join(dir, paths.UniqueFilename("", "png", time.Now()))
	if err := l.cfg.Surface.Screenshot(fn); err != nil {
		logger.Logf(logger.Allow, "playmode", "screenshot: %v", err)
		return
	}

	logger.Logf(logger.Allow, "playmode", "screenshot: %s", fn)
}
