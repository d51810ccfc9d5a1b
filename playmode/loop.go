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
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/gamekey"
	"github.com/jetsetilly/framepace/limiter"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/session"
	"github.com/jetsetilly/framepace/userinput"
)

// Error patterns.
const (
	AlreadyRunning = "playmode: loop is already running"
	MissingEngine  = "playmode: no engine"
	MissingSurface = "playmode: no surface"
	PlayError      = "playmode: %v"
)

// Config is used to create a new Loop. Engine, Surface and Owner are
// required. The remaining fields have sensible defaults.
type Config struct {
	Engine  emulation.Engine
	Surface emulation.Surface
	Owner   emulation.Owner
	Audio   emulation.Audio

	// the observer client is started and stopped around the loop in local
	// play. the net lobby is shut down when the loop ends in network play
	Observer emulation.Observer
	NetLobby emulation.NetLobby

	// network play. fixed for the lifetime of the Loop
	NetPlay bool

	Prefs *Preferences
	Input *userinput.Queue
	Clock limiter.Clock

	// called at the start of every frame with the number of frames run so
	// far. called from the loop goroutine
	TickHook func(frame int)
}

// Loop is the play loop.
type Loop struct {
	cfg Config

	// the loop continues for as long as running is true
	running atomic.Bool

	// the owner is asked to exit the program when the loop ends
	quitRequested bool

	// pending mode change for network play
	modeRequest atomic.Pointer[emulation.ModeRequest]

	trackers [emulation.MaxPlayers]*gamekey.Tracker
	session  *session.Session
	lmtr     *limiter.Limiter
	settings settings

	// state of the presentation surface as reported by the input queue
	visible bool
	focused bool

	frames atomic.Int64

	// limits the logging of faults in the network path
	faultLog        *rate.Limiter
	faultSuppressed int
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop(cfg Config) (*Loop, error) {
	if cfg.Engine == nil {
		return nil, curated.Errorf(MissingEngine)
	}
	if cfg.Surface == nil {
		return nil, curated.Errorf(MissingSurface)
	}
	if cfg.Owner == nil {
		cfg.Owner = discardOwner{}
	}
	if cfg.Audio == nil {
		cfg.Audio = emulation.DiscardAudio{}
	}
	if cfg.Observer == nil {
		cfg.Observer = emulation.DiscardObserver{}
	}
	if cfg.Input == nil {
		cfg.Input = userinput.NewQueue()
	}
	if cfg.Clock == nil {
		cfg.Clock = limiter.NewRealClock()
	}
	if cfg.Prefs == nil {
		// preferences that are not backed by a file
		cfg.Prefs = &Preferences{}
		cfg.Prefs.SetDefaults()
	}

	l := &Loop{
		cfg:      cfg,
		faultLog: rate.NewLimiter(rate.Every(time.Second), 5),
	}

	for i := range l.trackers {
		l.trackers[i] = &gamekey.Tracker{
			Keymap:    cfg.Prefs.Keymap[i],
			KeymapNav: cfg.Prefs.KeymapNav[i],
		}
	}

	l.session = session.NewSession(cfg.Engine, cfg.Audio, false)
	l.lmtr = limiter.NewLimiter(cfg.Clock, limiter.Config{})

	return l, nil
}

// Input returns the queue that input sources should push events to.
func (l *Loop) Input() *userinput.Queue {
	return l.cfg.Input
}

// NetPlay returns true if the loop is using the network path.
func (l *Loop) NetPlay() bool {
	return l.cfg.NetPlay
}

// Running returns true if the loop is running.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames returns the number of frames run by the loop.
func (l *Loop) Frames() int {
	return int(l.frames.Load())
}

// Shutdown ends the loop after the current frame. Safe to call from any
// goroutine. Calling Shutdown() when the loop is not running does nothing.
func (l *Loop) Shutdown() {
	if l.running.CompareAndSwap(true, false) {
		l.cfg.Clock.Interrupt()
	}
}

// stop is called from the loop goroutine
func (l *Loop) stop(quit bool) {
	l.quitRequested = l.quitRequested || quit
	l.Shutdown()
}

// RequestMode asks the owner to change game mode on the next frame. Only used
// in network play. Safe to call from any goroutine.
func (l *Loop) RequestMode(req emulation.ModeRequest) {
	l.modeRequest.Store(&req)
}

// Run the loop until Shutdown() is called or the session ends. An error is
// returned if the engine fails during local play.
func (l *Loop) Run() error {
	if !l.running.CompareAndSwap(false, true) {
		return curated.Errorf(AlreadyRunning)
	}

	l.settings = l.cfg.Prefs.snapshot()
	l.lmtr = limiter.NewLimiter(l.cfg.Clock, limiter.Config{
		FPS:          l.settings.maxFPS,
		Perfect:      l.settings.perfect,
		PerfectYield: l.settings.perfectYield,
	})
	l.session = session.NewSession(l.cfg.Engine, l.cfg.Audio, l.settings.frameStep)
	l.quitRequested = false
	l.visible = true
	l.focused = true
	l.frames.Store(0)
	for _, tr := range l.trackers {
		tr.Clear()
	}

	if !l.cfg.NetPlay {
		if err := l.cfg.Observer.Start(); err != nil {
			logger.Logf(logger.Allow, "playmode", "observer: %v", err)
		}
	}

	logger.Logf(logger.Allow, "playmode", "loop start (%d fps, net play %v)", l.settings.maxFPS, l.cfg.NetPlay)

	var err error

	l.lmtr.Start()
	for l.running.Load() {
		if l.cfg.TickHook != nil {
			l.cfg.TickHook(l.Frames())
		}

		l.cfg.Input.Drain(l.handleEvent)

		if l.cfg.NetPlay {
			l.updateNet()
			l.renderNet()
		} else if l.visible && l.focused {
			err = l.update()
			if err == nil {
				err = l.render()
			}
			if err != nil {
				l.stop(false)
			}
		} else {
			// no ghost input when the surface comes back into focus
			for _, tr := range l.trackers {
				tr.Clear()
			}
		}

		l.frames.Add(1)

		if !l.running.Load() {
			break // for loop
		}

		l.lmtr.CheckFrame()
	}

	l.teardown()

	logger.Logf(logger.Allow, "playmode", "loop end after %d frames", l.Frames())

	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	return nil
}

func (l *Loop) handleEvent(ev userinput.Event) {
	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		for i, tr := range l.trackers {
			tr.HandleKey(ev.Key, ev.Down, l.session.InGame(i))
		}
	case userinput.EventFocus:
		l.visible = ev.Visible
		l.focused = ev.Focused
	case userinput.EventQuit:
		l.stop(true)
	}
}

func (l *Loop) inputs() [emulation.MaxPlayers]emulation.Input {
	var in [emulation.MaxPlayers]emulation.Input
	for i, tr := range l.trackers {
		in[i] = tr
	}
	return in
}

// update for the local path
func (l *Loop) update() error {
	req, err := l.session.Update(l.inputs())
	if err != nil {
		return err
	}

	switch req {
	case session.Shutdown:
		l.stop(false)
	case session.Quit:
		l.stop(true)
	}

	return nil
}

// update for the network path. faults in the engine are logged and the loop
// continues with the next frame
func (l *Loop) updateNet() {
	defer func() {
		if r := recover(); r != nil {
			l.fault("update", fmt.Errorf("%v", r))
		}
	}()

	tr := l.trackers[0]
	if l.visible && l.focused {
		tr.Update()
	} else {
		tr.Clear()
	}

	if l.cfg.Engine.ModeLoaded() {
		tr.InputStatusUpdate(l.cfg.Engine.Controller(0))
		if err := l.cfg.Engine.Update(); err != nil {
			l.fault("update", err)
			return
		}

		if l.cfg.Engine.QuitFlag() {
			l.stop(false)
			return
		}

		if tr.IsPushKey(gamekey.Retry) {
			if err := l.cfg.Engine.NetRetry(0); err != nil {
				l.fault("retry", err)
				return
			}
		}
	}

	if tr.IsPushKey(gamekey.Screenshot) || l.trackers[1].IsPushKey(gamekey.Screenshot) {
		l.session.ArmScreenshot()
	}

	if req := l.modeRequest.Swap(nil); req != nil && req.Pending() {
		logger.Log(logger.Allow, "playmode", req)
		l.cfg.Owner.EnterMode(*req)
	}
}

// fault logs a problem in the network path. the number of log entries is
// limited so that a persistent fault does not flood the log
func (l *Loop) fault(op string, err error) {
	if !l.faultLog.Allow() {
		l.faultSuppressed++
		return
	}
	if l.faultSuppressed > 0 {
		logger.Logf(logger.Allow, "playmode", "net %s fail: %v (%d suppressed)", op, err, l.faultSuppressed)
		l.faultSuppressed = 0
		return
	}
	logger.Logf(logger.Allow, "playmode", "net %s fail: %v", op, err)
}

// teardown is called once when the loop ends
func (l *Loop) teardown() {
	l.cfg.Surface.Release()

	if l.cfg.NetPlay && l.cfg.NetLobby != nil {
		if err := l.cfg.NetLobby.Shutdown(); err != nil {
			logger.Logf(logger.Allow, "playmode", "lobby shutdown: %v", err)
		}
	}

	if err := l.cfg.Engine.Shutdown(); err != nil {
		logger.Logf(logger.Allow, "playmode", "engine shutdown: %v", err)
	}

	if !l.cfg.NetPlay {
		l.cfg.Observer.Stop()
	}

	l.cfg.Owner.ReturnControl()
	if l.quitRequested {
		l.cfg.Owner.Shutdown()
	}
}

// State returns the state of the session. Should not be called while the loop
// is running except from the tick hook.
func (l *Loop) State() emulation.State {
	return l.session.State()
}

// Rate returns the rate controller of the most recent run of the loop. The
// Measured() and Current() functions of the controller are safe to call while
// the loop is running.
func (l *Loop) Rate() *limiter.Rate {
	return l.lmtr.Rate
}

// QuitRequested returns true if the most recent run of the loop ended with a
// request to exit the program.
func (l *Loop) QuitRequested() bool {
	return l.quitRequested
}

type discardOwner struct{}

func (discardOwner) ReturnControl() {}
func (discardOwner) Shutdown() {}
func (discardOwner) EnterMode(emulation.ModeRequest) {}
