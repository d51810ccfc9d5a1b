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

package session

import (
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/gamekey"
)

// Session constants.
const (
	// the number of frames after pausing or cancelling the pause menu during
	// which the pause button and the cancel button are ignored
	GraceFrames = 5

	// maximum fast forward level. the engine is advanced 1+FastForward times
	// per frame
	MaxFastForward = 98
)

// Error patterns.
const (
	EngineError = "session: %v"
)

// Request is returned by Update() and tells the play loop what to do next.
type Request int

// List of valid Request values.
const (
	// continue with the next frame
	NoRequest Request = iota

	// end the session and return control to the owner
	Shutdown

	// end the session and ask the owner to exit the program
	Quit
)

func (r Request) String() string {
	switch r {
	case Shutdown:
		return "shutdown"
	case Quit:
		return "quit"
	}
	return "none"
}

// Session is the state of a local play session.
type Session struct {
	engine emulation.Engine
	audio  emulation.Audio

	// frame stepping is enabled. the pause menu is never shown and the
	// engine can be advanced one frame at a time while paused
	frameStep bool

	paused      bool
	menuHidden  bool
	cursor      int
	graceFrames int
	fastForward int

	inGame [emulation.MaxPlayers]bool

	// one shot screenshot request
	screenshot bool

	terminating bool
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(engine emulation.Engine, audio emulation.Audio, frameStep bool) *Session {
	if audio == nil {
		audio = emulation.DiscardAudio{}
	}
	s := &Session{
		engine:    engine,
		audio:     audio,
		frameStep: frameStep,
	}
	s.Reset()
	return s
}

// Reset the session to its initial state. Should be called at the start of
// the play loop.
func (s *Session) Reset() {
	s.paused = false
	s.menuHidden = false
	s.cursor = 0
	s.graceFrames = 0
	s.fastForward = 0
	s.inGame = [emulation.MaxPlayers]bool{}
	s.screenshot = false
	s.terminating = false
}

// replay playback is in progress and the re-record option is available
func (s *Session) replayMenu() bool {
	return s.engine.ReplayMode() && !s.engine.ReplayRerecord()
}

func (s *Session) menuVisible() bool {
	return s.paused && !s.frameStep && !s.menuHidden
}

// push returns true if the button went down this frame for any player.
func push(input [emulation.MaxPlayers]emulation.Input, b gamekey.Button) bool {
	for _, in := range input {
		if in != nil && in.IsPushKey(b) {
			return true
		}
	}
	return false
}

// Update the session for a single frame. The input trackers are updated by
// this function and should not be updated by the caller. The input for player
// zero must not be nil.
//
// An error from the engine is returned immediately and the remainder of the
// frame is skipped.
func (s *Session) Update(input [emulation.MaxPlayers]emulation.Input) (Request, error) {
	if s.terminating {
		return Shutdown, nil
	}

	players := s.engine.Players()

	// in-game flags decide which keymap is used. input is cleared when the
	// flag changes so that a held key does not carry into the new context
	for i := range s.inGame {
		prev := s.inGame[i]
		if i < players {
			s.inGame[i] = s.engine.InGame(i)
		}
		if s.paused && !s.frameStep {
			s.inGame[i] = false
		}
		if prev != s.inGame[i] && input[i] != nil {
			input[i].Clear()
		}
	}

	for _, in := range input {
		if in != nil {
			in.Update()
		}
	}

	p0 := input[0]

	if push(input, gamekey.Pause) {
		if !s.paused {
			if s.engine.IsGameActive() && s.graceFrames <= 0 {
				s.audio.Play(emulation.SoundPause)
				s.paused = true
				if !s.frameStep {
					s.graceFrames = GraceFrames
				}
				s.cursor = 0
			}
		} else {
			s.audio.Play(emulation.SoundPause)
			s.paused = false
			s.graceFrames = 0
		}
	}

	if s.menuVisible() {
		if p0.IsMenuRepeatKey(gamekey.Up) {
			s.audio.Play(emulation.SoundCursor)
			s.cursor--
			if s.cursor < 0 {
				if s.replayMenu() {
					s.cursor = 3
				} else {
					s.cursor = 2
				}
			}
		}
		if p0.IsMenuRepeatKey(gamekey.Down) {
			s.audio.Play(emulation.SoundCursor)
			s.cursor++
			if s.cursor > 3 || (s.cursor > 2 && !s.replayMenu()) {
				s.cursor = 0
			}
		}

		if p0.IsPushKey(gamekey.A) {
			s.audio.Play(emulation.SoundDecide)
			switch s.cursor {
			case 0:
				s.paused = false
				s.graceFrames = 0
				p0.Clear()
			case 1:
				s.paused = false
				s.engine.Reset()
			case 2:
				s.terminating = true
				return Shutdown, nil
			case 3:
				s.engine.SetReplayRerecord(true)
				s.cursor = 0
			}
		} else if p0.IsPushKey(gamekey.B) && s.graceFrames <= 0 {
			s.audio.Play(emulation.SoundPause)
			s.paused = false
			s.graceFrames = GraceFrames
			p0.Clear()
		}
	}

	if s.graceFrames > 0 {
		s.graceFrames--
	}

	// the menu is hidden for as long as the button is held
	s.menuHidden = p0.IsPressKey(gamekey.C)

	if s.replayMenu() && s.engine.GameActive(0) {
		if p0.IsMenuRepeatKey(gamekey.Left) && s.fastForward > 0 {
			s.fastForward--
		}
		if p0.IsMenuRepeatKey(gamekey.Right) && s.fastForward < MaxFastForward {
			s.fastForward++
		}
		if p0.IsPushKey(gamekey.D) {
			s.engine.SetReplayRerecord(true)
			s.cursor = 0
		}
		if p0.IsPushKey(gamekey.E) {
			s.engine.SetReplayShowInvisible(!s.engine.ReplayShowInvisible())
			s.cursor = 0
		}
	} else {
		s.fastForward = 0
	}

	if !s.paused || (s.frameStep && p0.IsPushKey(gamekey.FrameStep)) {
		for i, n := 0, min(players, emulation.MaxPlayers); i < n; i++ {
			// a replayed player is controlled by the replay
			if input[i] != nil && (!s.engine.ReplayMode() || s.engine.ReplayRerecord() || !s.engine.GameActive(i)) {
				input[i].InputStatusUpdate(s.engine.Controller(i))
			}
		}
		for i, n := 0, 1+s.fastForward; i < n; i++ {
			if err := s.engine.Update(); err != nil {
				return NoRequest, curated.Errorf(EngineError, err)
			}
		}
	}

	if push(input, gamekey.Retry) {
		s.paused = false
		s.engine.Reset()
	}

	if s.engine.QuitFlag() || push(input, gamekey.GiveUp) {
		s.terminating = true
		return Shutdown, nil
	}

	if push(input, gamekey.Screenshot) {
		s.screenshot = true
	}

	if push(input, gamekey.Quit) {
		s.terminating = true
		return Quit, nil
	}

	return NoRequest, nil
}
