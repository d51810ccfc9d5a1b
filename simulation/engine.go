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

package simulation

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/framepace/gamekey"
	"github.com/jetsetilly/framepace/logger"
)

// the length of the track each player moves along
const trackLength = 10

// Config for a new Engine.
type Config struct {
	// number of players. at least one
	Players int

	// number of frames in a game. zero means the game never ends
	Length int

	// set the quit flag when the game ends
	QuitOnGameOver bool

	// name of the loaded game mode. network play waits until a mode is
	// loaded
	Mode string

	// replay to play back. may be nil
	Replay *Replay
}

type player struct {
	ctrl     gamekey.Controller
	position int
	score    int

	// previous frame's A button, for edge detection
	lastA bool
}

// Engine is a headless implementation of emulation.Engine.
type Engine struct {
	cfg Config

	frame   int
	players []player
	over    bool
	quit    bool

	replay        *Replay
	replayMode    bool
	rerecord      bool
	showInvisible bool

	// input of player zero for every frame of the current game, whether it
	// came from the controller or from the replay
	recording [][]string

	picture  string
	updates  int
	shutdown bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(cfg Config) *Engine {
	cfg.Players = max(cfg.Players, 1)
	e := &Engine{
		cfg:        cfg,
		players:    make([]player, cfg.Players),
		replay:     cfg.Replay,
		replayMode: cfg.Replay != nil,
	}
	if e.replay != nil && cfg.Mode == "" {
		e.cfg.Mode = e.replay.Mode
	}
	e.Reset()
	return e
}

// Players implements the emulation.Engine interface.
func (e *Engine) Players() int {
	return len(e.players)
}

// IsGameActive implements the emulation.Engine interface.
func (e *Engine) IsGameActive() bool {
	return !e.over
}

// InGame implements the emulation.Engine interface.
func (e *Engine) InGame(player int) bool {
	return player >= 0 && player < len(e.players) && !e.over
}

// GameActive implements the emulation.Engine interface.
func (e *Engine) GameActive(player int) bool {
	return e.InGame(player)
}

// Controller implements the emulation.Engine interface.
func (e *Engine) Controller(player int) *gamekey.Controller {
	if player < 0 || player >= len(e.players) {
		return nil
	}
	return &e.players[player].ctrl
}

// ModeLoaded implements the emulation.Engine interface.
func (e *Engine) ModeLoaded() bool {
	return e.cfg.Mode != ""
}

// SetMode loads the named game mode and resets the game. An empty name unloads
// the current mode.
func (e *Engine) SetMode(name string) {
	if name != e.cfg.Mode {
		logger.Logf(logger.Allow, "simulation", "mode %q", name)
	}
	e.cfg.Mode = name
	e.Reset()
}

// Update implements the emulation.Engine interface.
func (e *Engine) Update() error {
	e.updates++

	if e.over {
		return nil
	}

	if e.replayMode && !e.rerecord {
		if e.frame < e.replay.Len() {
			decodeFrame(e.replay.Frames[e.frame], &e.players[0].ctrl)
		} else {
			e.players[0].ctrl = gamekey.Controller{}
		}
	}
	e.recording = append(e.recording, encodeFrame(&e.players[0].ctrl))

	for i := range e.players {
		p := &e.players[i]
		if p.ctrl.Press[gamekey.Left] && p.position > 0 {
			p.position--
		}
		if p.ctrl.Press[gamekey.Right] && p.position < trackLength-1 {
			p.position++
		}
		if p.ctrl.Press[gamekey.A] && !p.lastA {
			p.score++
		}
		p.lastA = p.ctrl.Press[gamekey.A]
	}

	e.frame++

	if e.cfg.Length > 0 && e.frame >= e.cfg.Length {
		e.over = true
		e.quit = e.cfg.QuitOnGameOver
		logger.Logf(logger.Allow, "simulation", "game over at frame %d", e.frame)
	}

	return nil
}

// Render implements the emulation.Engine interface.
func (e *Engine) Render() error {
	s := strings.Builder{}
	fmt.Fprintf(&s, "frame %6d", e.frame)
	for i, p := range e.players {
		track := []byte(strings.Repeat(".", trackLength))
		track[p.position] = '#'
		fmt.Fprintf(&s, "  p%d [%s] %3d", i, track, p.score)
	}
	if e.over {
		s.WriteString("  GAME OVER")
	}
	e.picture = s.String()
	return nil
}

// Picture returns the most recently rendered frame.
func (e *Engine) Picture() string {
	return e.picture
}

// Reset implements the emulation.Engine interface.
func (e *Engine) Reset() {
	e.frame = 0
	e.over = false
	e.quit = false
	e.recording = e.recording[:0]
	for i := range e.players {
		e.players[i] = player{position: trackLength / 2}
	}
}

// QuitFlag implements the emulation.Engine interface.
func (e *Engine) QuitFlag() bool {
	return e.quit
}

// ReplayMode implements the emulation.Replay interface.
func (e *Engine) ReplayMode() bool {
	return e.replayMode
}

// ReplayRerecord implements the emulation.Replay interface.
func (e *Engine) ReplayRerecord() bool {
	return e.rerecord
}

// SetReplayRerecord implements the emulation.Replay interface.
func (e *Engine) SetReplayRerecord(v bool) {
	if v && !e.rerecord {
		logger.Logf(logger.Allow, "simulation", "re-recording from frame %d", e.frame)
	}
	e.rerecord = v
}

// ReplayShowInvisible implements the emulation.Replay interface.
func (e *Engine) ReplayShowInvisible() bool {
	return e.showInvisible
}

// SetReplayShowInvisible implements the emulation.Replay interface.
func (e *Engine) SetReplayShowInvisible(v bool) {
	e.showInvisible = v
}

// NetRetry implements the emulation.Engine interface.
func (e *Engine) NetRetry(player int) error {
	if player < 0 || player >= len(e.players) {
		return fmt.Errorf("no player %d", player)
	}
	logger.Logf(logger.Allow, "simulation", "net retry from player %d", player)
	e.Reset()
	return nil
}

// Shutdown implements the emulation.Engine interface.
func (e *Engine) Shutdown() error {
	e.shutdown = true
	return nil
}

// Frame returns the number of frames played in the current game.
func (e *Engine) Frame() int {
	return e.frame
}

// Updates returns the number of calls to Update() since the Engine was
// created. Unlike Frame() this is not reset by Reset().
func (e *Engine) Updates() int {
	return e.updates
}

// Score returns the score for the player.
func (e *Engine) Score(player int) int {
	return e.players[player].score
}

// Position returns the track position for the player.
func (e *Engine) Position(player int) int {
	return e.players[player].position
}

// IsShutdown returns true if Shutdown() has been called.
func (e *Engine) IsShutdown() bool {
	return e.shutdown
}

// Recording returns the input of player zero for the current game as a
// Replay.
func (e *Engine) Recording() *Replay {
	rp := &Replay{Mode: e.cfg.Mode}
	rp.Frames = make([][]string, len(e.recording))
	copy(rp.Frames, e.recording)
	return rp
}
