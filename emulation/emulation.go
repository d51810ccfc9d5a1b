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

// Package emulation defines the collaborators of the play loop. The loop is
// given references to implementations of these interfaces when it is created
// and never reaches for global state.
//
// The interfaces exist mainly to avoid circular imports between the play
// loop and the packages that implement them. The simulation package provides
// a headless Engine that is used by the command line and by tests.
package emulation

import (
	"github.com/jetsetilly/framepace/gamekey"
)

// MaxPlayers is the maximum number of player slots handled by the play loop.
const MaxPlayers = 2

// Engine is the underlying simulation. Update() advances the simulation by
// exactly one frame.
type Engine interface {
	// number of players in the game. may be more than MaxPlayers
	Players() int

	// whether the game as a whole is running. the pause button is ignored if
	// the game is not active
	IsGameActive() bool

	// per player flags
	InGame(player int) bool
	GameActive(player int) bool
	Controller(player int) *gamekey.Controller

	// whether a game mode is loaded. network play does nothing until a mode
	// has been selected
	ModeLoaded() bool

	Update() error
	Render() error
	Reset()

	// the engine wants the play loop to end
	QuitFlag() bool

	Replay

	// network play alternative to Reset()
	NetRetry(player int) error

	Shutdown() error
}

// Replay is the part of the Engine that deals with replay playback.
type Replay interface {
	// a replay is being played
	ReplayMode() bool

	// input is being accepted and recorded over the replay
	ReplayRerecord() bool
	SetReplayRerecord(bool)

	// show blocks that would otherwise be invisible in the replay
	ReplayShowInvisible() bool
	SetReplayShowInvisible(bool)
}

// Input is the per player input state consulted by the play loop. The only
// likely implementation of this interface is the gamekey.Tracker type.
type Input interface {
	Update()
	Clear()
	IsPushKey(b gamekey.Button) bool
	IsPressKey(b gamekey.Button) bool
	IsMenuRepeatKey(b gamekey.Button) bool
	InputStatusUpdate(ctrl *gamekey.Controller)
}

// Surface presents frames to the user.
type Surface interface {
	// prepare a new frame. an error means the surface is not available and
	// the frame should be skipped
	BeginFrame() error

	// show the frame with the overlay drawn on top
	SubmitFrame(ov Overlay) error

	// save the current frame to the named file
	Screenshot(filename string) error

	// release any transient resources. the surface may be used again after
	// a call to Release()
	Release()
}

// List of sound IDs sent to the Audio collaborator.
const (
	SoundPause  = "pause"
	SoundCursor = "cursor"
	SoundDecide = "decide"
)

// Audio plays sound effects. Play() must not block.
type Audio interface {
	Play(id string)
}

// Owner is the context that started the play loop. For example, a title
// screen or a lobby.
type Owner interface {
	// the play loop has ended and the owner should take over
	ReturnControl()

	// the user has asked to leave the program entirely
	Shutdown()

	// a network game wants to switch to a different game mode
	EnterMode(req ModeRequest)
}

// NetLobby is the network lobby connection used in network play.
type NetLobby interface {
	Shutdown() error
}

// Observer is the spectator client used in local play.
type Observer interface {
	Start() error
	Stop()

	// number of observers and players. ok is false if the client is not
	// connected
	Counts() (observers int, players int, ok bool)
}

// Discard implementations. Useful when a collaborator is not required.
type (
	DiscardAudio    struct{}
	DiscardObserver struct{}
)

// Play implements the Audio interface.
func (DiscardAudio) Play(string) {}

// Start implements the Observer interface.
func (DiscardObserver) Start() error { return nil }

// Stop implements the Observer interface.
func (DiscardObserver) Stop() {}

// Counts implements the Observer interface.
func (DiscardObserver) Counts() (int, int, bool) { return 0, 0, false }
