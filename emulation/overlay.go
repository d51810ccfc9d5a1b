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

package emulation

// The items in the pause menu. Rerecord is only shown during replay playback.
const (
	MenuContinue = "CONTINUE"
	MenuRetry    = "RETRY"
	MenuEnd      = "END"
	MenuRerecord = "RERECORD"
)

// Overlay is the information drawn over the game by the Surface.
type Overlay struct {
	// pause menu. Menu is nil if the menu is not visible
	Menu   []string
	Cursor int

	// fast forward level. zero means normal speed
	FastForward int

	// replay is showing invisible blocks
	ShowInvisible bool

	// formatted frame rate. empty if the frame rate should not be shown
	FPS string

	// formatted observer information. empty if there is no observer
	// connection
	Observers string

	// the surface should wait for the display to finish drawing
	SyncDisplay bool
}
