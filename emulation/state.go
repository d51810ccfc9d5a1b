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

// State indicates the state of the play session.
type State int

// List of possible session states. Values are ordered so that order
// comparisons are meaningful. For example, Active is "less than" any of the
// paused states.
const (
	Active State = iota

	// paused and the pause menu is shown
	PausedMenu

	// paused with the menu hidden or with frame stepping enabled. the engine
	// can still be advanced one frame at a time
	PausedFrozen

	// the session is ending and no more frames will be run
	Terminating
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case PausedMenu:
		return "paused (menu)"
	case PausedFrozen:
		return "paused (frozen)"
	case Terminating:
		return "terminating"
	}
	return "unknown"
}
