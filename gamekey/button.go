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

package gamekey

import "strings"

// Button is a logical button.
type Button int

// List of valid Button values. The game buttons are first and are the only
// buttons copied to a Controller.
const (
	Up Button = iota
	Down
	Left
	Right
	A
	B
	C
	D
	E
	F

	// system buttons
	Quit
	Pause
	GiveUp
	Retry
	FrameStep
	Screenshot

	NumButtons
)

// NumGameButtons is the number of buttons that are sent to the engine.
const NumGameButtons = int(F) + 1

var buttonNames = [NumButtons]string{
	"up", "down", "left", "right",
	"a", "b", "c", "d", "e", "f",
	"quit", "pause", "giveup", "retry", "framestep", "screenshot",
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return "unknown"
	}
	return buttonNames[b]
}

// ButtonFromString returns the Button with the name s. Comparison is case
// insensitive.
func ButtonFromString(s string) (Button, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			return Button(i), true
		}
	}
	return NumButtons, false
}

// Controller is the button state as seen by the engine.
type Controller struct {
	Press [NumGameButtons]bool
}

// Any returns true if any button is pressed.
func (c *Controller) Any() bool {
	for _, p := range c.Press {
		if p {
			return true
		}
	}
	return false
}
