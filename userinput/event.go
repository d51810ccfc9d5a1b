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

package userinput

import "fmt"

// KeyMod identifies the modifier held when a key event was created.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different types of event that can be pushed onto
// a Queue.
type Event interface{}

// EventKeyboard is a key going down or coming up. Key is the name of the key
// as used in the keymap preferences (eg. "Up", "Space", "Z").
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

func (ev EventKeyboard) String() string {
	if ev.Down {
		return fmt.Sprintf("%s down", ev.Key)
	}
	return fmt.Sprintf("%s up", ev.Key)
}

// EventFocus reports a change in whether the presentation surface is visible
// and has input focus.
type EventFocus struct {
	Visible bool
	Focused bool
}

// EventQuit is a request from the host to end the program.
type EventQuit struct{}
