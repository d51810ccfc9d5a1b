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

// Auto-repeat timing for IsMenuRepeatKey(), in frames.
const (
	MenuRepeatDelay    = 25
	MenuRepeatInterval = 3
)

// Tracker records the state of every button for a single player. It is not
// safe for concurrent use. Key events should be delivered to the play loop
// goroutine before being passed to SetPressState() or HandleKey().
type Tracker struct {
	Keymap    *Keymap
	KeymapNav *Keymap

	// whether the key is physically down
	pressed [NumButtons]bool

	// number of frames the button has been held. zero if it is not held
	state [NumButtons]int
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(player int) *Tracker {
	return &Tracker{
		Keymap:    NewKeymap(DefaultKeymap(player)),
		KeymapNav: NewKeymap(DefaultKeymapNav(player)),
	}
}

// SetPressState sets whether the button is physically down. The change is
// seen after the next call to Update().
func (tr *Tracker) SetPressState(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	tr.pressed[b] = pressed
}

// HandleKey maps the host key onto buttons using the in-game keymap or the
// navigation keymap.
func (tr *Tracker) HandleKey(key string, down bool, inGame bool) {
	km := tr.KeymapNav
	if inGame {
		km = tr.Keymap
	}
	if km == nil {
		return
	}
	km.Match(key, func(b Button) {
		tr.SetPressState(b, down)
	})
}

// Update the frame count of every button. Should be called once per frame.
func (tr *Tracker) Update() {
	for i := range tr.state {
		if tr.pressed[i] {
			tr.state[i]++
		} else {
			tr.state[i] = 0
		}
	}
}

// Clear forgets all pressed buttons. A button that is still physically down
// must be released and pressed again before it is seen.
func (tr *Tracker) Clear() {
	clear(tr.pressed[:])
	clear(tr.state[:])
}

// IsPushKey returns true if the button went down this frame.
func (tr *Tracker) IsPushKey(b Button) bool {
	return tr.state[b] == 1
}

// IsPressKey returns true if the button is held.
func (tr *Tracker) IsPressKey(b Button) bool {
	return tr.state[b] >= 1
}

// IsMenuRepeatKey returns true if the button went down this frame or if it
// has been held for long enough for a menu selection to repeat.
func (tr *Tracker) IsMenuRepeatKey(b Button) bool {
	s := tr.state[b]
	return s == 1 || (s >= MenuRepeatDelay && s%MenuRepeatInterval == 0)
}

// PressCount returns the number of frames the button has been held.
func (tr *Tracker) PressCount(b Button) int {
	return tr.state[b]
}

// InputStatusUpdate copies the state of the game buttons to the Controller.
func (tr *Tracker) InputStatusUpdate(ctrl *Controller) {
	if ctrl == nil {
		return
	}
	for i := range ctrl.Press {
		ctrl.Press[i] = tr.IsPressKey(Button(i))
	}
}
