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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/framepace/prefs"
)

// Keymap maps host key names onto buttons. Each button can have more than
// one key, separated by commas in the preference value.
type Keymap struct {
	keys [NumButtons]prefs.String
}

// NewKeymap is the preferred method of initialisation for the Keymap type. The
// defaults map is indexed by button and may be shorter than NumButtons.
func NewKeymap(defaults []string) *Keymap {
	km := &Keymap{}
	for i := range km.keys {
		if i < len(defaults) {
			km.keys[i].Set(defaults[i])
		}
	}
	return km
}

// Register all buttons in the keymap with a prefs.Disk. The key for each
// button is the prefix followed by the button name. For example,
// "key.p0.up".
func (km *Keymap) Register(dsk *prefs.Disk, prefix string) error {
	for i := range km.keys {
		if err := dsk.Add(fmt.Sprintf("%s.%s", prefix, Button(i)), &km.keys[i]); err != nil {
			return err
		}
	}
	return nil
}

// Set the keys for a button.
func (km *Keymap) Set(b Button, keys ...string) {
	km.keys[b].Set(strings.Join(keys, ","))
}

// Keys returns the keys assigned to the button.
func (km *Keymap) Keys(b Button) []string {
	var keys []string
	for _, k := range strings.Split(km.keys[b].String(), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Match calls fn for every button that the key is mapped to. Comparison is
// case insensitive.
func (km *Keymap) Match(key string, fn func(Button)) {
	for i := range km.keys {
		for _, k := range km.Keys(Button(i)) {
			if strings.EqualFold(k, key) {
				fn(Button(i))
				break
			}
		}
	}
}

// DefaultKeymap returns the default in-game keys for the player.
func DefaultKeymap(player int) []string {
	if player != 0 {
		return []string{
			"I", "K", "J", "L",
			"1", "2", "3", "4", "5", "6",
		}
	}
	return []string{
		"Up", "Down", "Left", "Right",
		"Z", "X", "C", "V", "B", "N",
		"Escape", "P", "G", "R", "F", "S",
	}
}

// DefaultKeymapNav returns the default navigation keys for the player.
func DefaultKeymapNav(player int) []string {
	if player != 0 {
		return DefaultKeymap(player)
	}
	return []string{
		"Up", "Down", "Left", "Right",
		"Z,Enter", "X,Backspace", "C", "V", "B", "N",
		"Escape", "P", "G", "R", "F", "S",
	}
}
