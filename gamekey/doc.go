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

// Package gamekey tracks the state of the logical buttons for one player.
//
// Key events from the host are mapped onto buttons through a Keymap. Which
// keymap is used depends on whether the player is in a game or navigating a
// menu. Once per frame the play loop calls Update() and then asks questions
// about the buttons:
//
//	IsPushKey()       the button went down this frame
//	IsPressKey()      the button is held
//	IsMenuRepeatKey() the button went down this frame or has been held long
//	                  enough to auto-repeat
//
// The state of the game buttons is copied to the engine with
// InputStatusUpdate().
package gamekey
