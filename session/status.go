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

import "github.com/jetsetilly/framepace/emulation"

// State returns the current state of the session.
func (s *Session) State() emulation.State {
	switch {
	case s.terminating:
		return emulation.Terminating
	case !s.paused:
		return emulation.Active
	case s.menuVisible():
		return emulation.PausedMenu
	}
	return emulation.PausedFrozen
}

// Paused returns true if the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Cursor returns the position of the pause menu cursor.
func (s *Session) Cursor() int {
	return s.cursor
}

// FastForward returns the fast forward level.
func (s *Session) FastForward() int {
	return s.fastForward
}

// GraceFrames returns the number of frames remaining during which the pause
// button is ignored.
func (s *Session) GraceFrames() int {
	return s.graceFrames
}

// InGame returns the in-game flag for the player as decided by the most
// recent call to Update().
func (s *Session) InGame(player int) bool {
	if player < 0 || player >= len(s.inGame) {
		return false
	}
	return s.inGame[player]
}

// ArmScreenshot requests a screenshot of the next rendered frame.
func (s *Session) ArmScreenshot() {
	s.screenshot = true
}

// TakeScreenshot returns true if a screenshot has been requested. The request
// is forgotten.
func (s *Session) TakeScreenshot() bool {
	ss := s.screenshot
	s.screenshot = false
	return ss
}

// Menu returns the items of the pause menu. Returns nil if the menu is not
// visible.
func (s *Session) Menu() []string {
	if !s.menuVisible() {
		return nil
	}
	items := []string{emulation.MenuContinue, emulation.MenuRetry, emulation.MenuEnd}
	if s.replayMenu() {
		items = append(items, emulation.MenuRerecord)
	}
	return items
}

// Overlay fills in the session information of the Overlay.
func (s *Session) Overlay(ov *emulation.Overlay) {
	ov.Menu = s.Menu()
	ov.Cursor = s.cursor
	ov.FastForward = s.fastForward
	ov.ShowInvisible = s.engine.ReplayShowInvisible()
}
