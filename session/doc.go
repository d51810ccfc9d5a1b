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

// Package session implements the state of a local play session: pausing, the
// pause menu, frame stepping, replay fast forward and re-recording.
//
// Session.Update() is called once per frame by the play loop with the input
// trackers of both players. It decides whether the engine is advanced and by
// how many frames, and it tells the play loop whether the session should end.
// Session is not safe for concurrent use.
package session
