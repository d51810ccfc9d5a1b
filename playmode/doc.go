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

// Package playmode runs the play loop. Each iteration of the loop is one
// frame:
//
//	tick hook
//	drain the input queue
//	update (local or network path)
//	render
//	wait for the end of the frame
//
// The local path runs the session state machine for up to two players. The
// network path runs a single player without pausing and isolates faults in
// the engine so that a problem with the remote state does not end the loop.
// Which path is used is decided when the Loop is created.
//
// The loop runs in the goroutine that calls Run(). Shutdown() and
// RequestMode() are the only functions that are safe to call from other
// goroutines.
package playmode
