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

// Package terminal provides a keyboard input source and a presentation
// surface for running the play loop in a text terminal.
//
// The Keyboard puts the terminal into raw mode with "github.com/pkg/term" and
// pushes key events onto a userinput.Queue. Terminals do not report key
// releases so a key is released automatically when it has not been seen for
// a short while. Held keys are kept down by the terminal's own key repeat.
//
// The Surface draws every frame as a single status line, overwriting the
// previous frame.
package terminal
