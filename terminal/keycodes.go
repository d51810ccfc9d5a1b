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

package terminal

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyCtrlH          = 8
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = 91
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// ANSI sequences used by the Surface
const (
	ansiClearLine  = "\033[K"
	ansiInverse    = "\033[7m"
	ansiBold       = "\033[1m"
	ansiNormal     = "\033[0m"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
)
