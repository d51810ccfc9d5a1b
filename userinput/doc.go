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

// Package userinput carries input from the host to the play loop. Input
// sources, such as the terminal keyboard or a script, run in their own
// goroutines and push events onto a Queue. The play loop drains the queue
// once per frame, before the session is updated, so that key state is only
// ever changed by the loop goroutine.
package userinput
