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

// Package sound records the sound effects requested by the play loop to a
// WAV file. Each sound effect is rendered as a short tone. The gap between
// sound effects follows the time between requests so that the recording can
// be compared against the frame rate of the loop.
//
// Recording is done in its own goroutine. Play() never blocks the play loop.
package sound
