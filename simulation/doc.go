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

// Package simulation is a headless implementation of emulation.Engine. The
// game is deliberately simple: each player moves a marker along a track and
// scores points with the A button. It is deterministic and so is suitable
// for replays and for tests of the play loop.
//
// A game lasts for a fixed number of frames. The input of player zero is
// recorded on every frame and can be saved as a Replay. An Engine created
// with a Replay plays it back until re-recording is switched on, at which
// point the remainder of the replay is discarded and recording continues
// from the current frame.
package simulation
