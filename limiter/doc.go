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

// Package limiter paces the play loop to a target frame rate and measures the
// frame rate actually achieved.
//
// The Limiter sleeps for whatever is left of the frame period once the frame
// has been updated and rendered. The difference between the requested and the
// actual length of the sleep is carried into the next frame's budget, so that
// a host scheduler that consistently oversleeps does not slow the loop down.
// In perfect mode the Limiter instead spins until a deadline that advances by
// exactly one period every frame.
//
// The Rate type measures the achieved frame rate about once a second and
// nudges the target rate up or down by one frame per second, within ten
// frames per second of the configured rate, so that the measured rate
// converges on the configured rate.
//
// All timing goes through the Clock interface. RealClock is the
// implementation used outside of tests.
package limiter
