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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values and returns an error. The pattern
// is kept alongside the values so that errors can be identified by pattern
// rather than by the formatted message:
//
//	const Interrupted = "limiter: sleep interrupted"
//
//	err := curated.Errorf(Interrupted)
//	if curated.Is(err, Interrupted) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of curated errors:
//
//	e := curated.Errorf("engine: %v", curated.Errorf(Interrupted))
//	curated.Has(e, Interrupted) // true
//	curated.Is(e, Interrupted)  // false
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. This means callers can wrap errors with a package prefix without
// worrying whether the callee has already done so:
//
//	curated.Errorf("playmode: %v", curated.Errorf("playmode: %v", err))
//
// produces "playmode: <err>".
//
// Uncurated errors in the values list can be reached with errors.Unwrap() and
// so the standard errors.Is() and errors.As() functions work as expected.
package curated
