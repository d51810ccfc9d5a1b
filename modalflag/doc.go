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

// Package modalflag wraps the flag package in the standard library and adds
// program modes. A mode is a special command line argument that puts the
// program into a different mode of operation, each mode with its own set of
// flags and arguments.
//
// Arguments are given to NewArgs() and Parse() is then called without
// arguments. This allows the same argument list to be parsed in stages, one
// stage per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PREFS")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		fps := md.AddInt("fps", 60, "frames per second")
//		...
//	}
//
// The first sub-mode is the default and is selected when no mode is named on
// the command line. Sub-mode comparisons are case insensitive.
package modalflag
