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

// Package paths contains functions to prepare paths to framepace resources.
//
// The ResourcePath() function returns the supplied resource prepended with the
// appropriate config directory, creating any missing directories along the
// way. For example, the following will return the path to the preferences
// file:
//
//	p, err := paths.ResourcePath("", "preferences.ini")
//
// In development builds the base directory is ".framepace" in the current
// working directory. Builds with the release tag use the user's config
// directory, as returned by os.UserConfigDir(). On a modern Linux system the
// path returned in the example above will be:
//
//	/home/user/.config/framepace/preferences.ini
package paths
