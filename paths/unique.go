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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout used for timestamped filenames.
const TimestampLayout = "2006_01_02_15_04_05"

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for screenshots and sound recordings.
//
// Format of returned string is:
//
//	prepend_YYYY_MM_DD_HH_MM_SS.ext
//
// The prepend string and extension are optional.
func UniqueFilename(prepend string, ext string, t time.Time) string {
	fn := t.Format(TimestampLayout)

	if p := strings.TrimSpace(prepend); len(p) > 0 {
		fn = fmt.Sprintf("%s_%s", p, fn)
	}

	if e := strings.TrimPrefix(strings.TrimSpace(ext), "."); len(e) > 0 {
		fn = fmt.Sprintf("%s.%s", fn, e)
	}

	return fn
}
