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

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
)

// SurfaceError is the pattern for errors returned by the Surface.
const SurfaceError = "terminal: %v"

// Surface implements the emulation.Surface interface. The picture for each
// frame is taken from the Picture function.
type Surface struct {
	output  io.Writer
	picture func() string

	// frame most recently submitted, without any ANSI sequences
	last string

	// nothing is written to the output if the frame is unchanged
	drawn string

	began bool
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(output io.Writer, picture func() string) *Surface {
	return &Surface{
		output:  output,
		picture: picture,
	}
}

// BeginFrame implements the emulation.Surface interface.
func (s *Surface) BeginFrame() error {
	if !s.began {
		io.WriteString(s.output, ansiHideCursor)
		s.began = true
	}
	return nil
}

// SubmitFrame implements the emulation.Surface interface.
func (s *Surface) SubmitFrame(ov emulation.Overlay) error {
	pic := s.picture()
	s.last = Status(pic, ov, false)

	line := Status(pic, ov, true)
	if line == s.drawn {
		return nil
	}
	s.drawn = line

	if _, err := fmt.Fprintf(s.output, "\r%s%s", line, ansiClearLine); err != nil {
		return curated.Errorf(SurfaceError, err)
	}
	return nil
}

// Screenshot implements the emulation.Surface interface. The most recent frame
// is written as text. The extension of the filename is replaced with .txt
func (s *Surface) Screenshot(filename string) error {
	filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".txt"
	if err := os.WriteFile(filename, []byte(s.last+"\n"), 0o644); err != nil {
		return curated.Errorf(SurfaceError, err)
	}
	return nil
}

// Release implements the emulation.Surface interface.
func (s *Surface) Release() {
	if s.began {
		io.WriteString(s.output, ansiShowCursor+"\r\n")
		s.began = false
	}
	s.drawn = ""
}

// Status returns the picture with the overlay information appended. ANSI
// sequences are used to highlight the menu cursor if the ansi argument is
// true.
func Status(picture string, ov emulation.Overlay, ansi bool) string {
	s := strings.Builder{}
	s.WriteString(picture)

	if ov.Menu != nil {
		s.WriteString("  PAUSE")
		for i, item := range ov.Menu {
			switch {
			case i == ov.Cursor && ansi:
				fmt.Fprintf(&s, " %s%s%s", ansiInverse, item, ansiNormal)
			case i == ov.Cursor:
				fmt.Fprintf(&s, " [%s]", item)
			default:
				fmt.Fprintf(&s, " %s", item)
			}
		}
	}

	if ov.FastForward > 0 {
		if ansi {
			fmt.Fprintf(&s, "  %sff+%d%s", ansiBold, ov.FastForward, ansiNormal)
		} else {
			fmt.Fprintf(&s, "  ff+%d", ov.FastForward)
		}
	}

	if ov.ShowInvisible {
		s.WriteString("  SHOW INVIS")
	}

	if ov.FPS != "" {
		fmt.Fprintf(&s, "  %s fps", ov.FPS)
	}

	if ov.Observers != "" {
		fmt.Fprintf(&s, "  obs %s", ov.Observers)
	}

	return s.String()
}
