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

package simulation

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/gamekey"
)

// Error patterns.
const (
	ReplayError = "replay: %v"
)

// Replay is the recorded input of player zero, one entry per frame. Each
// entry is the list of buttons that were held on that frame.
type Replay struct {
	Mode   string     `yaml:"mode"`
	Frames [][]string `yaml:"frames"`
}

// LoadReplay reads a replay in YAML format.
func LoadReplay(r io.Reader) (*Replay, error) {
	rp := &Replay{}
	if err := yaml.NewDecoder(r).Decode(rp); err != nil {
		return nil, curated.Errorf(ReplayError, err)
	}
	for _, f := range rp.Frames {
		for _, b := range f {
			if _, ok := gamekey.ButtonFromString(b); !ok {
				return nil, curated.Errorf(ReplayError, "unknown button "+b)
			}
		}
	}
	return rp, nil
}

// Save the replay in YAML format.
func (rp *Replay) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rp); err != nil {
		return curated.Errorf(ReplayError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(ReplayError, err)
	}
	return nil
}

// Len returns the number of frames in the replay.
func (rp *Replay) Len() int {
	return len(rp.Frames)
}

func encodeFrame(ctrl *gamekey.Controller) []string {
	f := []string{}
	for i, p := range ctrl.Press {
		if p {
			f = append(f, gamekey.Button(i).String())
		}
	}
	return f
}

func decodeFrame(f []string, ctrl *gamekey.Controller) {
	*ctrl = gamekey.Controller{}
	for _, s := range f {
		if b, ok := gamekey.ButtonFromString(s); ok && int(b) < len(ctrl.Press) {
			ctrl.Press[b] = true
		}
	}
}
