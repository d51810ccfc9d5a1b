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

package script_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/script"
	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/userinput"
)

const example = `
frames: 10
events:
  - frame: 5
    key: Right
    down: true
  - frame: 2
    key: P
    tap: true
  - frame: 6
    key: Right
  - frame: 7
    focus: false
  - frame: 8
    quit: true
  - frame: 9
    mode: race
  - frame: 9
    mode: ""
`

func events(q *userinput.Queue) string {
	var evs []string
	q.Drain(func(ev userinput.Event) {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			evs = append(evs, ev.String())
		case userinput.EventFocus:
			if ev.Focused {
				evs = append(evs, "focus")
			} else {
				evs = append(evs, "unfocus")
			}
		case userinput.EventQuit:
			evs = append(evs, "quit")
		}
	})
	return strings.Join(evs, ", ")
}

func TestScript(t *testing.T) {
	s, err := script.Load(strings.NewReader(example))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Frames, 10)
	test.ExpectEquality(t, len(s.Events), 8)

	q := userinput.NewQueue()
	var shutdown int
	p := script.NewPlayer(s, q, func() { shutdown++ })

	var modes []emulation.ModeRequest
	p.RequestMode = func(req emulation.ModeRequest) {
		modes = append(modes, req)
	}

	var log []string
	for frame := 0; frame < 12; frame++ {
		p.Tick(frame)
		log = append(log, events(q))
	}

	test.ExpectEquality(t, log[1], "")
	test.ExpectEquality(t, log[2], "P down")
	test.ExpectEquality(t, log[3], "P up")
	test.ExpectEquality(t, log[5], "Right down")
	test.ExpectEquality(t, log[6], "Right up")
	test.ExpectEquality(t, log[7], "unfocus")
	test.ExpectEquality(t, log[8], "quit")
	test.ExpectEquality(t, p.Done(), true)

	test.DemandEquality(t, len(modes), 2)
	test.ExpectEquality(t, modes[0], emulation.EnterMode("race"))
	test.ExpectEquality(t, modes[1], emulation.ClearMode())

	// shutdown is requested on every frame after the count is reached
	test.ExpectEquality(t, shutdown, 2)
}

func TestMissedFrames(t *testing.T) {
	s, err := script.Load(strings.NewReader(example))
	test.DemandSuccess(t, err)

	q := userinput.NewQueue()
	p := script.NewPlayer(s, q, nil)
	p.Tick(0)
	p.Tick(6)
	test.ExpectEquality(t, events(q), "P down, P up, Right down, Right up")
	p.Tick(20)
}

func TestBadScripts(t *testing.T) {
	for _, s := range []string{
		"frames: -1",
		"events:\n  - frame: -1\n    key: P",
		"events:\n  - frame: 1",
		"frames: [",
	} {
		_, err := script.Load(strings.NewReader(s))
		test.ExpectFailure(t, err, s)
	}
}
