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

// Package script drives the play loop from a YAML file of timed input events.
// Used for unattended runs, where the keyboard is not available, and for
// measuring the behaviour of the frame limiter over a known number of frames.
//
// An example script:
//
//	frames: 600
//	events:
//	  - frame: 60
//	    key: P
//	    tap: true
//	  - frame: 120
//	    key: Right
//	    down: true
//	  - frame: 180
//	    key: Right
//	  - frame: 300
//	    focus: false
//	  - frame: 360
//	    focus: true
//	  - frame: 400
//	    mode: race
//
// Frames are counted from the start of the play loop. The loop is shut down
// when the frame count is reached. A frame count of zero means the script
// never ends the loop.
package script

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/userinput"
)

// ScriptError is the pattern for errors returned by the script package.
const ScriptError = "script: %v"

// Event is a single entry in the script. An event with a key is a keyboard
// event. An event with a focus value is a focus event. An event with quit
// set is a quit event. An event with a mode is a request to change game mode
// in network play, an empty mode clearing the current mode.
type Event struct {
	Frame int    `yaml:"frame"`
	Key   string `yaml:"key,omitempty"`
	Down  bool   `yaml:"down,omitempty"`

	// key goes down on the frame and up on the following frame
	Tap bool `yaml:"tap,omitempty"`

	Focus *bool   `yaml:"focus,omitempty"`
	Quit  bool    `yaml:"quit,omitempty"`
	Mode  *string `yaml:"mode,omitempty"`
}

// Script is a list of events ordered by frame.
type Script struct {
	Frames int     `yaml:"frames"`
	Events []Event `yaml:"events"`
}

// Load a script in YAML format.
func Load(r io.Reader) (*Script, error) {
	s := &Script{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}

	if s.Frames < 0 {
		return nil, curated.Errorf(ScriptError, "negative frame count")
	}

	for _, ev := range s.Events {
		if ev.Frame < 0 {
			return nil, curated.Errorf(ScriptError, "negative frame number")
		}
		if ev.Key == "" && ev.Focus == nil && !ev.Quit && ev.Mode == nil {
			return nil, curated.Errorf(ScriptError, "empty event")
		}
	}

	// tapped keys are expanded into a down and an up event
	evs := make([]Event, 0, len(s.Events))
	for _, ev := range s.Events {
		if ev.Tap && ev.Key != "" {
			evs = append(evs, Event{Frame: ev.Frame, Key: ev.Key, Down: true})
			evs = append(evs, Event{Frame: ev.Frame + 1, Key: ev.Key})
			continue
		}
		evs = append(evs, ev)
	}
	s.Events = evs

	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Frame < s.Events[j].Frame
	})

	return s, nil
}

// Player pushes the events of a script onto a queue at the correct frame.
type Player struct {
	script   *Script
	queue    *userinput.Queue
	shutdown func()
	next     int

	// mode events are ignored if this is nil
	RequestMode func(emulation.ModeRequest)
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The shutdown function is called when the frame count of the script is
// reached.
func NewPlayer(s *Script, queue *userinput.Queue, shutdown func()) *Player {
	return &Player{
		script:   s,
		queue:    queue,
		shutdown: shutdown,
	}
}

// Tick should be called at the start of every frame with the number of frames
// run so far. Suitable for use as the TickHook of the play loop.
func (p *Player) Tick(frame int) {
	if p.script.Frames > 0 && frame >= p.script.Frames {
		if p.shutdown != nil {
			p.shutdown()
		}
		return
	}

	for ; p.next < len(p.script.Events); p.next++ {
		ev := p.script.Events[p.next]
		if ev.Frame > frame {
			break // for loop
		}

		// events for frames that have been missed are still delivered
		switch {
		case ev.Key != "":
			p.push(userinput.EventKeyboard{Key: ev.Key, Down: ev.Down})
		case ev.Focus != nil:
			p.push(userinput.EventFocus{Visible: true, Focused: *ev.Focus})
		case ev.Quit:
			p.push(userinput.EventQuit{})
		case ev.Mode != nil:
			if p.RequestMode == nil {
				break // switch
			}
			if *ev.Mode == "" {
				p.RequestMode(emulation.ClearMode())
			} else {
				p.RequestMode(emulation.EnterMode(*ev.Mode))
			}
		}
	}
}

func (p *Player) push(ev userinput.Event) {
	if !p.queue.Push(ev) {
		logger.Logf(logger.Allow, "script", "event dropped: %v", ev)
	}
}

// Done returns true if all events have been delivered.
func (p *Player) Done() bool {
	return p.next >= len(p.script.Events)
}
