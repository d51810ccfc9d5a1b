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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/framepace/test"
	"github.com/jetsetilly/framepace/userinput"
)

func TestQueueOrder(t *testing.T) {
	q := userinput.NewQueue()
	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: "Up", Down: true}))
	test.ExpectSuccess(t, q.Push(userinput.EventFocus{Visible: true, Focused: false}))
	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: "Up", Down: false}))
	test.ExpectEquality(t, q.Len(), 3)

	var s []string
	n := q.Drain(func(ev userinput.Event) {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			s = append(s, ev.String())
		case userinput.EventFocus:
			s = append(s, "focus")
		}
	})
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, len(s), 3)
	test.ExpectEquality(t, s[0], "Up down")
	test.ExpectEquality(t, s[1], "focus")
	test.ExpectEquality(t, s[2], "Up up")

	// queue is empty after draining
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.Drain(func(userinput.Event) {}), 0)
}

func TestQueueFull(t *testing.T) {
	q := userinput.NewQueue()
	for i := 0; i < userinput.QueueSize; i++ {
		test.DemandSuccess(t, q.Push(userinput.EventQuit{}))
	}
	test.ExpectFailure(t, q.Push(userinput.EventQuit{}))
	test.ExpectEquality(t, q.Drain(func(userinput.Event) {}), userinput.QueueSize)
	test.ExpectSuccess(t, q.Push(userinput.EventQuit{}))
}
