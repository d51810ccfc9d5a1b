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

package userinput

import (
	"golang.org/x/time/rate"

	"github.com/jetsetilly/framepace/logger"
)

// QueueSize is the number of events that can be waiting in a queue. Events
// pushed to a full queue are dropped.
const QueueSize = 256

// Queue is a buffered queue of input events. Push() can be called from any
// goroutine. Drain() should only be called from the play loop.
type Queue struct {
	events chan Event

	// limits the number of warnings about dropped events
	dropped *rate.Limiter
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		events:  make(chan Event, QueueSize),
		dropped: rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Push an event onto the queue. The function never blocks. Returns false if
// the event was dropped because the queue is full.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.events <- ev:
		return true
	default:
		if q.dropped.Allow() {
			logger.Logf(logger.Allow, "userinput", "queue full: dropped %T", ev)
		}
		return false
	}
}

// Drain calls fn for every event waiting in the queue, in the order they were
// pushed. Events pushed while Drain() is running may or may not be included.
// Returns the number of events drained.
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		select {
		case ev := <-q.events:
			fn(ev)
			n++
		default:
			return n
		}
	}
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}
