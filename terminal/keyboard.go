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
	"bufio"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/userinput"
)

// DefaultDevice is the terminal opened by OpenKeyboard() when no device is
// named.
const DefaultDevice = "/dev/tty"

// DefaultRelease is the time after which a key that has not been seen again
// is released.
const DefaultRelease = 150 * time.Millisecond

// KeyboardError is the pattern for errors returned by the Keyboard.
const KeyboardError = "terminal: %v"

// Keyboard reads keys from a terminal and pushes them onto a queue.
type Keyboard struct {
	// the terminal is nil if the Keyboard was created with NewKeyboard()
	t     *term.Term
	input *bufio.Reader
	queue *userinput.Queue

	// time after which a key is released
	Release time.Duration

	// keys that are currently down. each key has a timer that releases it
	crit sync.Mutex
	held map[string]*time.Timer
}

// OpenKeyboard puts the terminal device into raw mode. The terminal is
// restored by Close().
func OpenKeyboard(device string, queue *userinput.Queue) (*Keyboard, error) {
	if device == "" {
		device = DefaultDevice
	}
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(KeyboardError, err)
	}
	kbd := NewKeyboard(t, queue)
	kbd.t = t
	return kbd, nil
}

// NewKeyboard reads keys from any io.Reader. The reader should already be in a
// mode that delivers key presses without waiting for a newline.
func NewKeyboard(input io.Reader, queue *userinput.Queue) *Keyboard {
	return &Keyboard{
		input:   bufio.NewReader(input),
		queue:   queue,
		Release: DefaultRelease,
		held:    make(map[string]*time.Timer),
	}
}

// Service reads keys until the input ends or fails. It is normally run in its
// own goroutine. The error is nil if the input ended normally.
func (kbd *Keyboard) Service() error {
	for {
		key, err := kbd.decode()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(KeyboardError, err)
		}

		switch key {
		case "":
		case "CtrlC":
			logger.Log(logger.Allow, "terminal", "ctrl-c")
			kbd.queue.Push(userinput.EventQuit{})
		default:
			kbd.press(key)
		}
	}
}

// decode reads the next key. an empty string is returned for bytes that do
// not map to a key
func (kbd *Keyboard) decode() (string, error) {
	b, err := kbd.input.ReadByte()
	if err != nil {
		return "", err
	}

	switch b {
	case KeyCtrlC:
		return "CtrlC", nil
	case KeyCarriageReturn, KeyLineFeed:
		return "Enter", nil
	case KeyBackspace, KeyCtrlH:
		return "Backspace", nil
	case KeySpace:
		return "Space", nil
	case KeyEsc:
		// a lone escape is the escape key. cursor keys arrive as a single
		// sequence so the rest of the sequence is already buffered
		if kbd.input.Buffered() == 0 {
			return "Escape", nil
		}
		b, err = kbd.input.ReadByte()
		if err != nil {
			return "", err
		}
		if b != EscCursor {
			return "Escape", nil
		}
		b, err = kbd.input.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case CursorUp:
			return "Up", nil
		case CursorDown:
			return "Down", nil
		case CursorForward:
			return "Right", nil
		case CursorBackward:
			return "Left", nil
		}
		return "", nil
	}

	if b > KeySpace && b < KeyBackspace {
		return strings.ToUpper(string(rune(b))), nil
	}

	return "", nil
}

// press the key. if it is already down then the release is postponed
func (kbd *Keyboard) press(key string) {
	kbd.crit.Lock()
	defer kbd.crit.Unlock()

	if tmr, ok := kbd.held[key]; ok {
		tmr.Reset(kbd.Release)
		return
	}

	kbd.queue.Push(userinput.EventKeyboard{Key: key, Down: true})
	kbd.held[key] = time.AfterFunc(kbd.Release, func() {
		kbd.release(key)
	})
}

func (kbd *Keyboard) release(key string) {
	kbd.crit.Lock()
	defer kbd.crit.Unlock()

	if _, ok := kbd.held[key]; !ok {
		return
	}
	delete(kbd.held, key)
	kbd.queue.Push(userinput.EventKeyboard{Key: key, Down: false})
}

// Close releases all held keys and restores the terminal.
func (kbd *Keyboard) Close() error {
	kbd.crit.Lock()
	for key, tmr := range kbd.held {
		tmr.Stop()
		delete(kbd.held, key)
		kbd.queue.Push(userinput.EventKeyboard{Key: key, Down: false})
	}
	kbd.crit.Unlock()

	if kbd.t == nil {
		return nil
	}
	if err := kbd.t.Restore(); err != nil {
		return curated.Errorf(KeyboardError, err)
	}
	if err := kbd.t.Close(); err != nil {
		return curated.Errorf(KeyboardError, err)
	}
	return nil
}
