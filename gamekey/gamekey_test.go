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

package gamekey_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/framepace/gamekey"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/test"
)

func TestPushAndPress(t *testing.T) {
	tr := gamekey.NewTracker(0)

	tr.SetPressState(gamekey.A, true)
	test.ExpectFailure(t, tr.IsPushKey(gamekey.A))

	tr.Update()
	test.ExpectSuccess(t, tr.IsPushKey(gamekey.A))
	test.ExpectSuccess(t, tr.IsPressKey(gamekey.A))

	tr.Update()
	test.ExpectFailure(t, tr.IsPushKey(gamekey.A))
	test.ExpectSuccess(t, tr.IsPressKey(gamekey.A))
	test.ExpectEquality(t, tr.PressCount(gamekey.A), 2)

	tr.SetPressState(gamekey.A, false)
	tr.Update()
	test.ExpectFailure(t, tr.IsPressKey(gamekey.A))
	test.ExpectEquality(t, tr.PressCount(gamekey.A), 0)
}

func TestMenuRepeat(t *testing.T) {
	tr := gamekey.NewTracker(0)
	tr.SetPressState(gamekey.Down, true)

	var repeats []int
	for frame := 1; frame <= 33; frame++ {
		tr.Update()
		if tr.IsMenuRepeatKey(gamekey.Down) {
			repeats = append(repeats, frame)
		}
	}

	// first frame, then every interval once the delay has passed
	test.ExpectEquality(t, len(repeats), 4)
	test.ExpectEquality(t, repeats[0], 1)
	test.ExpectEquality(t, repeats[1], 27)
	test.ExpectEquality(t, repeats[2], 30)
	test.ExpectEquality(t, repeats[3], 33)
}

func TestClear(t *testing.T) {
	tr := gamekey.NewTracker(0)
	tr.SetPressState(gamekey.Pause, true)
	tr.Update()
	test.ExpectSuccess(t, tr.IsPushKey(gamekey.Pause))

	// cleared buttons are not seen even though no key up event has arrived
	tr.Clear()
	tr.Update()
	test.ExpectFailure(t, tr.IsPressKey(gamekey.Pause))
}

func TestHandleKey(t *testing.T) {
	tr := gamekey.NewTracker(0)

	// enter is only in the navigation keymap
	tr.HandleKey("Enter", true, true)
	tr.Update()
	test.ExpectFailure(t, tr.IsPressKey(gamekey.A))

	tr.HandleKey("enter", true, false)
	tr.Update()
	test.ExpectSuccess(t, tr.IsPushKey(gamekey.A))

	tr.HandleKey("Z", false, true)
	tr.Update()
	test.ExpectFailure(t, tr.IsPressKey(gamekey.A))

	// one key mapped to more than one button
	tr.Keymap.Set(gamekey.Retry, "Z")
	tr.HandleKey("Z", true, true)
	tr.Update()
	test.ExpectSuccess(t, tr.IsPushKey(gamekey.A))
	test.ExpectSuccess(t, tr.IsPushKey(gamekey.Retry))
}

func TestInputStatusUpdate(t *testing.T) {
	tr := gamekey.NewTracker(0)
	var ctrl gamekey.Controller

	tr.SetPressState(gamekey.Left, true)
	tr.SetPressState(gamekey.Pause, true)
	tr.Update()
	tr.InputStatusUpdate(&ctrl)
	test.ExpectSuccess(t, ctrl.Press[gamekey.Left])
	test.ExpectFailure(t, ctrl.Press[gamekey.Right])
	test.ExpectSuccess(t, ctrl.Any())

	tr.Clear()
	tr.InputStatusUpdate(&ctrl)
	test.ExpectFailure(t, ctrl.Any())
}

func TestButtonNames(t *testing.T) {
	for b := gamekey.Button(0); b < gamekey.NumButtons; b++ {
		c, ok := gamekey.ButtonFromString(b.String())
		test.ExpectSuccess(t, ok, b)
		test.ExpectEquality(t, c, b)
	}
	_, ok := gamekey.ButtonFromString("nosuchbutton")
	test.ExpectFailure(t, ok)
}

func TestKeymapPrefs(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs.ini"))
	test.DemandSuccess(t, err)

	km := gamekey.NewKeymap(gamekey.DefaultKeymap(0))
	test.DemandSuccess(t, km.Register(dsk, "key.p0"))

	test.ExpectSuccess(t, dsk.Set("key.p0.pause", "Space, P"))
	keys := km.Keys(gamekey.Pause)
	test.ExpectEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], "Space")
	test.ExpectEquality(t, keys[1], "P")

	// registering twice is an error
	test.ExpectFailure(t, km.Register(dsk, "key.p0"))
}
