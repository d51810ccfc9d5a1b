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

package simulation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/gamekey"
	"github.com/jetsetilly/framepace/simulation"
	"github.com/jetsetilly/framepace/test"
)

func TestMovementAndScore(t *testing.T) {
	e := simulation.NewEngine(simulation.Config{Players: 2})
	test.ExpectEquality(t, e.Players(), 2)
	test.ExpectEquality(t, e.Position(0), 5)

	e.Controller(0).Press[gamekey.Left] = true
	e.Controller(1).Press[gamekey.A] = true
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, e.Update())
	}
	test.ExpectEquality(t, e.Position(0), 0)
	test.ExpectEquality(t, e.Position(1), 5)

	// held button scores once
	test.ExpectEquality(t, e.Score(1), 1)

	test.ExpectSuccess(t, e.Render())
	test.ExpectSuccess(t, strings.HasPrefix(e.Picture(), "frame     10  p0 [#.........]"))
}

func TestGameOver(t *testing.T) {
	e := simulation.NewEngine(simulation.Config{Players: 1, Length: 3, QuitOnGameOver: true})
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, e.IsGameActive())
		test.ExpectFailure(t, e.QuitFlag())
		e.Update()
	}
	test.ExpectFailure(t, e.IsGameActive())
	test.ExpectFailure(t, e.InGame(0))
	test.ExpectSuccess(t, e.QuitFlag())

	// updates after the game is over do nothing
	e.Update()
	test.ExpectEquality(t, e.Frame(), 3)
	test.ExpectEquality(t, e.Updates(), 4)

	e.Reset()
	test.ExpectSuccess(t, e.IsGameActive())
	test.ExpectFailure(t, e.QuitFlag())
	test.ExpectEquality(t, e.Frame(), 0)
}

func TestReplay(t *testing.T) {
	rec := simulation.NewEngine(simulation.Config{Players: 1, Mode: "RACE"})
	rec.Controller(0).Press[gamekey.Right] = true
	rec.Update()
	rec.Update()
	rec.Controller(0).Press[gamekey.Right] = false
	rec.Controller(0).Press[gamekey.A] = true
	rec.Update()

	b := &bytes.Buffer{}
	test.DemandSuccess(t, rec.Recording().Save(b))

	rp, err := simulation.LoadReplay(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rp.Len(), 3)
	test.ExpectEquality(t, rp.Mode, "RACE")

	e := simulation.NewEngine(simulation.Config{Players: 1, Replay: rp})
	test.ExpectSuccess(t, e.ReplayMode())
	test.ExpectSuccess(t, e.ModeLoaded())

	// input from the controller is ignored during playback
	e.Controller(0).Press[gamekey.Left] = true
	for i := 0; i < 3; i++ {
		e.Update()
	}
	test.ExpectEquality(t, e.Position(0), rec.Position(0))
	test.ExpectEquality(t, e.Score(0), rec.Score(0))

	// re-recording takes input from the controller
	e.SetReplayRerecord(true)
	e.Controller(0).Press = [gamekey.NumGameButtons]bool{}
	e.Controller(0).Press[gamekey.Left] = true
	e.Update()
	test.ExpectEquality(t, e.Position(0), rec.Position(0)-1)
	test.ExpectEquality(t, e.Recording().Len(), 4)
}

func TestBadReplay(t *testing.T) {
	_, err := simulation.LoadReplay(strings.NewReader("frames:\n  - [up, jump]\n"))
	test.ExpectFailure(t, err)

	_, err = simulation.LoadReplay(strings.NewReader("frames: 10\n"))
	test.ExpectFailure(t, err)
}

func TestNetRetry(t *testing.T) {
	e := simulation.NewEngine(simulation.Config{Players: 1})
	test.ExpectFailure(t, e.ModeLoaded())
	e.Update()
	test.ExpectSuccess(t, e.NetRetry(0))
	test.ExpectEquality(t, e.Frame(), 0)
	test.ExpectFailure(t, e.NetRetry(1))
}

func TestSetMode(t *testing.T) {
	e := simulation.NewEngine(simulation.Config{Players: 1})
	e.SetMode("race")
	test.ExpectSuccess(t, e.ModeLoaded())
	e.Update()
	test.ExpectEquality(t, e.Frame(), 1)
	test.ExpectEquality(t, e.Recording().Mode, "race")

	e.SetMode("")
	test.ExpectFailure(t, e.ModeLoaded())
	test.ExpectEquality(t, e.Frame(), 0)
}
