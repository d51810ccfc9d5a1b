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

package emulation_test

import (
	"testing"

	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/test"
)

func TestModeRequest(t *testing.T) {
	var req emulation.ModeRequest
	test.ExpectFailure(t, req.Pending())
	test.ExpectEquality(t, req.Kind, emulation.ModeNoRequest)

	req = emulation.ClearMode()
	test.ExpectSuccess(t, req.Pending())
	test.ExpectEquality(t, req.String(), "clear mode")

	req = emulation.EnterMode("MARATHON")
	test.ExpectSuccess(t, req.Pending())
	test.ExpectEquality(t, req.Kind, emulation.ModeEnter)
	test.ExpectEquality(t, req.Name, "MARATHON")

	// an empty name is not a request to clear the mode
	req = emulation.EnterMode("")
	test.ExpectFailure(t, req.Pending())
}

func TestStateOrder(t *testing.T) {
	test.ExpectSuccess(t, emulation.Active < emulation.PausedMenu)
	test.ExpectSuccess(t, emulation.PausedFrozen < emulation.Terminating)
	test.ExpectEquality(t, emulation.PausedFrozen.String(), "paused (frozen)")
}
