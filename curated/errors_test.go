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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/test"
)

const testPattern = "test: %v"
const interrupted = "sleep interrupted"

func TestIs(t *testing.T) {
	e := curated.Errorf(interrupted)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, interrupted))
	test.ExpectFailure(t, curated.Is(e, testPattern))

	f := curated.Errorf(testPattern, e)
	test.ExpectFailure(t, curated.Is(f, interrupted))
	test.ExpectSuccess(t, curated.Has(f, interrupted))
	test.ExpectEquality(t, f.Error(), "test: sleep interrupted")

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, interrupted))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("playmode: %v", curated.Errorf("playmode: %v", "engine fault"))
	test.ExpectEquality(t, e.Error(), "playmode: engine fault")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("surface lost")
	e := curated.Errorf("render: %v", sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}
