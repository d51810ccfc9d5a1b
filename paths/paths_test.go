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

//go:build !release

package paths_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/framepace/paths"
	"github.com/jetsetilly/framepace/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".framepace/foo/bar/baz")

	// directory has been created but not the file
	_, err = os.Stat(".framepace/foo/bar")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(".framepace/foo/bar/baz")
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".framepace/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".framepace/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".framepace")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2010, time.March, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilename("", "png", n), "2010_03_04_05_06_07.png")
	test.ExpectEquality(t, paths.UniqueFilename("sound", ".wav", n), "sound_2010_03_04_05_06_07.wav")
	test.ExpectEquality(t, paths.UniqueFilename("", "", n), "2010_03_04_05_06_07")
}
