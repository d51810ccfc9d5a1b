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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "framepace_prefs_test.ini")
}

func readTmpFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("option.test", &v))
	test.ExpectSuccess(t, dsk.Add("option.testB", &w))
	test.ExpectSuccess(t, dsk.Add("option.testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, w.Get().(bool), false)
	test.ExpectEquality(t, x.Get().(bool), true)

	test.DemandSuccess(t, dsk.Save())

	data := readTmpFile(t, fn)
	test.ExpectSuccess(t, strings.Contains(data, "[option]"))
	test.ExpectSuccess(t, strings.Contains(data, "testB"))

	// reload into new values
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v2 prefs.Bool
	var w2 prefs.Bool
	test.ExpectSuccess(t, dsk.Add("option.test", &v2))
	test.ExpectSuccess(t, dsk.Add("option.testB", &w2))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, w2.Get().(bool), false)
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	var scale prefs.Float
	test.ExpectSuccess(t, dsk.Add("option.maxfps", &fps))
	test.ExpectSuccess(t, dsk.Add("option.scale", &scale))

	test.ExpectSuccess(t, fps.Set(60))
	test.ExpectSuccess(t, scale.Set("1.5"))
	test.ExpectFailure(t, fps.Set("sixty"))
	test.ExpectEquality(t, fps.Get().(int), 60)
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, fps.Reset())
	test.ExpectSuccess(t, scale.Reset())
	test.ExpectEquality(t, fps.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 60)
	test.ExpectEquality(t, scale.Get().(float64), 1.5)
	test.ExpectEquality(t, scale.String(), "1.500")
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("custom.screenshot.directory", &s))
	test.ExpectSuccess(t, s.Set("shots"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v2 prefs.Bool
	var s2 prefs.String
	test.ExpectSuccess(t, dsk.Add("test", &v2))
	test.ExpectSuccess(t, dsk.Add("custom.screenshot.directory", &s2))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, s2.String(), "shots")
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var fps prefs.Int
	test.ExpectSuccess(t, fps.Set(60))
	test.ExpectSuccess(t, dsk.Add("option.maxfps", &fps))

	// a missing file leaves values untouched
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 60)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("option.maxfps", &a))
	err = dsk.Add("option.maxfps", &b)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	err = dsk.Set("option.nokey", 10)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoSuchKey))
	test.ExpectSuccess(t, dsk.Set("option.maxfps", "30"))
	test.ExpectEquality(t, a.Get().(int), 30)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var fps prefs.Int
	test.ExpectSuccess(t, dsk.Add("option.maxfps", &fps))
	test.ExpectSuccess(t, fps.Set(60))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("option.maxfps::30")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, fps.Get().(int), 30)
}

func TestHooks(t *testing.T) {
	var fps prefs.Int
	var seen int
	fps.SetHookPost(func(v prefs.Value) error {
		seen = v.(int)
		return nil
	})
	test.ExpectSuccess(t, fps.Set(50))
	test.ExpectEquality(t, seen, 50)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
