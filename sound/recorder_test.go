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

package sound_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/sound"
	"github.com/jetsetilly/framepace/test"
)

func TestRecorder(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sound.wav")

	var aud emulation.Audio
	rec := sound.NewRecorder(fn)
	aud = rec

	aud.Play(emulation.SoundPause)
	aud.Play(emulation.SoundCursor)
	aud.Play(emulation.SoundDecide)
	aud.Play("unknown")
	test.DemandSuccess(t, rec.End())
	test.ExpectEquality(t, rec.Played(), 4)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, int(dec.SampleRate), sound.SampleRate)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.ExpectEquality(t, int(dec.NumChans), 1)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	// at least the length of the four tones. the gaps between them depend on
	// how quickly the calls to Play() were made
	test.ExpectEquality(t, buf.NumFrames() >= sound.SampleRate*220/1000, true)
}

func TestEmptyRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sound.wav")
	rec := sound.NewRecorder(fn)
	test.DemandSuccess(t, rec.End())
	test.ExpectEquality(t, rec.Played(), 0)

	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestBadFilename(t *testing.T) {
	rec := sound.NewRecorder(filepath.Join(t.TempDir(), "missing", "sound.wav"))
	rec.Play(emulation.SoundPause)
	test.ExpectFailure(t, rec.End())
}
