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

package sound

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/logger"
)

// SampleRate of the recording.
const SampleRate = 44100

// the recording is mono 16bit PCM
const (
	bitDepth    = 16
	numChannels = 1
	pcmFormat   = 1
	amplitude   = 8192
)

// the longest silence recorded between two sound effects
const maxGap = time.Second

// RecorderError is the pattern for all errors returned by the Recorder.
const RecorderError = "sound: %v"

type tone struct {
	freq     int
	duration time.Duration
}

var tones = map[string]tone{
	emulation.SoundPause:  {freq: 440, duration: 80 * time.Millisecond},
	emulation.SoundCursor: {freq: 880, duration: 30 * time.Millisecond},
	emulation.SoundDecide: {freq: 660, duration: 60 * time.Millisecond},
}

// sound effects that have no tone of their own
var defaultTone = tone{freq: 220, duration: 50 * time.Millisecond}

type request struct {
	id string
	at time.Time
}

// Recorder implements the emulation.Audio interface.
type Recorder struct {
	filename string

	queue chan request
	done  chan bool

	// accessed only by the recording goroutine until done is closed
	buffer *audio.IntBuffer
	last   time.Time

	dropped atomic.Int32
	played  atomic.Int32
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Nothing is written to the file until End() is called.
func NewRecorder(filename string) *Recorder {
	r := &Recorder{
		filename: filename,
		queue:    make(chan request, 64),
		done:     make(chan bool),
		buffer: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: numChannels,
				SampleRate:  SampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	go func() {
		for req := range r.queue {
			r.record(req)
		}
		close(r.done)
	}()

	return r
}

// Play implements the emulation.Audio interface. If the recording goroutine
// has fallen behind then the sound effect is dropped.
func (r *Recorder) Play(id string) {
	select {
	case r.queue <- request{id: id, at: time.Now()}:
	default:
		r.dropped.Add(1)
	}
}

// Played returns the number of sound effects recorded.
func (r *Recorder) Played() int {
	return int(r.played.Load())
}

func (r *Recorder) record(req request) {
	if !r.last.IsZero() {
		gap := min(req.at.Sub(r.last), maxGap)
		r.silence(gap)
	}

	t, ok := tones[req.id]
	if !ok {
		t = defaultTone
	}

	// square wave
	n := samples(t.duration)
	period := max(SampleRate/t.freq, 2)
	for i := 0; i < n; i++ {
		if i%period < period/2 {
			r.buffer.Data = append(r.buffer.Data, amplitude)
		} else {
			r.buffer.Data = append(r.buffer.Data, -amplitude)
		}
	}

	r.last = req.at.Add(t.duration)
	r.played.Add(1)
}

func (r *Recorder) silence(d time.Duration) {
	if d <= 0 {
		return
	}
	r.buffer.Data = append(r.buffer.Data, make([]int, samples(d))...)
}

func samples(d time.Duration) int {
	return int(d * SampleRate / time.Second)
}

// End the recording and write the WAV file. The Recorder cannot be used after
// End() has been called.
func (r *Recorder) End() (rerr error) {
	close(r.queue)
	<-r.done

	if n := r.dropped.Load(); n > 0 {
		logger.Logf(logger.Allow, "sound", "%d sound effects dropped", n)
	}

	f, err := os.Create(r.filename)
	if err != nil {
		return curated.Errorf(RecorderError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(RecorderError, err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, numChannels, pcmFormat)
	if err := enc.Write(r.buffer); err != nil {
		return curated.Errorf(RecorderError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(RecorderError, err)
	}

	logger.Logf(logger.Allow, "sound", "%d sound effects written to %s", r.Played(), r.filename)

	return nil
}
