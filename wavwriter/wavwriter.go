// This file is part of ZX-Spectrum-Emu.
//
// ZX-Spectrum-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZX-Spectrum-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZX-Spectrum-Emu.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter records the output of the beeper to a WAV file. Note that
// audio data is buffered in memory in its entirety and written to disk when
// EndMixing() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate is the default sample rate of the WAV file.
const SampleRate = 44100

// sample values for the two levels of the beeper. samples are 8bit unsigned
const (
	sampleLow  = 0x40
	sampleHigh = 0xc0
)

// WavWriter converts the beeper edges of each frame into PCM samples.
type WavWriter struct {
	filename  string
	resampler *ula.Resampler
	buffer    []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	r, err := ula.NewResampler(sampleRate)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename:  filename,
		resampler: r,
		buffer:    make([]int, 0, sampleRate),
	}

	return aw, nil
}

// SetAudio adds the beeper activity of a frame to the buffer. The level is
// the level at the start of the frame and cycles is the length of the frame.
func (aw *WavWriter) SetAudio(level bool, edges []ula.BeeperEdge, cycles int) error {
	err := aw.resampler.Resample(level, edges, cycles, func(high bool) {
		if high {
			aw.buffer = append(aw.buffer, sampleHigh)
		} else {
			aw.buffer = append(aw.buffer, sampleLow)
		}
	})
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	return nil
}

// NumSamples returns the number of samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	rate := aw.resampler.SampleRate()
	enc := wav.NewEncoder(f, rate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.resampler.Reset()
}
