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

package wavwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
	"github.com/go-audio/wav"
)

func TestSamplesPerFrame(t *testing.T) {
	aw, err := New(filepath.Join(t.TempDir(), "out.wav"), SampleRate)
	test.DemandSuccess(t, err)

	// one second of frames produces one second of samples
	secondFrame := clocks.CyclesPerSecond / clocks.FrameRate
	for i := 0; i < clocks.FrameRate; i++ {
		test.DemandSuccess(t, aw.SetAudio(false, nil, secondFrame))
	}
	test.ExpectEquality(t, aw.NumSamples(), SampleRate)

	test.ExpectFailure(t, aw.SetAudio(false, nil, -1))

	_, err = New("", 0)
	test.ExpectFailure(t, err)
}

func TestEdges(t *testing.T) {
	aw, err := New(filepath.Join(t.TempDir(), "out.wav"), SampleRate)
	test.DemandSuccess(t, err)

	// high for the second half of the frame
	edges := []ula.BeeperEdge{{Cycle: clocks.FrameCycles / 2, High: true}}
	test.DemandSuccess(t, aw.SetAudio(false, edges, clocks.FrameCycles))

	n := aw.NumSamples()
	test.DemandEquality(t, n > 0, true)
	test.ExpectEquality(t, aw.buffer[0], sampleLow)
	test.ExpectEquality(t, aw.buffer[n/2-1], sampleLow)
	test.ExpectEquality(t, aw.buffer[n/2+1], sampleHigh)
	test.ExpectEquality(t, aw.buffer[n-1], sampleHigh)

	aw.Reset()
	test.ExpectEquality(t, aw.NumSamples(), 0)
}

func TestEndMixing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := New(fn, SampleRate)
	test.DemandSuccess(t, err)

	edges := []ula.BeeperEdge{{Cycle: 1000, High: true}, {Cycle: 2000, High: false}}
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, aw.SetAudio(false, edges, clocks.FrameCycles))
	}
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, dec.SampleRate, uint32(SampleRate))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(8))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), aw.NumSamples())
}
