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

package sdlplay

import (
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"

	"github.com/veandco/go-sdl2/sdl"
)

const sampleFreq = 44100

// the amplitude of the beeper either side of the silence value
const amplitude = 0x40

// the amount of audio data allowed in the queue before new data is discarded.
// a little over two frames
const maxQueued = sampleFreq / 20

// sound outputs the beeper using an SDL audio queue.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	resampler *ula.Resampler
	buffer    []uint8
}

func newSound() (*sound, error) {
	snd := &sound{}

	var err error
	snd.resampler, err = ula.NewResampler(sampleFreq)
	if err != nil {
		return nil, err
	}

	request := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	snd.id, err = sdl.OpenAudioDevice("", false, request, &snd.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	snd.buffer = make([]uint8, 0, sampleFreq/25)

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// queue the beeper activity of a frame.
func (snd *sound) frame(r hardware.FrameResult) error {
	snd.buffer = snd.buffer[:0]

	err := snd.resampler.Resample(r.BeeperLevel, r.Beeper, r.Cycles, func(high bool) {
		if high {
			snd.buffer = append(snd.buffer, snd.spec.Silence+amplitude)
		} else {
			snd.buffer = append(snd.buffer, snd.spec.Silence-amplitude)
		}
	})
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	// an uncapped emulation runs faster than the audio device plays
	if sdl.GetQueuedAudioSize(snd.id) > maxQueued {
		return nil
	}

	err = sdl.QueueAudio(snd.id, snd.buffer)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

func (snd *sound) close() {
	sdl.CloseAudioDevice(snd.id)
}
