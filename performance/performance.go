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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/performance/limiter"
)

// sentinal error returned by the frame function when the measurement period
// has finished.
var timedOut = errors.New("performance timed out")

// leadtime before measurement begins. allows the frame rate to settle down
const leadtime = 2 * time.Second

// Check the performance of the emulator with the supplied machine, which
// should already have a ROM loaded.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile (or both) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, s *hardware.Spectrum, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim, err = limiter.NewFPSLimiter(clocks.FrameRate)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer lim.Stop()
	}

	var startFrame int
	var endFrame int

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has ended
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			err := s.RunForFrameCount(context.Background(), 1, func(_ hardware.FrameResult) error {
				select {
				case v := <-timerChan:
					if v {
						return timedOut
					}
					startFrame = s.FrameNum()
				default:
				}
				return nil
			})
			if err != nil {
				endFrame = s.FrameNum()
				return err
			}

			if lim != nil {
				lim.Wait()
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
