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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
)

// Video fingerprints the video output.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the border colour and the pixels of
	// the frame
	buffer []uint8

	frames int
}

const videoBorderIdx = sha1.Size

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		buffer: make([]uint8, videoBorderIdx+1+ula.ScreenWidth*ula.ScreenHeight*ula.PixelDepth),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame adds a frame to the digest. The pixels are those returned by the
// video decoder.
func (dig *Video) AddFrame(pixels []uint8, border ula.Colour) {
	copy(dig.buffer, dig.digest[:])
	dig.buffer[videoBorderIdx] = uint8(border)
	copy(dig.buffer[videoBorderIdx+1:], pixels)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++
}
