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
	"encoding/binary"
	"fmt"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
)

// Audio fingerprints the beeper output.
type Audio struct {
	digest [sha1.Size]byte
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]uint8, 0, sha1.Size+256),
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// AddFrame adds the beeper activity of a frame to the digest. The level is
// the level of the beeper at the start of the frame.
func (dig *Audio) AddFrame(level bool, edges []ula.BeeperEdge) {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, boolByte(level))
	for _, e := range edges {
		dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, uint32(e.Cycle))
		dig.buffer = append(dig.buffer, boolByte(e.High))
	}
	dig.digest = sha1.Sum(dig.buffer)
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
