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

// Package digest is used to create fingerprints of the output of the
// emulation. Each frame is added to the digest of the previous frames so the
// final value fingerprints the entire run.
//
// Video digests the decoded screen and the border colour of each frame. Audio
// digests the beeper edges of each frame. Digests are useful for regression
// testing where precise comparisons of output are required.
package digest

// Digest implementations compute a cryptographic hash of the output of the
// emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
