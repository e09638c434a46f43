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

package memory

import (
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/cpubus"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/memorymap"
)

// ImageSizeMismatch is returned by LoadImage() when the image does not fit in
// the area.
const ImageSizeMismatch = "memory: image size mismatch (%d bytes for %s area of %d bytes)"

// Memory is the complete address space as seen by the CPU. It implements the
// cpubus.Memory interface.
type Memory struct {
	data []uint8

	// the number of writes to ROM that have been discarded
	romWrites int
}

// sanity check that Memory implements the cpubus.Memory interface
var _ cpubus.Memory = (*Memory)(nil)

// NewMemory is the preferred method of initialisation for the Memory type.
// All memory is zero.
func NewMemory() *Memory {
	return &Memory{
		data: make([]uint8, int(memorymap.Memtop)+1),
	}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface. Writes to ROM are discarded.
func (mem *Memory) Write(address uint16, data uint8) {
	if address <= memorymap.MemtopROM {
		mem.romWrites++
		return
	}
	mem.data[address] = data
}

// Poke writes to memory without any write protection. ROM can be changed with
// Poke().
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// DiscardedWrites returns the number of writes to ROM that have been
// discarded since the Memory was created.
func (mem *Memory) DiscardedWrites() int {
	return mem.romWrites
}

// LoadImage copies the image into the area, starting at the area's origin.
// The part of the area not covered by the image and the rest of memory is
// left untouched.
func (mem *Memory) LoadImage(image []uint8, area memorymap.Area) error {
	size := memorymap.Size(area)
	if len(image) > size {
		return curated.Errorf(ImageSizeMismatch, len(image), area, size)
	}
	copy(mem.data[memorymap.Origin(area):], image)
	return nil
}

// Area returns the memory of the area. The returned slice shares storage with
// the Memory instance and should be treated as read-only.
func (mem *Memory) Area(area memorymap.Area) []uint8 {
	o := int(memorymap.Origin(area))
	return mem.data[o : o+memorymap.Size(area)]
}
