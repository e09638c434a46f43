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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

// The different memory areas.
const (
	Undefined Area = iota
	ROM
	Screen
	Attributes
	RAM
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case Screen:
		return "Screen"
	case Attributes:
		return "Attributes"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// The origin and memory top for each area of memory. RAM is the entire area
// above ROM, including the video memory areas.
const (
	OriginROM        = uint16(0x0000)
	MemtopROM        = uint16(0x3fff)
	OriginScreen     = uint16(0x4000)
	MemtopScreen     = uint16(0x57ff)
	OriginAttributes = uint16(0x5800)
	MemtopAttributes = uint16(0x5aff)
	OriginRAM        = uint16(0x4000)
	MemtopRAM        = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Size returns the number of bytes in the area.
func Size(area Area) int {
	switch area {
	case ROM:
		return int(MemtopROM-OriginROM) + 1
	case Screen:
		return int(MemtopScreen-OriginScreen) + 1
	case Attributes:
		return int(MemtopAttributes-OriginAttributes) + 1
	case RAM:
		return int(MemtopRAM-OriginRAM) + 1
	}
	return 0
}

// Origin returns the first address of the area.
func Origin(area Area) uint16 {
	switch area {
	case ROM:
		return OriginROM
	case Screen:
		return OriginScreen
	case Attributes:
		return OriginAttributes
	case RAM:
		return OriginRAM
	}
	return 0
}

// MapAddress returns the most specific area that the address falls within.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopROM:
		return ROM
	case address <= MemtopScreen:
		return Screen
	case address <= MemtopAttributes:
		return Attributes
	}
	return RAM
}

// Summary returns a description of the memory map.
func Summary() string {
	s := ""
	for _, a := range []Area{ROM, Screen, Attributes, RAM} {
		o := Origin(a)
		s = fmt.Sprintf("%s%-10s %#04x -> %#04x\n", s, a, o, int(o)+Size(a)-1)
	}
	return s
}
