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

package memory_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/memorymap"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func romImage() []uint8 {
	rom := make([]uint8, memorymap.Size(memorymap.ROM))
	for i := range rom {
		rom[i] = uint8(i)
	}
	return rom
}

func TestROMProtection(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.LoadImage(romImage(), memorymap.ROM))

	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0x3fff), uint8(0xff))

	mem.Write(0x0000, 0xaa)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
	mem.Write(0x3fff, 0xaa)
	test.ExpectEquality(t, mem.Read(0x3fff), uint8(0xff))
	test.ExpectEquality(t, mem.DiscardedWrites(), 2)

	mem.Write(0x8000, 0xaa)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0xaa))
	mem.Write(0x4000, 0x55)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x55))

	mem.Poke(0x0000, 0xbb)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0xbb))
}

func TestImageSizeMismatch(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x8000, 0x12)

	big := make([]uint8, memorymap.Size(memorymap.ROM)+1)
	for i := range big {
		big[i] = 0xff
	}

	err := mem.LoadImage(big, memorymap.ROM)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageSizeMismatch))

	// memory is unchanged
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x12))
}

func TestPartialImage(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x4002, 0x99)

	test.DemandSuccess(t, mem.LoadImage([]uint8{1, 2}, memorymap.Screen))
	test.ExpectEquality(t, mem.Read(0x4000), uint8(1))
	test.ExpectEquality(t, mem.Read(0x4001), uint8(2))
	test.ExpectEquality(t, mem.Read(0x4002), uint8(0x99))
}

func TestAreaIsShared(t *testing.T) {
	mem := memory.NewMemory()
	attr := mem.Area(memorymap.Attributes)
	test.DemandEquality(t, len(attr), 768)

	mem.Write(0x5800, 0x38)
	test.ExpectEquality(t, attr[0], uint8(0x38))
	mem.Write(0x5aff, 0x47)
	test.ExpectEquality(t, attr[767], uint8(0x47))
}

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0xffff, 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x01))

	// addresses are uint16 so they always wrap before reaching memory
	a := uint16(0xffff)
	a++
	test.ExpectEquality(t, mem.Read(a), uint8(0x00))
}
