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

package ula_test

import (
	"image/color"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/peripherals/keyboard"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/ula"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestRowAddress(t *testing.T) {
	// reference addresses for the non-linear layout of the screen
	rows := []struct {
		y       int
		address uint16
	}{
		{0, 0x4000},
		{1, 0x4100},
		{7, 0x4700},
		{8, 0x4020},
		{9, 0x4120},
		{63, 0x47e0},
		{64, 0x4800},
		{65, 0x4900},
		{128, 0x5000},
		{191, 0x57e0},
	}

	for _, r := range rows {
		test.ExpectEquality(t, ula.RowAddress(r.y), r.address, r.y)
	}

	// the screen is in thirds of 64 rows. each third is 2048 bytes in which
	// the first pixel row of every character row comes first, then the
	// second pixel row, and so on
	reference := make([]uint16, ula.ScreenHeight)
	for third := 0; third < 3; third++ {
		for pixelRow := 0; pixelRow < 8; pixelRow++ {
			for charRow := 0; charRow < 8; charRow++ {
				y := third*64 + charRow*8 + pixelRow
				reference[y] = uint16(0x4000 + third*2048 + pixelRow*256 + charRow*32)
			}
		}
	}
	for y := range reference {
		test.ExpectEquality(t, ula.RowAddress(y), reference[y], y)
	}

	test.ExpectEquality(t, ula.AttributeAddress(0, 0), uint16(0x5800))
	test.ExpectEquality(t, ula.AttributeAddress(255, 7), uint16(0x581f))
	test.ExpectEquality(t, ula.AttributeAddress(8, 8), uint16(0x5821))
	test.ExpectEquality(t, ula.AttributeAddress(255, 191), uint16(0x5aff))
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, ula.Black.RGBA(false), color.RGBA{0, 0, 0, 0xff})
	test.ExpectEquality(t, ula.Black.RGBA(true), color.RGBA{0, 0, 0, 0xff})
	test.ExpectEquality(t, ula.Blue.RGBA(false), color.RGBA{0, 0, 0xcd, 0xff})
	test.ExpectEquality(t, ula.Red.RGBA(true), color.RGBA{0xff, 0, 0, 0xff})
	test.ExpectEquality(t, ula.Yellow.RGBA(false), color.RGBA{0xcd, 0xcd, 0, 0xff})
	test.ExpectEquality(t, ula.White.RGBA(true), color.RGBA{0xff, 0xff, 0xff, 0xff})
}

func TestAttribute(t *testing.T) {
	a := ula.DecodeAttribute(0b11_010_001)
	test.ExpectEquality(t, a.Ink, ula.Blue)
	test.ExpectEquality(t, a.Paper, ula.Red)
	test.ExpectEquality(t, a.Bright, true)
	test.ExpectEquality(t, a.Flash, true)
}

func TestDecode(t *testing.T) {
	mem := memory.NewMemory()
	vd := ula.NewVideoDecoder(mem)

	// first row, leftmost pixel set. blue ink on yellow paper
	mem.Write(0x4000, 0x80)
	mem.Write(0x5800, 0b00_110_001)

	// row 8 is in the second character row
	mem.Write(0x4020, 0xff)
	mem.Write(0x5820, 0b01_000_010)

	vd.Decode(false)
	test.ExpectEquality(t, len(vd.Pixels()), ula.ScreenWidth*ula.ScreenHeight*ula.PixelDepth)
	test.ExpectEquality(t, vd.At(0, 0), ula.Blue.RGBA(false))
	test.ExpectEquality(t, vd.At(1, 0), ula.Yellow.RGBA(false))
	test.ExpectEquality(t, vd.At(0, 1), ula.Yellow.RGBA(false))
	test.ExpectEquality(t, vd.At(7, 8), ula.Red.RGBA(true))

	// the rest of the screen is black on black
	test.ExpectEquality(t, vd.At(8, 0), ula.Black.RGBA(false))
}

func TestFlash(t *testing.T) {
	mem := memory.NewMemory()
	vd := ula.NewVideoDecoder(mem)

	// flash cell and steady cell side by side
	mem.Write(0x4000, 0xf0)
	mem.Write(0x4001, 0xf0)
	mem.Write(0x5800, 0b10_111_000)
	mem.Write(0x5801, 0b00_111_000)

	vd.Decode(false)
	test.ExpectEquality(t, vd.At(0, 0), ula.Black.RGBA(false))
	test.ExpectEquality(t, vd.At(4, 0), ula.White.RGBA(false))
	test.ExpectEquality(t, vd.At(8, 0), ula.Black.RGBA(false))

	// ink and paper are swapped for the flash cell only
	vd.Decode(true)
	test.ExpectEquality(t, vd.At(0, 0), ula.White.RGBA(false))
	test.ExpectEquality(t, vd.At(4, 0), ula.Black.RGBA(false))
	test.ExpectEquality(t, vd.At(8, 0), ula.Black.RGBA(false))
	test.ExpectEquality(t, vd.At(12, 0), ula.White.RGBA(false))
}

func TestPort(t *testing.T) {
	kb := keyboard.NewKeyboard()
	u := ula.NewULA(kb)

	test.ExpectEquality(t, u.Decodes(0x00fe), true)
	test.ExpectEquality(t, u.Decodes(0x00ff), false)

	// nothing pressed
	test.ExpectEquality(t, u.In(0xfefe), uint8(0xff))

	// caps shift
	test.ExpectSuccess(t, kb.HandleEvent(keyboard.CapsShift, true))
	test.ExpectEquality(t, u.In(0xfefe), uint8(0xfe))
	test.ExpectEquality(t, u.In(0x7ffe), uint8(0xff))

	// border and beeper
	u.SetCycle(100)
	u.Out(0x00fe, 0x12)
	test.ExpectEquality(t, u.Border(), ula.Red)
	test.ExpectEquality(t, u.Beeper(), true)

	// no edge if the level doesn't change
	u.SetCycle(200)
	u.Out(0x00fe, 0x13)
	test.ExpectEquality(t, u.Border(), ula.Magenta)

	u.SetCycle(300)
	u.Out(0x00fe, 0x00)

	level, edges := u.EndFrame()
	test.ExpectEquality(t, level, false)
	test.DemandEquality(t, len(edges), 2)
	test.ExpectEquality(t, edges[0], ula.BeeperEdge{Cycle: 100, High: true})
	test.ExpectEquality(t, edges[1], ula.BeeperEdge{Cycle: 300, High: false})

	level, edges = u.EndFrame()
	test.ExpectEquality(t, level, false)
	test.ExpectEquality(t, len(edges), 0)
}
