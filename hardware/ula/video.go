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

package ula

import (
	"image/color"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/memorymap"
)

// Dimensions of the display area in pixels. The border is not included.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
	PixelDepth   = 4
)

// the ULA reads video memory through this interface. it is satisfied by a
// *memory.Memory instance.
type VideoMemory interface {
	Read(address uint16) uint8
}

// Attribute is the decoded form of an attribute byte.
type Attribute struct {
	Ink    Colour
	Paper  Colour
	Bright bool
	Flash  bool
}

// DecodeAttribute splits an attribute byte into its fields. Bits 0 to 2 are
// the ink colour, bits 3 to 5 the paper colour, bit 6 the bright bit and bit 7
// the flash bit.
func DecodeAttribute(v uint8) Attribute {
	return Attribute{
		Ink:    Colour(v & 0x07),
		Paper:  Colour((v >> 3) & 0x07),
		Bright: v&0x40 == 0x40,
		Flash:  v&0x80 == 0x80,
	}
}

// RowAddress returns the address of the first byte of bitmap data for the
// pixel row. The rows are interleaved in the screen area in thirds of 64 rows
// and each third is divided into character rows of eight pixel rows.
func RowAddress(y int) uint16 {
	return memorymap.OriginScreen + uint16(((y&0xc0)<<5)+((y&0x38)<<2)+((y&0x07)<<8))
}

// AttributeAddress returns the address of the attribute byte for the pixel at
// x and y. Each attribute covers a cell of 8x8 pixels.
func AttributeAddress(x int, y int) uint16 {
	return memorymap.OriginAttributes + uint16((y/8)*32+x/8)
}

// VideoDecoder converts video memory into an RGBA pixel buffer.
type VideoDecoder struct {
	mem VideoMemory

	// RGBA pixels. PixelDepth bytes per pixel, ScreenWidth pixels per row
	pixels []uint8
}

// NewVideoDecoder is the preferred method of initialisation for the
// VideoDecoder type.
func NewVideoDecoder(mem VideoMemory) *VideoDecoder {
	return &VideoDecoder{
		mem:    mem,
		pixels: make([]uint8, ScreenWidth*ScreenHeight*PixelDepth),
	}
}

// Decode the current contents of video memory into the pixel buffer. If
// flashInverted is true then the ink and paper colours of cells with the flash
// bit set are swapped.
func (vd *VideoDecoder) Decode(flashInverted bool) {
	for y := 0; y < ScreenHeight; y++ {
		row := RowAddress(y)
		idx := y * ScreenWidth * PixelDepth

		for col := 0; col < ScreenWidth/8; col++ {
			bitmap := vd.mem.Read(row + uint16(col))
			attr := DecodeAttribute(vd.mem.Read(AttributeAddress(col*8, y)))

			ink := attr.Ink.RGBA(attr.Bright)
			paper := attr.Paper.RGBA(attr.Bright)
			if attr.Flash && flashInverted {
				ink, paper = paper, ink
			}

			// most significant bit is the leftmost pixel
			for b := 7; b >= 0; b-- {
				c := paper
				if bitmap&(1<<b) != 0 {
					c = ink
				}
				vd.pixels[idx] = c.R
				vd.pixels[idx+1] = c.G
				vd.pixels[idx+2] = c.B
				vd.pixels[idx+3] = c.A
				idx += PixelDepth
			}
		}
	}
}

// Pixels returns the pixel buffer. The buffer is reused by the next call to
// Decode().
func (vd *VideoDecoder) Pixels() []uint8 {
	return vd.pixels
}

// At returns the colour of the pixel in the most recent decode.
func (vd *VideoDecoder) At(x int, y int) color.RGBA {
	i := (y*ScreenWidth + x) * PixelDepth
	return color.RGBA{R: vd.pixels[i], G: vd.pixels[i+1], B: vd.pixels[i+2], A: vd.pixels[i+3]}
}
