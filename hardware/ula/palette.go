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

import "image/color"

// Colour is one of the eight colours of the attribute byte.
type Colour uint8

// List of valid Colour values.
const (
	Black Colour = iota
	Blue
	Red
	Magenta
	Green
	Cyan
	Yellow
	White
)

func (c Colour) String() string {
	switch c & 0x07 {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Yellow:
		return "yellow"
	}
	return "white"
}

// the intensity of a colour component for normal and bright colours
const (
	normalIntensity = 0xcd
	brightIntensity = 0xff
)

// the colour index has the blue component in bit 0, red in bit 1 and green in
// bit 2. bit 3 is the bright bit
var palette [16]color.RGBA

func init() {
	for i := range palette {
		v := uint8(normalIntensity)
		if i&0x08 == 0x08 {
			v = brightIntensity
		}

		c := color.RGBA{A: 0xff}
		if i&0x01 == 0x01 {
			c.B = v
		}
		if i&0x02 == 0x02 {
			c.R = v
		}
		if i&0x04 == 0x04 {
			c.G = v
		}
		palette[i] = c
	}
}

// RGBA returns the colour value for the colour. Bright black is the same as
// black.
func (c Colour) RGBA(bright bool) color.RGBA {
	i := c & 0x07
	if bright {
		i |= 0x08
	}
	return palette[i]
}
