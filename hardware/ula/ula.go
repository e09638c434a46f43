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
	"fmt"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/peripherals/keyboard"
)

// BeeperEdge records a change of level of the beeper output.
type BeeperEdge struct {
	// the cycle in the frame at which the change happened
	Cycle int

	// the new level of the beeper
	High bool
}

// bits of the value written to the ULA port
const (
	borderMask = 0x07
	micBit     = 0x08
	earBit     = 0x10
)

// the EAR input is not connected and always reads high
const earIn = 0x40

// ULA is the port device at every even port address.
type ULA struct {
	kb *keyboard.Keyboard

	border Colour
	mic    bool
	ear    bool

	// the beeper level at the start of the current frame
	frameLevel bool

	// the current cycle in the frame. set by the machine with SetCycle()
	cycle int

	edges []BeeperEdge
}

// NewULA is the preferred method of initialisation for the ULA type.
func NewULA(kb *keyboard.Keyboard) *ULA {
	return &ULA{
		kb:    kb,
		edges: make([]BeeperEdge, 0, 64),
	}
}

func (u *ULA) String() string {
	return fmt.Sprintf("border=%s ear=%v mic=%v", u.border, u.ear, u.mic)
}

// Reset the ULA to the power-on state.
func (u *ULA) Reset() {
	u.border = Black
	u.mic = false
	u.ear = false
	u.frameLevel = false
	u.cycle = 0
	u.edges = u.edges[:0]
}

// Label implements the ports.Device interface.
func (u *ULA) Label() string {
	return "ULA"
}

// Decodes implements the ports.Device interface. The ULA responds to every
// port with bit 0 clear.
func (u *ULA) Decodes(port uint16) bool {
	return port&0x0001 == 0
}

// In implements the ports.Device interface. The high byte of the port address
// selects the keyboard half-rows.
func (u *ULA) In(port uint16) uint8 {
	return u.kb.Read(uint8(port>>8)) | earIn
}

// Out implements the ports.Device interface.
func (u *ULA) Out(_ uint16, data uint8) {
	u.border = Colour(data & borderMask)
	u.mic = data&micBit == micBit

	ear := data&earBit == earBit
	if ear != u.ear {
		u.ear = ear
		u.edges = append(u.edges, BeeperEdge{Cycle: u.cycle, High: ear})
	}
}

// SetCycle sets the current cycle of the frame. Beeper edges are stamped with
// this value.
func (u *ULA) SetCycle(cycle int) {
	u.cycle = cycle
}

// Border returns the current border colour.
func (u *ULA) Border() Colour {
	return u.border
}

// Beeper returns the current level of the beeper.
func (u *ULA) Beeper() bool {
	return u.ear
}

// EndFrame returns the level of the beeper at the start of the frame and the
// list of beeper edges in the frame. The list is reset for the next frame. The
// returned slice belongs to the caller.
func (u *ULA) EndFrame() (bool, []BeeperEdge) {
	level := u.frameLevel
	edges := u.edges
	u.frameLevel = u.ear
	u.edges = make([]BeeperEdge, 0, cap(edges))
	u.cycle = 0
	return level, edges
}
