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

package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/memorymap"
)

// BadSnapshot is returned when snapshot data cannot be used.
const BadSnapshot = "snapshot: %v"

// Sizes of the parts of an SNA file.
const (
	HeaderSize = 27
	RAMSize    = 49152
	FileSize   = HeaderSize + RAMSize
)

// offsets into the header
const (
	offsetI         = 0
	offsetAltHL     = 1
	offsetAltDE     = 3
	offsetAltBC     = 5
	offsetAltAF     = 7
	offsetHL        = 9
	offsetDE        = 11
	offsetBC        = 13
	offsetIY        = 15
	offsetIX        = 17
	offsetInterrupt = 19
	offsetR         = 20
	offsetAF        = 21
	offsetSP        = 23
	offsetIM        = 25
	offsetBorder    = 26
)

// bit 2 of the interrupt byte is the value of IFF2
const iff2Bit = 0x04

// Snapshot is the decoded contents of an SNA file.
type Snapshot struct {
	I uint8
	R uint8

	AltHL uint16
	AltDE uint16
	AltBC uint16
	AltAF uint16

	HL uint16
	DE uint16
	BC uint16
	IY uint16
	IX uint16
	AF uint16

	// the stack pointer with the program counter on the top of the stack
	SP uint16

	IFF2   bool
	IM     uint8
	Border uint8

	RAM []uint8
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("SP=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x IM=%d border=%d",
		s.SP, s.AF, s.BC, s.DE, s.HL, s.IX, s.IY, s.IM, s.Border)
}

// Parse SNA data. The data must be exactly FileSize bytes long.
func Parse(data []uint8) (*Snapshot, error) {
	if len(data) != FileSize {
		return nil, curated.Errorf(BadSnapshot, fmt.Sprintf("wrong size (%d bytes, expected %d)", len(data), FileSize))
	}

	w := func(offset int) uint16 {
		return binary.LittleEndian.Uint16(data[offset:])
	}

	s := &Snapshot{
		I:      data[offsetI],
		AltHL:  w(offsetAltHL),
		AltDE:  w(offsetAltDE),
		AltBC:  w(offsetAltBC),
		AltAF:  w(offsetAltAF),
		HL:     w(offsetHL),
		DE:     w(offsetDE),
		BC:     w(offsetBC),
		IY:     w(offsetIY),
		IX:     w(offsetIX),
		IFF2:   data[offsetInterrupt]&iff2Bit == iff2Bit,
		R:      data[offsetR],
		AF:     w(offsetAF),
		SP:     w(offsetSP),
		IM:     data[offsetIM],
		Border: data[offsetBorder] & 0x07,
		RAM:    make([]uint8, RAMSize),
	}

	if s.IM > 2 {
		return nil, curated.Errorf(BadSnapshot, fmt.Sprintf("invalid interrupt mode (%d)", s.IM))
	}

	copy(s.RAM, data[HeaderSize:])

	return s, nil
}

// Read an SNA file from the io.Reader.
func Read(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(io.LimitReader(r, FileSize+1))
	if err != nil {
		return nil, curated.Errorf(BadSnapshot, err)
	}
	return Parse(data)
}

// Restore the snapshot into the CPU and memory. The program counter is popped
// from the restored stack. The stack pointer must point to RAM.
func (s *Snapshot) Restore(mc *cpu.CPU, mem *memory.Memory) error {
	if s.SP < memorymap.OriginRAM || s.SP == memorymap.MemtopRAM {
		return curated.Errorf(BadSnapshot, fmt.Sprintf("stack pointer not in RAM (%#04x)", s.SP))
	}

	if err := mem.LoadImage(s.RAM, memorymap.RAM); err != nil {
		return curated.Errorf(BadSnapshot, err)
	}

	mc.Reset()

	rf := mc.Regs
	rf.I.Load(s.I)
	rf.R.Load(s.R)
	rf.AltHL.Load(s.AltHL)
	rf.AltDE.Load(s.AltDE)
	rf.AltBC.Load(s.AltBC)
	rf.AltAF.Load(s.AltAF)
	rf.Set16(registers.RegHL, s.HL)
	rf.Set16(registers.RegDE, s.DE)
	rf.Set16(registers.RegBC, s.BC)
	rf.Set16(registers.RegIY, s.IY)
	rf.Set16(registers.RegIX, s.IX)
	rf.Set16(registers.RegAF, s.AF)

	// RETN
	lo := mem.Read(s.SP)
	hi := mem.Read(s.SP + 1)
	rf.PC.Load(uint16(hi)<<8 | uint16(lo))
	rf.SP.Load(s.SP + 2)

	mc.IFF1 = s.IFF2
	mc.IFF2 = s.IFF2
	mc.IM = s.IM

	return nil
}

// Capture creates a snapshot of the CPU and memory. The program counter is
// pushed onto the stack of the snapshot's copy of RAM. Memory itself is not
// changed.
func Capture(mc *cpu.CPU, mem *memory.Memory, border uint8) (*Snapshot, error) {
	rf := mc.Regs

	sp := rf.SP.Value() - 2
	if sp < memorymap.OriginRAM || sp == memorymap.MemtopRAM {
		return nil, curated.Errorf(BadSnapshot, fmt.Sprintf("stack pointer not in RAM (%#04x)", rf.SP.Value()))
	}

	s := &Snapshot{
		I:      rf.I.Value(),
		R:      rf.R.Value(),
		AltHL:  rf.AltHL.Value(),
		AltDE:  rf.AltDE.Value(),
		AltBC:  rf.AltBC.Value(),
		AltAF:  rf.AltAF.Value(),
		HL:     rf.HL(),
		DE:     rf.DE(),
		BC:     rf.BC(),
		IY:     rf.IY(),
		IX:     rf.IX(),
		AF:     rf.AF(),
		SP:     sp,
		IFF2:   mc.IFF2,
		IM:     mc.IM,
		Border: border & 0x07,
		RAM:    make([]uint8, RAMSize),
	}
	copy(s.RAM, mem.Area(memorymap.RAM))

	pc := rf.PC.Value()
	s.RAM[sp-memorymap.OriginRAM] = uint8(pc)
	s.RAM[sp-memorymap.OriginRAM+1] = uint8(pc >> 8)

	return s, nil
}

// Write the snapshot in the SNA format.
func (s *Snapshot) Write(w io.Writer) error {
	data := make([]uint8, FileSize)

	ww := func(offset int, v uint16) {
		binary.LittleEndian.PutUint16(data[offset:], v)
	}

	data[offsetI] = s.I
	ww(offsetAltHL, s.AltHL)
	ww(offsetAltDE, s.AltDE)
	ww(offsetAltBC, s.AltBC)
	ww(offsetAltAF, s.AltAF)
	ww(offsetHL, s.HL)
	ww(offsetDE, s.DE)
	ww(offsetBC, s.BC)
	ww(offsetIY, s.IY)
	ww(offsetIX, s.IX)
	if s.IFF2 {
		data[offsetInterrupt] = iff2Bit
	}
	data[offsetR] = s.R
	ww(offsetAF, s.AF)
	ww(offsetSP, s.SP)
	data[offsetIM] = s.IM
	data[offsetBorder] = s.Border
	copy(data[HeaderSize:], s.RAM)

	if _, err := w.Write(data); err != nil {
		return curated.Errorf(BadSnapshot, err)
	}
	return nil
}
