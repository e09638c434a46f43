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

package instructions_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestTableCounts(t *testing.T) {
	tab, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tab.Count(instructions.Unprefixed), 252)
	test.ExpectEquality(t, tab.Count(instructions.CB), 256)
	test.ExpectEquality(t, tab.Count(instructions.ED), 78)
	test.ExpectEquality(t, tab.Count(instructions.DD), 85)
	test.ExpectEquality(t, tab.Count(instructions.FD), 85)
	test.ExpectEquality(t, tab.Count(instructions.DDCB), 256)
	test.ExpectEquality(t, tab.Count(instructions.FDCB), 256)

	for _, p := range []uint8{0xcb, 0xdd, 0xed, 0xfd} {
		test.ExpectEquality(t, tab.Lookup(instructions.Unprefixed, p) == nil, true, p)
	}

	// undefined ED opcodes
	test.ExpectEquality(t, tab.Lookup(instructions.ED, 0x00) == nil, true)
	test.ExpectEquality(t, tab.Lookup(instructions.ED, 0x77) == nil, true)
}

func TestSameTable(t *testing.T) {
	a, _ := instructions.GetDefinitions()
	b, _ := instructions.GetDefinitions()
	test.ExpectEquality(t, a, b)
}

func TestDefinitions(t *testing.T) {
	tab, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	tests := []struct {
		prefix   instructions.Prefix
		opcode   uint8
		mnemonic string
		bytes    int
		cycles   int
	}{
		{instructions.Unprefixed, 0x00, "NOP", 1, 4},
		{instructions.Unprefixed, 0x80, "ADD A,B", 1, 4},
		{instructions.Unprefixed, 0x86, "ADD A,(HL)", 1, 7},
		{instructions.Unprefixed, 0x3e, "LD A,n", 2, 7},
		{instructions.Unprefixed, 0x36, "LD (HL),n", 2, 10},
		{instructions.Unprefixed, 0xcd, "CALL nn", 3, 17},
		{instructions.Unprefixed, 0xff, "RST 38h", 1, 11},
		{instructions.CB, 0x06, "RLC (HL)", 2, 15},
		{instructions.CB, 0x7e, "BIT 7,(HL)", 2, 12},
		{instructions.CB, 0xc7, "SET 0,A", 2, 8},
		{instructions.ED, 0xb0, "LDIR", 2, 16},
		{instructions.ED, 0x5e, "IM 2", 2, 8},
		{instructions.DD, 0x21, "LD IX,nn", 4, 14},
		{instructions.DD, 0x66, "LD H,(IX+d)", 3, 19},
		{instructions.DD, 0x36, "LD (IX+d),n", 4, 19},
		{instructions.DD, 0x29, "ADD IX,IX", 2, 15},
		{instructions.DD, 0xe9, "JP (IX)", 2, 8},
		{instructions.FD, 0x65, "LD IYH,IYL", 2, 8},
		{instructions.FD, 0x34, "INC (IY+d)", 3, 23},
		{instructions.FD, 0xe3, "EX (SP),IY", 2, 23},
		{instructions.DDCB, 0x06, "RLC (IX+d)", 4, 23},
		{instructions.DDCB, 0x00, "RLC (IX+d),B", 4, 23},
		{instructions.DDCB, 0x46, "BIT 0,(IX+d)", 4, 20},
		{instructions.FDCB, 0xfe, "SET 7,(IY+d)", 4, 23},
		{instructions.FDCB, 0x87, "RES 0,(IY+d),A", 4, 23},
	}

	for _, tt := range tests {
		d := tab.Lookup(tt.prefix, tt.opcode)
		if d == nil {
			t.Errorf("missing definition for %s%02x", tt.prefix, tt.opcode)
			continue
		}
		test.ExpectEquality(t, d.Mnemonic, tt.mnemonic, tt.prefix, tt.opcode)
		test.ExpectEquality(t, d.Bytes, tt.bytes, tt.mnemonic)
		test.ExpectEquality(t, d.Cycles, tt.cycles, tt.mnemonic)
	}

	// EX DE,HL is not affected by the index prefix
	test.ExpectEquality(t, tab.Lookup(instructions.DD, 0xeb) == nil, true)

	// nor are instructions that don't use HL
	test.ExpectEquality(t, tab.Lookup(instructions.DD, 0x00) == nil, true)
	test.ExpectEquality(t, tab.Lookup(instructions.FD, 0x80) == nil, true)
}

func TestConditionalCosts(t *testing.T) {
	tab, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	jr := tab.Lookup(instructions.Unprefixed, 0x20)
	test.ExpectSuccess(t, jr.IsConditional())
	test.ExpectEquality(t, jr.Cond, instructions.NotZero)
	test.ExpectEquality(t, jr.CyclesTaken, 12)

	jp := tab.Lookup(instructions.Unprefixed, 0xc2)
	test.ExpectFailure(t, jp.IsConditional())
}
