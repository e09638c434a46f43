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

package instructions

import (
	"fmt"
	"strings"
	"sync"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
)

// Table is the complete instruction set arranged by prefix and opcode.
type Table struct {
	defns [numPrefixes][256]*Definition
}

// Lookup returns the definition for the opcode in the prefix sub-table.
// Returns nil if there is no instruction with that opcode.
func (tab *Table) Lookup(prefix Prefix, opcode uint8) *Definition {
	if prefix < 0 || prefix >= numPrefixes {
		return nil
	}
	return tab.defns[prefix][opcode]
}

// Count returns the number of definitions in the sub-table.
func (tab *Table) Count(prefix Prefix) int {
	var n int
	for _, d := range tab.defns[prefix] {
		if d != nil {
			n++
		}
	}
	return n
}

func (tab *Table) add(defn Definition) error {
	if tab.defns[defn.Prefix][defn.OpCode] != nil {
		return curated.Errorf("instructions: duplicate definition (%s%02x %s)", defn.Prefix, defn.OpCode, defn.Mnemonic)
	}
	tab.defns[defn.Prefix][defn.OpCode] = &defn
	return nil
}

var (
	table     *Table
	tableErr  error
	buildOnce sync.Once
)

// GetDefinitions returns the instruction table. The table is built on the
// first call and is shared by every caller. The table must not be altered.
func GetDefinitions() (*Table, error) {
	buildOnce.Do(func() {
		table, tableErr = build()
	})
	return table, tableErr
}

func build() (*Table, error) {
	tab := &Table{}

	for _, d := range unprefixed {
		d.Prefix = Unprefixed
		if err := tab.add(d); err != nil {
			return nil, err
		}
	}

	for _, d := range extended {
		d.Prefix = ED
		if err := tab.add(d); err != nil {
			return nil, err
		}
	}

	for _, d := range bitInstructions() {
		if err := tab.add(d); err != nil {
			return nil, err
		}
	}

	for _, idx := range []indexRegister{indexIX, indexIY} {
		for _, d := range unprefixed {
			if n, ok := idx.substitute(d); ok {
				if err := tab.add(n); err != nil {
					return nil, err
				}
			}
		}
		for _, d := range idx.bitInstructions() {
			if err := tab.add(d); err != nil {
				return nil, err
			}
		}
	}

	return tab, tab.verify()
}

// verify checks that the tables that should be complete are complete
func (tab *Table) verify() error {
	for opcode := 0; opcode < 256; opcode++ {
		switch opcode {
		case 0xcb, 0xdd, 0xed, 0xfd:
			if tab.defns[Unprefixed][opcode] != nil {
				return curated.Errorf("instructions: prefix has a definition (%02x)", opcode)
			}
		default:
			if tab.defns[Unprefixed][opcode] == nil {
				return curated.Errorf("instructions: missing definition (%02x)", opcode)
			}
		}

		for _, p := range []Prefix{CB, DDCB, FDCB} {
			if tab.defns[p][opcode] == nil {
				return curated.Errorf("instructions: missing definition (%s%02x)", p, opcode)
			}
		}
	}

	for p := range tab.defns {
		for opcode, d := range tab.defns[p] {
			if d == nil {
				continue
			}
			if d.Prefix != Prefix(p) || d.OpCode != uint8(opcode) {
				return curated.Errorf("instructions: definition in wrong place (%s%02x %s)", d.Prefix, d.OpCode, d.Mnemonic)
			}
		}
	}

	return nil
}

// the operand for each value of the three bit register field of an opcode.
// the value 6 selects the memory location addressed by HL
var registerField = [8]Operand{B, C, D, E, H, L, IndHL, A}

var rotations = [8]Operator{Rlc, Rrc, Rl, Rr, Sla, Sra, Sll, Srl}

func bitInstructions() []Definition {
	defns := make([]Definition, 0, 256)

	for opcode := 0; opcode < 256; opcode++ {
		x := opcode >> 6
		y := (opcode >> 3) & 0x07
		r := registerField[opcode&0x07]

		d := Definition{
			Prefix: CB,
			OpCode: uint8(opcode),
			Bytes:  2,
			Cycles: 8,
			Src:    r,
		}

		switch x {
		case 0:
			d.Operator = rotations[y]
			d.Mnemonic = fmt.Sprintf("%s %s", d.Operator, r)
			if r == IndHL {
				d.Cycles = 15
			}
		case 1:
			d.Operator = Bit
		case 2:
			d.Operator = Res
		case 3:
			d.Operator = Set
		}

		if x > 0 {
			d.Param = uint16(y)
			d.Mnemonic = fmt.Sprintf("%s %d,%s", d.Operator, y, r)
			if r == IndHL {
				if d.Operator == Bit {
					d.Cycles = 12
				} else {
					d.Cycles = 15
				}
			}
		}

		defns = append(defns, d)
	}

	return defns
}

type indexRegister struct {
	prefix    Prefix
	bitPrefix Prefix
	pair      Operand
	hi        Operand
	lo        Operand
	indexed   Operand
}

var indexIX = indexRegister{
	prefix:    DD,
	bitPrefix: DDCB,
	pair:      IX,
	hi:        IXH,
	lo:        IXL,
	indexed:   IndIX,
}

var indexIY = indexRegister{
	prefix:    FD,
	bitPrefix: FDCB,
	pair:      IY,
	hi:        IYH,
	lo:        IYL,
	indexed:   IndIY,
}

// substitute the index register in place of HL, H and L. Returns false if the
// instruction is not changed by the index prefix.
//
// instructions that use (HL) have only that operand changed. LD H,(HL)
// becomes LD H,(IX+d) not LD IXH,(IX+d)
func (idx indexRegister) substitute(d Definition) (Definition, bool) {
	// EX DE,HL is never affected by the prefix
	if d.Operator == Ex {
		return d, false
	}

	uses := func(op Operand) bool {
		return d.Dst == op || d.Src == op
	}

	replace := func(from Operand, to Operand, token string) {
		if d.Dst == from {
			d.Dst = to
		}
		if d.Src == from {
			d.Src = to
		}
		d.Mnemonic = replaceToken(d.Mnemonic, from.String(), token)
	}

	switch {
	case uses(IndHL):
		replace(IndHL, idx.indexed, idx.indexed.String())
		d.Bytes += 2
		if d.Src == N {
			d.Cycles += 9
		} else {
			d.Cycles += 12
		}
	case uses(HL):
		replace(HL, idx.pair, idx.pair.String())

		// JP (HL) is written with brackets even though it is not indirect
		if d.Operator == Jp {
			d.Mnemonic = replaceToken(d.Mnemonic, "(HL)", "("+idx.pair.String()+")")
		}
		d.Bytes++
		d.Cycles += 4
	case uses(H) || uses(L):
		replace(H, idx.hi, idx.hi.String())
		replace(L, idx.lo, idx.lo.String())
		d.Bytes++
		d.Cycles += 4
	default:
		return d, false
	}

	d.Prefix = idx.prefix
	if d.CyclesTaken != 0 {
		d.CyclesTaken += 4
	}

	return d, true
}

// replaceToken replaces whole operand tokens in a mnemonic.
func replaceToken(mnemonic string, from string, to string) string {
	s := strings.SplitN(mnemonic, " ", 2)
	if len(s) < 2 {
		return mnemonic
	}
	ops := strings.Split(s[1], ",")
	for i := range ops {
		if ops[i] == from {
			ops[i] = to
		}
	}
	return s[0] + " " + strings.Join(ops, ",")
}

// bitInstructions for the index register. the result of rotate, shift, RES
// and SET instructions is also copied to the register in the register field
// unless the register field selects (HL)
func (idx indexRegister) bitInstructions() []Definition {
	defns := make([]Definition, 0, 256)

	for opcode := 0; opcode < 256; opcode++ {
		x := opcode >> 6
		y := (opcode >> 3) & 0x07
		r := registerField[opcode&0x07]

		d := Definition{
			Prefix: idx.bitPrefix,
			OpCode: uint8(opcode),
			Bytes:  4,
			Cycles: 23,
			Src:    idx.indexed,
		}

		if r != IndHL && x != 1 {
			d.Dst = r
		}

		switch x {
		case 0:
			d.Operator = rotations[y]
			d.Mnemonic = fmt.Sprintf("%s %s", d.Operator, d.Src)
		case 1:
			d.Operator = Bit
			d.Cycles = 20
		case 2:
			d.Operator = Res
		case 3:
			d.Operator = Set
		}

		if x > 0 {
			d.Param = uint16(y)
			d.Mnemonic = fmt.Sprintf("%s %d,%s", d.Operator, y, d.Src)
		}

		if d.Dst != (Operand{}) {
			d.Mnemonic = fmt.Sprintf("%s,%s", d.Mnemonic, d.Dst)
		}

		defns = append(defns, d)
	}

	return defns
}
