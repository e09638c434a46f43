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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
)

// Memory is the memory being disassembled.
type Memory interface {
	Read(address uint16) uint8
}

// Disassembly decodes instructions from memory.
type Disassembly struct {
	mem   Memory
	table *instructions.Table
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly(mem Memory) (*Disassembly, error) {
	table, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return &Disassembly{mem: mem, table: table}, nil
}

// decoder reads from memory in sequence, recording each byte.
type decoder struct {
	mem     Memory
	origin  uint16
	address uint16
	bytes   []uint8
}

func (dec *decoder) fetch() uint8 {
	v := dec.mem.Read(dec.address)
	dec.address++
	dec.bytes = append(dec.bytes, v)
	return v
}

// Decode the instruction at the address.
func (dsm *Disassembly) Decode(address uint16) Entry {
	dec := &decoder{mem: dsm.mem, origin: address, address: address}

	prefix := instructions.Unprefixed
	opcode := dec.fetch()

	var displacement int8
	var haveDisplacement bool

	for opcode == 0xdd || opcode == 0xfd {
		if prefix != instructions.Unprefixed {
			// only the last of a sequence of prefixes has any effect
			return defb(address, dec.bytes[0])
		}
		if opcode == 0xdd {
			prefix = instructions.DD
		} else {
			prefix = instructions.FD
		}
		opcode = dec.fetch()
	}

	switch opcode {
	case 0xed:
		if prefix != instructions.Unprefixed {
			return defb(address, dec.bytes[0])
		}
		prefix = instructions.ED
		opcode = dec.fetch()

	case 0xcb:
		switch prefix {
		case instructions.DD:
			prefix = instructions.DDCB
		case instructions.FD:
			prefix = instructions.FDCB
		default:
			prefix = instructions.CB
			opcode = dec.fetch()
		}

		if prefix == instructions.DDCB || prefix == instructions.FDCB {
			displacement = int8(dec.fetch())
			haveDisplacement = true
			opcode = dec.fetch()
		}
	}

	defn := dsm.table.Lookup(prefix, opcode)

	// an index prefix with no effect is shown on its own and the instruction
	// is decoded from the next address
	if defn == nil {
		return defb(address, dec.bytes[0])
	}

	// operand values in the order they appear in the instruction
	values := make(map[string]string)
	for _, op := range []instructions.Operand{defn.Dst, defn.Src} {
		token := op.String()
		switch op.Kind {
		case instructions.Immediate8:
			values[token] = fmt.Sprintf("%02xh", dec.fetch())
		case instructions.PortImmediate:
			values[token] = fmt.Sprintf("(%02xh)", dec.fetch())
		case instructions.Immediate16:
			lo := dec.fetch()
			hi := dec.fetch()
			values[token] = fmt.Sprintf("%04xh", uint16(hi)<<8|uint16(lo))
		case instructions.Absolute:
			lo := dec.fetch()
			hi := dec.fetch()
			values[token] = fmt.Sprintf("(%04xh)", uint16(hi)<<8|uint16(lo))
		case instructions.Indexed:
			if !haveDisplacement {
				displacement = int8(dec.fetch())
				haveDisplacement = true
			}
			sign := "+"
			d := int(displacement)
			if d < 0 {
				sign = "-"
				d = -d
			}
			values[token] = fmt.Sprintf("(%s%s%02xh)", op.Reg16, sign, d)
		case instructions.Relative:
			e := int8(dec.fetch())
			values[token] = fmt.Sprintf("%04xh", dec.address+uint16(e))
		}
	}

	operator, operand, _ := strings.Cut(defn.Mnemonic, " ")
	if operand != "" {
		ops := strings.Split(operand, ",")
		for i := range ops {
			if v, ok := values[ops[i]]; ok {
				ops[i] = v
			}
		}
		operand = strings.Join(ops, ",")
	}

	return Entry{
		Address:  address,
		Bytes:    dec.bytes,
		Defn:     defn,
		Operator: operator,
		Operand:  operand,
	}
}

func defb(address uint16, b uint8) Entry {
	return Entry{
		Address:  address,
		Bytes:    []uint8{b},
		Operator: "DEFB",
		Operand:  fmt.Sprintf("%02xh", b),
	}
}

// Linear disassembles count instructions starting at the origin. Addresses
// wrap around at the top of memory.
func (dsm *Disassembly) Linear(origin uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	address := origin
	for i := 0; i < count; i++ {
		e := dsm.Decode(address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}
