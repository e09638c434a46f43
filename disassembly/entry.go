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

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8

	// the definition of the instruction. nil if the bytes did not decode
	Defn *instructions.Definition

	// the mnemonic with operand values in place of the operand tokens. for
	// example "LD A,3eh"
	Operator string
	Operand  string
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	b := make([]string, len(e.Bytes))
	for i, v := range e.Bytes {
		b[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(b, " ")
}

// Mnemonic returns the operator and operands of the instruction.
func (e Entry) Mnemonic() string {
	if e.Operand == "" {
		return e.Operator
	}
	return e.Operator + " " + e.Operand
}

func (e Entry) String() string {
	return fmt.Sprintf("%#04x %-12s %s", e.Address, e.Bytecode(), e.Mnemonic())
}
