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

package execution

import (
	"fmt"
	"strings"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/instructions"
)

// Interrupt identifies the kind of interrupt accepted by the CPU in place of
// executing an instruction.
type Interrupt int

// List of interrupt kinds.
const (
	NoInterrupt Interrupt = iota
	NMI
	Maskable
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case Maskable:
		return "INT"
	}
	return ""
}

// MaxBytes is the greatest number of bytes in a single instruction, not
// counting ignored prefix bytes.
const MaxBytes = 4

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the CPU accepted an
	// interrupt rather than executing an instruction
	Defn *instructions.Definition

	// the bytes read during decoding. only the first MaxBytes bytes are kept
	Bytes     [MaxBytes]uint8
	ByteCount int

	// index prefixes that had no effect on the instruction. each ignored
	// prefix adds a byte and four cycles
	IgnoredPrefixes int

	// the number of cycles taken by the instruction
	Cycles int

	// whether the condition of a conditional instruction was met, or whether
	// a block instruction is repeating
	Taken bool

	// the CPU was halted and the instruction was not read from memory
	Halted bool

	// the kind of interrupt accepted by the CPU
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%#04x %s (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%#04x unknown instruction", r.Address)
	}

	if r.Halted {
		return fmt.Sprintf("%#04x %s (halted)", r.Address, r.Defn.Mnemonic)
	}

	n := r.ByteCount
	if n > MaxBytes {
		n = MaxBytes
	}
	b := make([]string, n)
	for i := range b {
		b[i] = fmt.Sprintf("%02x", r.Bytes[i])
	}

	return fmt.Sprintf("%#04x %s %s", r.Address, r.Defn.Mnemonic, strings.Join(b, " "))
}
