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

// Operator identifies the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Ld
	Ld16
	Push
	Pop
	Ex
	ExAF
	Exx
	ExSP

	// eight bit arithmetic and logic
	Add
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
	Inc
	Dec

	// sixteen bit arithmetic
	Add16
	Adc16
	Sbc16
	Inc16
	Dec16

	// accumulator and flags
	Rlca
	Rrca
	Rla
	Rra
	Daa
	Cpl
	Scf
	Ccf
	Neg

	// rotate, shift and bit instructions. Sll is undocumented
	Rlc
	Rrc
	Rl
	Rr
	Sla
	Sra
	Sll
	Srl
	Bit
	Res
	Set
	Rrd
	Rld

	// flow
	Jp
	Jr
	Djnz
	Call
	Ret
	Reti
	Retn
	Rst

	// cpu control
	Halt
	Di
	Ei
	Im

	// input and output
	In
	Out

	// block transfer, search and input/output
	Ldi
	Ldd
	Ldir
	Lddr
	Cpi
	Cpd
	Cpir
	Cpdr
	Ini
	Ind
	Inir
	Indr
	Outi
	Outd
	Otir
	Otdr
)

func (op Operator) String() string {
	switch op {
	case Nop:
		return "NOP"
	case Ld:
		return "LD"
	case Ld16:
		return "LD"
	case Push:
		return "PUSH"
	case Pop:
		return "POP"
	case Ex:
		return "EX"
	case ExAF:
		return "EX"
	case Exx:
		return "EXX"
	case ExSP:
		return "EX"
	case Add:
		return "ADD"
	case Adc:
		return "ADC"
	case Sub:
		return "SUB"
	case Sbc:
		return "SBC"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Or:
		return "OR"
	case Cp:
		return "CP"
	case Inc:
		return "INC"
	case Dec:
		return "DEC"
	case Add16:
		return "ADD"
	case Adc16:
		return "ADC"
	case Sbc16:
		return "SBC"
	case Inc16:
		return "INC"
	case Dec16:
		return "DEC"
	case Rlca:
		return "RLCA"
	case Rrca:
		return "RRCA"
	case Rla:
		return "RLA"
	case Rra:
		return "RRA"
	case Daa:
		return "DAA"
	case Cpl:
		return "CPL"
	case Scf:
		return "SCF"
	case Ccf:
		return "CCF"
	case Neg:
		return "NEG"
	case Rlc:
		return "RLC"
	case Rrc:
		return "RRC"
	case Rl:
		return "RL"
	case Rr:
		return "RR"
	case Sla:
		return "SLA"
	case Sra:
		return "SRA"
	case Sll:
		return "SLL"
	case Srl:
		return "SRL"
	case Bit:
		return "BIT"
	case Res:
		return "RES"
	case Set:
		return "SET"
	case Rrd:
		return "RRD"
	case Rld:
		return "RLD"
	case Jp:
		return "JP"
	case Jr:
		return "JR"
	case Djnz:
		return "DJNZ"
	case Call:
		return "CALL"
	case Ret:
		return "RET"
	case Reti:
		return "RETI"
	case Retn:
		return "RETN"
	case Rst:
		return "RST"
	case Halt:
		return "HALT"
	case Di:
		return "DI"
	case Ei:
		return "EI"
	case Im:
		return "IM"
	case In:
		return "IN"
	case Out:
		return "OUT"
	case Ldi:
		return "LDI"
	case Ldd:
		return "LDD"
	case Ldir:
		return "LDIR"
	case Lddr:
		return "LDDR"
	case Cpi:
		return "CPI"
	case Cpd:
		return "CPD"
	case Cpir:
		return "CPIR"
	case Cpdr:
		return "CPDR"
	case Ini:
		return "INI"
	case Ind:
		return "IND"
	case Inir:
		return "INIR"
	case Indr:
		return "INDR"
	case Outi:
		return "OUTI"
	case Outd:
		return "OUTD"
	case Otir:
		return "OTIR"
	case Otdr:
		return "OTDR"
	}
	return "unknown operator"
}
