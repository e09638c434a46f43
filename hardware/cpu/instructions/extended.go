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

// instructions prefixed by 0xed. opcodes that are not listed have no defined
// behaviour. the duplicate NEG, RETN and IM entries are mirrors found on all
// Z80 parts
var extended = []Definition{
	{OpCode: 0x40, Mnemonic: "IN B,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: B, Src: PortC},
	{OpCode: 0x41, Mnemonic: "OUT (C),B", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: B},
	{OpCode: 0x42, Mnemonic: "SBC HL,BC", Bytes: 2, Cycles: 15, Operator: Sbc16, Dst: HL, Src: BC},
	{OpCode: 0x43, Mnemonic: "LD (nn),BC", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: IndNN, Src: BC},
	{OpCode: 0x44, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x45, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x46, Mnemonic: "IM 0", Bytes: 2, Cycles: 8, Operator: Im, Param: 0},
	{OpCode: 0x47, Mnemonic: "LD I,A", Bytes: 2, Cycles: 9, Operator: Ld, Dst: I, Src: A},
	{OpCode: 0x48, Mnemonic: "IN C,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: C, Src: PortC},
	{OpCode: 0x49, Mnemonic: "OUT (C),C", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: C},
	{OpCode: 0x4a, Mnemonic: "ADC HL,BC", Bytes: 2, Cycles: 15, Operator: Adc16, Dst: HL, Src: BC},
	{OpCode: 0x4b, Mnemonic: "LD BC,(nn)", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: BC, Src: IndNN},
	{OpCode: 0x4c, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x4d, Mnemonic: "RETI", Bytes: 2, Cycles: 14, Operator: Reti},
	{OpCode: 0x4e, Mnemonic: "IM 0", Bytes: 2, Cycles: 8, Operator: Im, Param: 0},
	{OpCode: 0x4f, Mnemonic: "LD R,A", Bytes: 2, Cycles: 9, Operator: Ld, Dst: R, Src: A},
	{OpCode: 0x50, Mnemonic: "IN D,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: D, Src: PortC},
	{OpCode: 0x51, Mnemonic: "OUT (C),D", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: D},
	{OpCode: 0x52, Mnemonic: "SBC HL,DE", Bytes: 2, Cycles: 15, Operator: Sbc16, Dst: HL, Src: DE},
	{OpCode: 0x53, Mnemonic: "LD (nn),DE", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: IndNN, Src: DE},
	{OpCode: 0x54, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x55, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x56, Mnemonic: "IM 1", Bytes: 2, Cycles: 8, Operator: Im, Param: 1},
	{OpCode: 0x57, Mnemonic: "LD A,I", Bytes: 2, Cycles: 9, Operator: Ld, Dst: A, Src: I},
	{OpCode: 0x58, Mnemonic: "IN E,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: E, Src: PortC},
	{OpCode: 0x59, Mnemonic: "OUT (C),E", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: E},
	{OpCode: 0x5a, Mnemonic: "ADC HL,DE", Bytes: 2, Cycles: 15, Operator: Adc16, Dst: HL, Src: DE},
	{OpCode: 0x5b, Mnemonic: "LD DE,(nn)", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: DE, Src: IndNN},
	{OpCode: 0x5c, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x5d, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x5e, Mnemonic: "IM 2", Bytes: 2, Cycles: 8, Operator: Im, Param: 2},
	{OpCode: 0x5f, Mnemonic: "LD A,R", Bytes: 2, Cycles: 9, Operator: Ld, Dst: A, Src: R},
	{OpCode: 0x60, Mnemonic: "IN H,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: H, Src: PortC},
	{OpCode: 0x61, Mnemonic: "OUT (C),H", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: H},
	{OpCode: 0x62, Mnemonic: "SBC HL,HL", Bytes: 2, Cycles: 15, Operator: Sbc16, Dst: HL, Src: HL},
	{OpCode: 0x63, Mnemonic: "LD (nn),HL", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: IndNN, Src: HL},
	{OpCode: 0x64, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x65, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x66, Mnemonic: "IM 0", Bytes: 2, Cycles: 8, Operator: Im, Param: 0},
	{OpCode: 0x67, Mnemonic: "RRD", Bytes: 2, Cycles: 18, Operator: Rrd},
	{OpCode: 0x68, Mnemonic: "IN L,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: L, Src: PortC},
	{OpCode: 0x69, Mnemonic: "OUT (C),L", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: L},
	{OpCode: 0x6a, Mnemonic: "ADC HL,HL", Bytes: 2, Cycles: 15, Operator: Adc16, Dst: HL, Src: HL},
	{OpCode: 0x6b, Mnemonic: "LD HL,(nn)", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: HL, Src: IndNN},
	{OpCode: 0x6c, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x6d, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x6e, Mnemonic: "IM 0", Bytes: 2, Cycles: 8, Operator: Im, Param: 0},
	{OpCode: 0x6f, Mnemonic: "RLD", Bytes: 2, Cycles: 18, Operator: Rld},
	{OpCode: 0x70, Mnemonic: "IN (C)", Bytes: 2, Cycles: 12, Operator: In, Src: PortC},
	{OpCode: 0x71, Mnemonic: "OUT (C),0", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC},
	{OpCode: 0x72, Mnemonic: "SBC HL,SP", Bytes: 2, Cycles: 15, Operator: Sbc16, Dst: HL, Src: SP},
	{OpCode: 0x73, Mnemonic: "LD (nn),SP", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: IndNN, Src: SP},
	{OpCode: 0x74, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x75, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x76, Mnemonic: "IM 1", Bytes: 2, Cycles: 8, Operator: Im, Param: 1},
	{OpCode: 0x78, Mnemonic: "IN A,(C)", Bytes: 2, Cycles: 12, Operator: In, Dst: A, Src: PortC},
	{OpCode: 0x79, Mnemonic: "OUT (C),A", Bytes: 2, Cycles: 12, Operator: Out, Dst: PortC, Src: A},
	{OpCode: 0x7a, Mnemonic: "ADC HL,SP", Bytes: 2, Cycles: 15, Operator: Adc16, Dst: HL, Src: SP},
	{OpCode: 0x7b, Mnemonic: "LD SP,(nn)", Bytes: 4, Cycles: 20, Operator: Ld16, Dst: SP, Src: IndNN},
	{OpCode: 0x7c, Mnemonic: "NEG", Bytes: 2, Cycles: 8, Operator: Neg},
	{OpCode: 0x7d, Mnemonic: "RETN", Bytes: 2, Cycles: 14, Operator: Retn},
	{OpCode: 0x7e, Mnemonic: "IM 2", Bytes: 2, Cycles: 8, Operator: Im, Param: 2},
	{OpCode: 0xa0, Mnemonic: "LDI", Bytes: 2, Cycles: 16, Operator: Ldi},
	{OpCode: 0xa1, Mnemonic: "CPI", Bytes: 2, Cycles: 16, Operator: Cpi},
	{OpCode: 0xa2, Mnemonic: "INI", Bytes: 2, Cycles: 16, Operator: Ini},
	{OpCode: 0xa3, Mnemonic: "OUTI", Bytes: 2, Cycles: 16, Operator: Outi},
	{OpCode: 0xa8, Mnemonic: "LDD", Bytes: 2, Cycles: 16, Operator: Ldd},
	{OpCode: 0xa9, Mnemonic: "CPD", Bytes: 2, Cycles: 16, Operator: Cpd},
	{OpCode: 0xaa, Mnemonic: "IND", Bytes: 2, Cycles: 16, Operator: Ind},
	{OpCode: 0xab, Mnemonic: "OUTD", Bytes: 2, Cycles: 16, Operator: Outd},
	{OpCode: 0xb0, Mnemonic: "LDIR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Ldir},
	{OpCode: 0xb1, Mnemonic: "CPIR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Cpir},
	{OpCode: 0xb2, Mnemonic: "INIR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Inir},
	{OpCode: 0xb3, Mnemonic: "OTIR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Otir},
	{OpCode: 0xb8, Mnemonic: "LDDR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Lddr},
	{OpCode: 0xb9, Mnemonic: "CPDR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Cpdr},
	{OpCode: 0xba, Mnemonic: "INDR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Indr},
	{OpCode: 0xbb, Mnemonic: "OTDR", Bytes: 2, Cycles: 16, CyclesTaken: 21, Operator: Otdr},
}
