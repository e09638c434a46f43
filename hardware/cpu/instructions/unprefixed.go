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

// unprefixed instructions. the four prefix opcodes 0xcb, 0xdd, 0xed and 0xfd
// are the only opcodes not listed
var unprefixed = []Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Operator: Nop},
	{OpCode: 0x01, Mnemonic: "LD BC,nn", Bytes: 3, Cycles: 10, Operator: Ld16, Dst: BC, Src: NN},
	{OpCode: 0x02, Mnemonic: "LD (BC),A", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndBC, Src: A},
	{OpCode: 0x03, Mnemonic: "INC BC", Bytes: 1, Cycles: 6, Operator: Inc16, Dst: BC},
	{OpCode: 0x04, Mnemonic: "INC B", Bytes: 1, Cycles: 4, Operator: Inc, Dst: B},
	{OpCode: 0x05, Mnemonic: "DEC B", Bytes: 1, Cycles: 4, Operator: Dec, Dst: B},
	{OpCode: 0x06, Mnemonic: "LD B,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: B, Src: N},
	{OpCode: 0x07, Mnemonic: "RLCA", Bytes: 1, Cycles: 4, Operator: Rlca},
	{OpCode: 0x08, Mnemonic: "EX AF,AF'", Bytes: 1, Cycles: 4, Operator: ExAF},
	{OpCode: 0x09, Mnemonic: "ADD HL,BC", Bytes: 1, Cycles: 11, Operator: Add16, Dst: HL, Src: BC},
	{OpCode: 0x0a, Mnemonic: "LD A,(BC)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: A, Src: IndBC},
	{OpCode: 0x0b, Mnemonic: "DEC BC", Bytes: 1, Cycles: 6, Operator: Dec16, Dst: BC},
	{OpCode: 0x0c, Mnemonic: "INC C", Bytes: 1, Cycles: 4, Operator: Inc, Dst: C},
	{OpCode: 0x0d, Mnemonic: "DEC C", Bytes: 1, Cycles: 4, Operator: Dec, Dst: C},
	{OpCode: 0x0e, Mnemonic: "LD C,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: C, Src: N},
	{OpCode: 0x0f, Mnemonic: "RRCA", Bytes: 1, Cycles: 4, Operator: Rrca},
	{OpCode: 0x10, Mnemonic: "DJNZ e", Bytes: 2, Cycles: 8, CyclesTaken: 13, Operator: Djnz, Src: Rel},
	{OpCode: 0x11, Mnemonic: "LD DE,nn", Bytes: 3, Cycles: 10, Operator: Ld16, Dst: DE, Src: NN},
	{OpCode: 0x12, Mnemonic: "LD (DE),A", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndDE, Src: A},
	{OpCode: 0x13, Mnemonic: "INC DE", Bytes: 1, Cycles: 6, Operator: Inc16, Dst: DE},
	{OpCode: 0x14, Mnemonic: "INC D", Bytes: 1, Cycles: 4, Operator: Inc, Dst: D},
	{OpCode: 0x15, Mnemonic: "DEC D", Bytes: 1, Cycles: 4, Operator: Dec, Dst: D},
	{OpCode: 0x16, Mnemonic: "LD D,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: D, Src: N},
	{OpCode: 0x17, Mnemonic: "RLA", Bytes: 1, Cycles: 4, Operator: Rla},
	{OpCode: 0x18, Mnemonic: "JR e", Bytes: 2, Cycles: 12, Operator: Jr, Src: Rel},
	{OpCode: 0x19, Mnemonic: "ADD HL,DE", Bytes: 1, Cycles: 11, Operator: Add16, Dst: HL, Src: DE},
	{OpCode: 0x1a, Mnemonic: "LD A,(DE)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: A, Src: IndDE},
	{OpCode: 0x1b, Mnemonic: "DEC DE", Bytes: 1, Cycles: 6, Operator: Dec16, Dst: DE},
	{OpCode: 0x1c, Mnemonic: "INC E", Bytes: 1, Cycles: 4, Operator: Inc, Dst: E},
	{OpCode: 0x1d, Mnemonic: "DEC E", Bytes: 1, Cycles: 4, Operator: Dec, Dst: E},
	{OpCode: 0x1e, Mnemonic: "LD E,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: E, Src: N},
	{OpCode: 0x1f, Mnemonic: "RRA", Bytes: 1, Cycles: 4, Operator: Rra},
	{OpCode: 0x20, Mnemonic: "JR NZ,e", Bytes: 2, Cycles: 7, CyclesTaken: 12, Operator: Jr, Src: Rel, Cond: NotZero},
	{OpCode: 0x21, Mnemonic: "LD HL,nn", Bytes: 3, Cycles: 10, Operator: Ld16, Dst: HL, Src: NN},
	{OpCode: 0x22, Mnemonic: "LD (nn),HL", Bytes: 3, Cycles: 16, Operator: Ld16, Dst: IndNN, Src: HL},
	{OpCode: 0x23, Mnemonic: "INC HL", Bytes: 1, Cycles: 6, Operator: Inc16, Dst: HL},
	{OpCode: 0x24, Mnemonic: "INC H", Bytes: 1, Cycles: 4, Operator: Inc, Dst: H},
	{OpCode: 0x25, Mnemonic: "DEC H", Bytes: 1, Cycles: 4, Operator: Dec, Dst: H},
	{OpCode: 0x26, Mnemonic: "LD H,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: H, Src: N},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 4, Operator: Daa},
	{OpCode: 0x28, Mnemonic: "JR Z,e", Bytes: 2, Cycles: 7, CyclesTaken: 12, Operator: Jr, Src: Rel, Cond: Zero},
	{OpCode: 0x29, Mnemonic: "ADD HL,HL", Bytes: 1, Cycles: 11, Operator: Add16, Dst: HL, Src: HL},
	{OpCode: 0x2a, Mnemonic: "LD HL,(nn)", Bytes: 3, Cycles: 16, Operator: Ld16, Dst: HL, Src: IndNN},
	{OpCode: 0x2b, Mnemonic: "DEC HL", Bytes: 1, Cycles: 6, Operator: Dec16, Dst: HL},
	{OpCode: 0x2c, Mnemonic: "INC L", Bytes: 1, Cycles: 4, Operator: Inc, Dst: L},
	{OpCode: 0x2d, Mnemonic: "DEC L", Bytes: 1, Cycles: 4, Operator: Dec, Dst: L},
	{OpCode: 0x2e, Mnemonic: "LD L,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: L, Src: N},
	{OpCode: 0x2f, Mnemonic: "CPL", Bytes: 1, Cycles: 4, Operator: Cpl},
	{OpCode: 0x30, Mnemonic: "JR NC,e", Bytes: 2, Cycles: 7, CyclesTaken: 12, Operator: Jr, Src: Rel, Cond: NoCarry},
	{OpCode: 0x31, Mnemonic: "LD SP,nn", Bytes: 3, Cycles: 10, Operator: Ld16, Dst: SP, Src: NN},
	{OpCode: 0x32, Mnemonic: "LD (nn),A", Bytes: 3, Cycles: 13, Operator: Ld, Dst: IndNN, Src: A},
	{OpCode: 0x33, Mnemonic: "INC SP", Bytes: 1, Cycles: 6, Operator: Inc16, Dst: SP},
	{OpCode: 0x34, Mnemonic: "INC (HL)", Bytes: 1, Cycles: 11, Operator: Inc, Dst: IndHL},
	{OpCode: 0x35, Mnemonic: "DEC (HL)", Bytes: 1, Cycles: 11, Operator: Dec, Dst: IndHL},
	{OpCode: 0x36, Mnemonic: "LD (HL),n", Bytes: 2, Cycles: 10, Operator: Ld, Dst: IndHL, Src: N},
	{OpCode: 0x37, Mnemonic: "SCF", Bytes: 1, Cycles: 4, Operator: Scf},
	{OpCode: 0x38, Mnemonic: "JR C,e", Bytes: 2, Cycles: 7, CyclesTaken: 12, Operator: Jr, Src: Rel, Cond: Carry},
	{OpCode: 0x39, Mnemonic: "ADD HL,SP", Bytes: 1, Cycles: 11, Operator: Add16, Dst: HL, Src: SP},
	{OpCode: 0x3a, Mnemonic: "LD A,(nn)", Bytes: 3, Cycles: 13, Operator: Ld, Dst: A, Src: IndNN},
	{OpCode: 0x3b, Mnemonic: "DEC SP", Bytes: 1, Cycles: 6, Operator: Dec16, Dst: SP},
	{OpCode: 0x3c, Mnemonic: "INC A", Bytes: 1, Cycles: 4, Operator: Inc, Dst: A},
	{OpCode: 0x3d, Mnemonic: "DEC A", Bytes: 1, Cycles: 4, Operator: Dec, Dst: A},
	{OpCode: 0x3e, Mnemonic: "LD A,n", Bytes: 2, Cycles: 7, Operator: Ld, Dst: A, Src: N},
	{OpCode: 0x3f, Mnemonic: "CCF", Bytes: 1, Cycles: 4, Operator: Ccf},
	{OpCode: 0x40, Mnemonic: "LD B,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: B},
	{OpCode: 0x41, Mnemonic: "LD B,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: C},
	{OpCode: 0x42, Mnemonic: "LD B,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: D},
	{OpCode: 0x43, Mnemonic: "LD B,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: E},
	{OpCode: 0x44, Mnemonic: "LD B,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: H},
	{OpCode: 0x45, Mnemonic: "LD B,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: L},
	{OpCode: 0x46, Mnemonic: "LD B,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: B, Src: IndHL},
	{OpCode: 0x47, Mnemonic: "LD B,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: B, Src: A},
	{OpCode: 0x48, Mnemonic: "LD C,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: B},
	{OpCode: 0x49, Mnemonic: "LD C,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: C},
	{OpCode: 0x4a, Mnemonic: "LD C,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: D},
	{OpCode: 0x4b, Mnemonic: "LD C,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: E},
	{OpCode: 0x4c, Mnemonic: "LD C,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: H},
	{OpCode: 0x4d, Mnemonic: "LD C,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: L},
	{OpCode: 0x4e, Mnemonic: "LD C,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: C, Src: IndHL},
	{OpCode: 0x4f, Mnemonic: "LD C,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: C, Src: A},
	{OpCode: 0x50, Mnemonic: "LD D,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: B},
	{OpCode: 0x51, Mnemonic: "LD D,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: C},
	{OpCode: 0x52, Mnemonic: "LD D,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: D},
	{OpCode: 0x53, Mnemonic: "LD D,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: E},
	{OpCode: 0x54, Mnemonic: "LD D,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: H},
	{OpCode: 0x55, Mnemonic: "LD D,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: L},
	{OpCode: 0x56, Mnemonic: "LD D,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: D, Src: IndHL},
	{OpCode: 0x57, Mnemonic: "LD D,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: D, Src: A},
	{OpCode: 0x58, Mnemonic: "LD E,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: B},
	{OpCode: 0x59, Mnemonic: "LD E,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: C},
	{OpCode: 0x5a, Mnemonic: "LD E,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: D},
	{OpCode: 0x5b, Mnemonic: "LD E,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: E},
	{OpCode: 0x5c, Mnemonic: "LD E,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: H},
	{OpCode: 0x5d, Mnemonic: "LD E,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: L},
	{OpCode: 0x5e, Mnemonic: "LD E,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: E, Src: IndHL},
	{OpCode: 0x5f, Mnemonic: "LD E,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: E, Src: A},
	{OpCode: 0x60, Mnemonic: "LD H,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: B},
	{OpCode: 0x61, Mnemonic: "LD H,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: C},
	{OpCode: 0x62, Mnemonic: "LD H,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: D},
	{OpCode: 0x63, Mnemonic: "LD H,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: E},
	{OpCode: 0x64, Mnemonic: "LD H,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: H},
	{OpCode: 0x65, Mnemonic: "LD H,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: L},
	{OpCode: 0x66, Mnemonic: "LD H,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: H, Src: IndHL},
	{OpCode: 0x67, Mnemonic: "LD H,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: H, Src: A},
	{OpCode: 0x68, Mnemonic: "LD L,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: B},
	{OpCode: 0x69, Mnemonic: "LD L,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: C},
	{OpCode: 0x6a, Mnemonic: "LD L,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: D},
	{OpCode: 0x6b, Mnemonic: "LD L,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: E},
	{OpCode: 0x6c, Mnemonic: "LD L,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: H},
	{OpCode: 0x6d, Mnemonic: "LD L,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: L},
	{OpCode: 0x6e, Mnemonic: "LD L,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: L, Src: IndHL},
	{OpCode: 0x6f, Mnemonic: "LD L,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: L, Src: A},
	{OpCode: 0x70, Mnemonic: "LD (HL),B", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: B},
	{OpCode: 0x71, Mnemonic: "LD (HL),C", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: C},
	{OpCode: 0x72, Mnemonic: "LD (HL),D", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: D},
	{OpCode: 0x73, Mnemonic: "LD (HL),E", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: E},
	{OpCode: 0x74, Mnemonic: "LD (HL),H", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: H},
	{OpCode: 0x75, Mnemonic: "LD (HL),L", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: L},
	{OpCode: 0x76, Mnemonic: "HALT", Bytes: 1, Cycles: 4, Operator: Halt},
	{OpCode: 0x77, Mnemonic: "LD (HL),A", Bytes: 1, Cycles: 7, Operator: Ld, Dst: IndHL, Src: A},
	{OpCode: 0x78, Mnemonic: "LD A,B", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: B},
	{OpCode: 0x79, Mnemonic: "LD A,C", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: C},
	{OpCode: 0x7a, Mnemonic: "LD A,D", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: D},
	{OpCode: 0x7b, Mnemonic: "LD A,E", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: E},
	{OpCode: 0x7c, Mnemonic: "LD A,H", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: H},
	{OpCode: 0x7d, Mnemonic: "LD A,L", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: L},
	{OpCode: 0x7e, Mnemonic: "LD A,(HL)", Bytes: 1, Cycles: 7, Operator: Ld, Dst: A, Src: IndHL},
	{OpCode: 0x7f, Mnemonic: "LD A,A", Bytes: 1, Cycles: 4, Operator: Ld, Dst: A, Src: A},
	{OpCode: 0x80, Mnemonic: "ADD A,B", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: B},
	{OpCode: 0x81, Mnemonic: "ADD A,C", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: C},
	{OpCode: 0x82, Mnemonic: "ADD A,D", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: D},
	{OpCode: 0x83, Mnemonic: "ADD A,E", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: E},
	{OpCode: 0x84, Mnemonic: "ADD A,H", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: H},
	{OpCode: 0x85, Mnemonic: "ADD A,L", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: L},
	{OpCode: 0x86, Mnemonic: "ADD A,(HL)", Bytes: 1, Cycles: 7, Operator: Add, Dst: A, Src: IndHL},
	{OpCode: 0x87, Mnemonic: "ADD A,A", Bytes: 1, Cycles: 4, Operator: Add, Dst: A, Src: A},
	{OpCode: 0x88, Mnemonic: "ADC A,B", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: B},
	{OpCode: 0x89, Mnemonic: "ADC A,C", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: C},
	{OpCode: 0x8a, Mnemonic: "ADC A,D", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: D},
	{OpCode: 0x8b, Mnemonic: "ADC A,E", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: E},
	{OpCode: 0x8c, Mnemonic: "ADC A,H", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: H},
	{OpCode: 0x8d, Mnemonic: "ADC A,L", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: L},
	{OpCode: 0x8e, Mnemonic: "ADC A,(HL)", Bytes: 1, Cycles: 7, Operator: Adc, Dst: A, Src: IndHL},
	{OpCode: 0x8f, Mnemonic: "ADC A,A", Bytes: 1, Cycles: 4, Operator: Adc, Dst: A, Src: A},
	{OpCode: 0x90, Mnemonic: "SUB B", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: B},
	{OpCode: 0x91, Mnemonic: "SUB C", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: C},
	{OpCode: 0x92, Mnemonic: "SUB D", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: D},
	{OpCode: 0x93, Mnemonic: "SUB E", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: E},
	{OpCode: 0x94, Mnemonic: "SUB H", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: H},
	{OpCode: 0x95, Mnemonic: "SUB L", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: L},
	{OpCode: 0x96, Mnemonic: "SUB (HL)", Bytes: 1, Cycles: 7, Operator: Sub, Dst: A, Src: IndHL},
	{OpCode: 0x97, Mnemonic: "SUB A", Bytes: 1, Cycles: 4, Operator: Sub, Dst: A, Src: A},
	{OpCode: 0x98, Mnemonic: "SBC A,B", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: B},
	{OpCode: 0x99, Mnemonic: "SBC A,C", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: C},
	{OpCode: 0x9a, Mnemonic: "SBC A,D", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: D},
	{OpCode: 0x9b, Mnemonic: "SBC A,E", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: E},
	{OpCode: 0x9c, Mnemonic: "SBC A,H", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: H},
	{OpCode: 0x9d, Mnemonic: "SBC A,L", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: L},
	{OpCode: 0x9e, Mnemonic: "SBC A,(HL)", Bytes: 1, Cycles: 7, Operator: Sbc, Dst: A, Src: IndHL},
	{OpCode: 0x9f, Mnemonic: "SBC A,A", Bytes: 1, Cycles: 4, Operator: Sbc, Dst: A, Src: A},
	{OpCode: 0xa0, Mnemonic: "AND B", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: B},
	{OpCode: 0xa1, Mnemonic: "AND C", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: C},
	{OpCode: 0xa2, Mnemonic: "AND D", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: D},
	{OpCode: 0xa3, Mnemonic: "AND E", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: E},
	{OpCode: 0xa4, Mnemonic: "AND H", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: H},
	{OpCode: 0xa5, Mnemonic: "AND L", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: L},
	{OpCode: 0xa6, Mnemonic: "AND (HL)", Bytes: 1, Cycles: 7, Operator: And, Dst: A, Src: IndHL},
	{OpCode: 0xa7, Mnemonic: "AND A", Bytes: 1, Cycles: 4, Operator: And, Dst: A, Src: A},
	{OpCode: 0xa8, Mnemonic: "XOR B", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: B},
	{OpCode: 0xa9, Mnemonic: "XOR C", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: C},
	{OpCode: 0xaa, Mnemonic: "XOR D", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: D},
	{OpCode: 0xab, Mnemonic: "XOR E", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: E},
	{OpCode: 0xac, Mnemonic: "XOR H", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: H},
	{OpCode: 0xad, Mnemonic: "XOR L", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: L},
	{OpCode: 0xae, Mnemonic: "XOR (HL)", Bytes: 1, Cycles: 7, Operator: Xor, Dst: A, Src: IndHL},
	{OpCode: 0xaf, Mnemonic: "XOR A", Bytes: 1, Cycles: 4, Operator: Xor, Dst: A, Src: A},
	{OpCode: 0xb0, Mnemonic: "OR B", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: B},
	{OpCode: 0xb1, Mnemonic: "OR C", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: C},
	{OpCode: 0xb2, Mnemonic: "OR D", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: D},
	{OpCode: 0xb3, Mnemonic: "OR E", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: E},
	{OpCode: 0xb4, Mnemonic: "OR H", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: H},
	{OpCode: 0xb5, Mnemonic: "OR L", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: L},
	{OpCode: 0xb6, Mnemonic: "OR (HL)", Bytes: 1, Cycles: 7, Operator: Or, Dst: A, Src: IndHL},
	{OpCode: 0xb7, Mnemonic: "OR A", Bytes: 1, Cycles: 4, Operator: Or, Dst: A, Src: A},
	{OpCode: 0xb8, Mnemonic: "CP B", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: B},
	{OpCode: 0xb9, Mnemonic: "CP C", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: C},
	{OpCode: 0xba, Mnemonic: "CP D", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: D},
	{OpCode: 0xbb, Mnemonic: "CP E", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: E},
	{OpCode: 0xbc, Mnemonic: "CP H", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: H},
	{OpCode: 0xbd, Mnemonic: "CP L", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: L},
	{OpCode: 0xbe, Mnemonic: "CP (HL)", Bytes: 1, Cycles: 7, Operator: Cp, Dst: A, Src: IndHL},
	{OpCode: 0xbf, Mnemonic: "CP A", Bytes: 1, Cycles: 4, Operator: Cp, Dst: A, Src: A},
	{OpCode: 0xc0, Mnemonic: "RET NZ", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: NotZero},
	{OpCode: 0xc1, Mnemonic: "POP BC", Bytes: 1, Cycles: 10, Operator: Pop, Dst: BC},
	{OpCode: 0xc2, Mnemonic: "JP NZ,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: NotZero},
	{OpCode: 0xc3, Mnemonic: "JP nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN},
	{OpCode: 0xc4, Mnemonic: "CALL NZ,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: NotZero},
	{OpCode: 0xc5, Mnemonic: "PUSH BC", Bytes: 1, Cycles: 11, Operator: Push, Src: BC},
	{OpCode: 0xc6, Mnemonic: "ADD A,n", Bytes: 2, Cycles: 7, Operator: Add, Dst: A, Src: N},
	{OpCode: 0xc7, Mnemonic: "RST 00h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0},
	{OpCode: 0xc8, Mnemonic: "RET Z", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: Zero},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 10, Operator: Ret},
	{OpCode: 0xca, Mnemonic: "JP Z,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: Zero},
	{OpCode: 0xcc, Mnemonic: "CALL Z,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: Zero},
	{OpCode: 0xcd, Mnemonic: "CALL nn", Bytes: 3, Cycles: 17, Operator: Call, Src: NN},
	{OpCode: 0xce, Mnemonic: "ADC A,n", Bytes: 2, Cycles: 7, Operator: Adc, Dst: A, Src: N},
	{OpCode: 0xcf, Mnemonic: "RST 08h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 8},
	{OpCode: 0xd0, Mnemonic: "RET NC", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: NoCarry},
	{OpCode: 0xd1, Mnemonic: "POP DE", Bytes: 1, Cycles: 10, Operator: Pop, Dst: DE},
	{OpCode: 0xd2, Mnemonic: "JP NC,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: NoCarry},
	{OpCode: 0xd3, Mnemonic: "OUT (n),A", Bytes: 2, Cycles: 11, Operator: Out, Dst: PortN, Src: A},
	{OpCode: 0xd4, Mnemonic: "CALL NC,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: NoCarry},
	{OpCode: 0xd5, Mnemonic: "PUSH DE", Bytes: 1, Cycles: 11, Operator: Push, Src: DE},
	{OpCode: 0xd6, Mnemonic: "SUB n", Bytes: 2, Cycles: 7, Operator: Sub, Dst: A, Src: N},
	{OpCode: 0xd7, Mnemonic: "RST 10h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x10},
	{OpCode: 0xd8, Mnemonic: "RET C", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: Carry},
	{OpCode: 0xd9, Mnemonic: "EXX", Bytes: 1, Cycles: 4, Operator: Exx},
	{OpCode: 0xda, Mnemonic: "JP C,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: Carry},
	{OpCode: 0xdb, Mnemonic: "IN A,(n)", Bytes: 2, Cycles: 11, Operator: In, Dst: A, Src: PortN},
	{OpCode: 0xdc, Mnemonic: "CALL C,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: Carry},
	{OpCode: 0xde, Mnemonic: "SBC A,n", Bytes: 2, Cycles: 7, Operator: Sbc, Dst: A, Src: N},
	{OpCode: 0xdf, Mnemonic: "RST 18h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x18},
	{OpCode: 0xe0, Mnemonic: "RET PO", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: ParityOdd},
	{OpCode: 0xe1, Mnemonic: "POP HL", Bytes: 1, Cycles: 10, Operator: Pop, Dst: HL},
	{OpCode: 0xe2, Mnemonic: "JP PO,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: ParityOdd},
	{OpCode: 0xe3, Mnemonic: "EX (SP),HL", Bytes: 1, Cycles: 19, Operator: ExSP, Dst: IndSP, Src: HL},
	{OpCode: 0xe4, Mnemonic: "CALL PO,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: ParityOdd},
	{OpCode: 0xe5, Mnemonic: "PUSH HL", Bytes: 1, Cycles: 11, Operator: Push, Src: HL},
	{OpCode: 0xe6, Mnemonic: "AND n", Bytes: 2, Cycles: 7, Operator: And, Dst: A, Src: N},
	{OpCode: 0xe7, Mnemonic: "RST 20h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x20},
	{OpCode: 0xe8, Mnemonic: "RET PE", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: ParityEven},
	{OpCode: 0xe9, Mnemonic: "JP (HL)", Bytes: 1, Cycles: 4, Operator: Jp, Src: HL},
	{OpCode: 0xea, Mnemonic: "JP PE,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: ParityEven},
	{OpCode: 0xeb, Mnemonic: "EX DE,HL", Bytes: 1, Cycles: 4, Operator: Ex, Dst: DE, Src: HL},
	{OpCode: 0xec, Mnemonic: "CALL PE,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: ParityEven},
	{OpCode: 0xee, Mnemonic: "XOR n", Bytes: 2, Cycles: 7, Operator: Xor, Dst: A, Src: N},
	{OpCode: 0xef, Mnemonic: "RST 28h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x28},
	{OpCode: 0xf0, Mnemonic: "RET P", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: Positive},
	{OpCode: 0xf1, Mnemonic: "POP AF", Bytes: 1, Cycles: 10, Operator: Pop, Dst: AF},
	{OpCode: 0xf2, Mnemonic: "JP P,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: Positive},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 4, Operator: Di},
	{OpCode: 0xf4, Mnemonic: "CALL P,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: Positive},
	{OpCode: 0xf5, Mnemonic: "PUSH AF", Bytes: 1, Cycles: 11, Operator: Push, Src: AF},
	{OpCode: 0xf6, Mnemonic: "OR n", Bytes: 2, Cycles: 7, Operator: Or, Dst: A, Src: N},
	{OpCode: 0xf7, Mnemonic: "RST 30h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x30},
	{OpCode: 0xf8, Mnemonic: "RET M", Bytes: 1, Cycles: 5, CyclesTaken: 11, Operator: Ret, Cond: Minus},
	{OpCode: 0xf9, Mnemonic: "LD SP,HL", Bytes: 1, Cycles: 6, Operator: Ld16, Dst: SP, Src: HL},
	{OpCode: 0xfa, Mnemonic: "JP M,nn", Bytes: 3, Cycles: 10, Operator: Jp, Src: NN, Cond: Minus},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 4, Operator: Ei},
	{OpCode: 0xfc, Mnemonic: "CALL M,nn", Bytes: 3, Cycles: 10, CyclesTaken: 17, Operator: Call, Src: NN, Cond: Minus},
	{OpCode: 0xfe, Mnemonic: "CP n", Bytes: 2, Cycles: 7, Operator: Cp, Dst: A, Src: N},
	{OpCode: 0xff, Mnemonic: "RST 38h", Bytes: 1, Cycles: 11, Operator: Rst, Param: 0x38},
}
