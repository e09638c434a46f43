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

package registers_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/registers"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, r.IsNegative())
	test.ExpectEquality(t, r.Label(), "test")

	r.Load(0x80)
	test.ExpectSuccess(t, r.IsNegative())
	test.ExpectEquality(t, r.String(), "80")

	w := registers.NewWord(0xfffe, "SP")
	w.Add(3)
	test.ExpectEquality(t, w.Value(), uint16(0x0001))
	w.Add(-2)
	test.ExpectEquality(t, w.Value(), uint16(0xffff))
}

func TestPairAliasing(t *testing.T) {
	rf := registers.NewFile()

	rf.Set16(registers.RegBC, 0x1234)
	test.ExpectEquality(t, rf.B.Value(), uint8(0x12))
	test.ExpectEquality(t, rf.C.Value(), uint8(0x34))

	rf.E.Load(0xcd)
	rf.D.Load(0xab)
	test.ExpectEquality(t, rf.DE(), uint16(0xabcd))

	rf.Set8(registers.RegL, 0x01)
	rf.Set8(registers.RegH, 0x80)
	test.ExpectEquality(t, rf.Get16(registers.RegHL), uint16(0x8001))

	rf.Set16(registers.RegIY, 0x5b00)
	test.ExpectEquality(t, rf.Get8(registers.RegIYH), uint8(0x5b))
	test.ExpectEquality(t, rf.Get8(registers.RegIYL), uint8(0x00))

	rf.Set16(registers.RegAF, 0x42ff)
	test.ExpectEquality(t, rf.A.Value(), uint8(0x42))
	test.ExpectEquality(t, rf.F.Value(), uint8(0xff))
	test.ExpectEquality(t, rf.F.String(), "SZ5H3PNC")
}

func TestFlags(t *testing.T) {
	rf := registers.NewFile()
	test.ExpectEquality(t, rf.F.String(), "sz-h-pnc")

	rf.SetFlag(registers.FlagZ, true)
	rf.SetFlag(registers.FlagPV, true)
	test.ExpectEquality(t, rf.F.String(), "sZ-h-Pnc")
	test.ExpectSuccess(t, rf.F.Zero)
	test.ExpectSuccess(t, rf.Flag(registers.FlagPV))
	test.ExpectFailure(t, rf.Flag(registers.FlagC))

	rf.SetFlag(registers.FlagZ, false)
	test.ExpectEquality(t, rf.F.Value(), uint8(registers.FlagPV))
}

func TestReset(t *testing.T) {
	rf := registers.NewFile()
	rf.Set16(registers.RegHL, 0xffff)
	rf.PC.Load(0x1000)
	rf.I.Load(0x3f)
	rf.Reset()

	test.ExpectEquality(t, rf.HL(), uint16(0))
	test.ExpectEquality(t, rf.PC.Value(), uint16(0))
	test.ExpectEquality(t, rf.I.Value(), uint8(0))
	test.ExpectEquality(t, rf.SP.Value(), uint16(registers.ResetSP))
}

func TestExchange(t *testing.T) {
	rf := registers.NewFile()
	rf.Set16(registers.RegAF, 0x1122)
	rf.Set16(registers.RegBC, 0x3344)
	rf.Set16(registers.RegDE, 0x5566)
	rf.Set16(registers.RegHL, 0x7788)

	rf.ExchangeAF()
	rf.Exchange()
	test.ExpectEquality(t, rf.AF(), uint16(0))
	test.ExpectEquality(t, rf.BC(), uint16(0))
	test.ExpectEquality(t, rf.AltAF.Value(), uint16(0x1122))
	test.ExpectEquality(t, rf.AltHL.Value(), uint16(0x7788))

	rf.ExchangeAF()
	rf.Exchange()
	test.ExpectEquality(t, rf.AF(), uint16(0x1122))
	test.ExpectEquality(t, rf.DE(), uint16(0x5566))
}

func TestRefresh(t *testing.T) {
	rf := registers.NewFile()
	rf.R.Load(0xff)
	rf.IncrementR()
	test.ExpectEquality(t, rf.R.Value(), uint8(0x80))

	rf.R.Load(0x7f)
	rf.IncrementR()
	test.ExpectEquality(t, rf.R.Value(), uint8(0x00))
}
