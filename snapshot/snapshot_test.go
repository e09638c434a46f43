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

package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/OhhJordy/ZX-Spectrum-Emu/snapshot"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

// sna creates the data for a snapshot with the stack pointer at 0x8000. the
// PC on the stack is 0x1234.
func sna() []uint8 {
	data := make([]uint8, snapshot.FileSize)
	data[0] = 0x3f         // I
	data[9] = 0x34         // HL
	data[10] = 0x12        // HL
	data[19] = 0x04        // IFF2
	data[21] = 0x44        // F
	data[22] = 0x55        // A
	data[23] = 0x00        // SP
	data[24] = 0x80        // SP
	data[25] = 0x01        // IM
	data[26] = 0x02        // border
	data[27+0x4000] = 0x34 // (SP)
	data[27+0x4001] = 0x12 // (SP+1)
	return data
}

func TestParse(t *testing.T) {
	s, err := snapshot.Parse(sna())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.I, uint8(0x3f))
	test.ExpectEquality(t, s.HL, uint16(0x1234))
	test.ExpectEquality(t, s.AF, uint16(0x5544))
	test.ExpectEquality(t, s.SP, uint16(0x8000))
	test.ExpectEquality(t, s.IFF2, true)
	test.ExpectEquality(t, s.IM, uint8(1))
	test.ExpectEquality(t, s.Border, uint8(2))

	_, err = snapshot.Parse(make([]uint8, snapshot.FileSize-1))
	test.ExpectSuccess(t, curated.Is(err, snapshot.BadSnapshot))

	d := sna()
	d[25] = 3
	_, err = snapshot.Parse(d)
	test.ExpectFailure(t, err)
}

func TestRestore(t *testing.T) {
	mem := memory.NewMemory()
	mc, err := cpu.NewCPU(logger.Allow, mem, nil)
	test.DemandSuccess(t, err)

	s, err := snapshot.Read(bytes.NewReader(sna()))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Restore(mc, mem))

	test.ExpectEquality(t, mc.Regs.PC.Value(), uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.SP.Value(), uint16(0x8002))
	test.ExpectEquality(t, mc.Regs.HL(), uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.A.Value(), uint8(0x55))
	test.ExpectEquality(t, mc.Regs.F.Value(), uint8(0x44))
	test.ExpectEquality(t, mc.IFF1, true)
	test.ExpectEquality(t, mc.IM, uint8(1))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x34))

	// capturing the restored state produces the same file
	c, err := snapshot.Capture(mc, mem, s.Border)
	test.DemandSuccess(t, err)
	b := &bytes.Buffer{}
	test.DemandSuccess(t, c.Write(b))
	test.ExpectSuccess(t, bytes.Equal(b.Bytes(), sna()))
}
