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

package preferences

import (
	"path/filepath"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/prefs"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Interrupt.String(), InterruptMaskable)
	test.ExpectEquality(t, p.NMI(), false)
	test.ExpectEquality(t, p.InterruptVector.Get().(int), 0xff)
	test.ExpectEquality(t, p.IM0Instruction.Get().(int), NoDeviceInstruction)
	test.ExpectEquality(t, p.FrameCycles.Get().(int), 69888)
	test.ExpectEquality(t, p.FlashPeriod.Get().(int), 16)
}

func TestValidation(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Interrupt.Set("firq"))
	test.ExpectSuccess(t, p.Interrupt.Set("NMI"))
	test.ExpectEquality(t, p.NMI(), true)

	test.ExpectFailure(t, p.InterruptVector.Set(0x100))
	test.ExpectFailure(t, p.IM0Instruction.Set(0x00))
	test.ExpectSuccess(t, p.IM0Instruction.Set(0xff))
	test.ExpectFailure(t, p.FrameCycles.Set(0))
	test.ExpectFailure(t, p.FlashPeriod.Set(-1))
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	prefs.PushCommandLineStack("hardware.interrupt::nmi; hardware.flashperiod::8")
	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.NMI(), true)
	test.ExpectEquality(t, p.FlashPeriod.Get().(int), 8)

	// values survive a save and reload
	test.DemandSuccess(t, p.Save())
	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.NMI(), true)
	test.ExpectEquality(t, q.FlashPeriod.Get().(int), 8)
}
