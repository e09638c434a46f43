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
	"strings"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/clocks"
	"github.com/OhhJordy/ZX-Spectrum-Emu/paths"
	"github.com/OhhJordy/ZX-Spectrum-Emu/prefs"
)

// The kinds of interrupt that can be raised at the end of each frame.
const (
	InterruptMaskable = "maskable"
	InterruptNMI      = "nmi"
)

// NoDeviceInstruction is the value of IM0Instruction when no device supplies
// an instruction during a mode 0 interrupt.
const NoDeviceInstruction = -1

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the kind of interrupt raised at the end of every frame. either
	// InterruptMaskable or InterruptNMI
	Interrupt prefs.String

	// the value on the data bus when a maskable interrupt is accepted in
	// interrupt mode 2
	InterruptVector prefs.Int

	// the instruction supplied by the interrupting device in interrupt mode 0.
	// only RST instructions are allowed
	IM0Instruction prefs.Int

	// the number of cycles in a single frame
	FrameCycles prefs.Int

	// the number of frames between changes of the flash phase
	FlashPeriod prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Interrupt.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case InterruptMaskable, InterruptNMI:
			return nil
		}
		return curated.Errorf("preferences: unknown interrupt kind (%s)", v)
	})

	p.InterruptVector.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 0xff {
			return curated.Errorf("preferences: interrupt vector out of range (%d)", v)
		}
		return nil
	})

	p.IM0Instruction.SetHookPre(func(v prefs.Value) error {
		i := v.(int)
		if i == NoDeviceInstruction {
			return nil
		}
		if i < 0 || i > 0xff || i&0xc7 != 0xc7 {
			return curated.Errorf("preferences: mode 0 instruction must be RST (%#02x)", i)
		}
		return nil
	})

	p.FrameCycles.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: frame cycles must be positive (%d)", v)
		}
		return nil
	})

	p.FlashPeriod.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: flash period must be positive (%d)", v)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.interrupt", &p.Interrupt)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.interruptvector", &p.InterruptVector)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.im0instruction", &p.IM0Instruction)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.framecycles", &p.FrameCycles)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.flashperiod", &p.FlashPeriod)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	// default values are always valid
	_ = p.Interrupt.Set(InterruptMaskable)
	_ = p.InterruptVector.Set(0xff)
	_ = p.IM0Instruction.Set(NoDeviceInstruction)
	_ = p.FrameCycles.Set(clocks.FrameCycles)
	_ = p.FlashPeriod.Set(clocks.FlashPeriod)
}

// NMI returns true if the frame interrupt is the non-maskable interrupt.
func (p *Preferences) NMI() bool {
	return strings.ToLower(p.Interrupt.String()) == InterruptNMI
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
