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
	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Interrupt != NoInterrupt {
		if r.Defn != nil {
			return curated.Errorf("cpu: interrupt result has an instruction definition")
		}
		if r.Cycles == 0 {
			return curated.Errorf("cpu: interrupt result has no cycles")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: result has no instruction definition")
	}

	if r.Halted {
		if r.ByteCount != 0 {
			return curated.Errorf("cpu: halted cpu read %d bytes", r.ByteCount)
		}
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for halted cpu (%d instead of %d)", r.Cycles, r.Defn.Cycles)
		}
		return nil
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes+r.IgnoredPrefixes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes+r.IgnoredPrefixes)
	}

	// cycle count
	expected := r.Defn.Cycles
	if r.Taken && r.Defn.IsConditional() {
		expected = r.Defn.CyclesTaken
	}
	expected += r.IgnoredPrefixes * 4

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %s%02x [%s] (%d instead of %d)",
			r.Defn.Prefix, r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, expected)
	}

	return nil
}
