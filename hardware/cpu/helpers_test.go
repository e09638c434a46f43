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

package cpu_test

import (
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/cpu/execution"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

type mockPorts struct {
	in      map[uint16]uint8
	lastOut uint16
	data    uint8
}

func newMockPorts() *mockPorts {
	return &mockPorts{in: make(map[uint16]uint8)}
}

func (p *mockPorts) In(port uint16) uint8 {
	if v, ok := p.in[port]; ok {
		return v
	}
	return 0xff
}

func (p *mockPorts) Out(port uint16, data uint8) {
	p.lastOut = port
	p.data = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem, *mockPorts) {
	t.Helper()
	mem := newMockMem()
	ports := newMockPorts()
	mc, err := cpu.NewCPU(logger.Allow, mem, ports)
	test.DemandSuccess(t, err)
	return mc, mem, ports
}

// step executes one instruction and checks that the result is consistent
// with the instruction definition.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}
