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

package ports

import (
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware/memory/cpubus"
)

// Device is a peripheral attached to the port space.
type Device interface {
	Label() string

	// Decodes returns true if the device responds to the port address
	Decodes(port uint16) bool

	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// FloatingBus is the value of a port read when no device responds.
const FloatingBus = uint8(0xff)

// Ports implements the cpubus.Ports interface.
type Ports struct {
	devices []Device
}

// sanity check that Ports implements the cpubus.Ports interface
var _ cpubus.Ports = (*Ports)(nil)

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{
		devices: make([]Device, 0),
	}
}

// Attach a device to the port space.
func (p *Ports) Attach(dev Device) {
	p.devices = append(p.devices, dev)
}

// Devices returns the labels of the attached devices in the order they were
// attached.
func (p *Ports) Devices() []string {
	l := make([]string, len(p.devices))
	for i, d := range p.devices {
		l[i] = d.Label()
	}
	return l
}

// In implements the cpubus.Ports interface.
func (p *Ports) In(port uint16) uint8 {
	v := FloatingBus
	for _, d := range p.devices {
		if d.Decodes(port) {
			v &= d.In(port)
		}
	}
	return v
}

// Out implements the cpubus.Ports interface. Every device that decodes the
// address receives the data.
func (p *Ports) Out(port uint16, data uint8) {
	for _, d := range p.devices {
		if d.Decodes(port) {
			d.Out(port, data)
		}
	}
}
