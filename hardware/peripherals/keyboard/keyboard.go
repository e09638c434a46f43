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

package keyboard

import (
	"strings"
	"sync"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
)

// Key identifies a key in the keyboard matrix. The half-row of the key is
// Key/5 and the bit in the half-row is Key%5.
type Key int

// List of valid Key values in matrix order.
const (
	CapsShift Key = iota
	Z
	X
	C
	V

	A
	S
	D
	F
	G

	Q
	W
	E
	R
	T

	One
	Two
	Three
	Four
	Five

	Zero
	Nine
	Eight
	Seven
	Six

	P
	O
	I
	U
	Y

	Enter
	L
	K
	J
	H

	Space
	SymbolShift
	M
	N
	B

	numKeys
)

// the number of half-rows and the number of keys in each half-row
const (
	HalfRows   = 8
	RowKeys    = 5
	rowKeyMask = 0x1f
)

var keyNames = [numKeys]string{
	"CAPS SHIFT", "Z", "X", "C", "V",
	"A", "S", "D", "F", "G",
	"Q", "W", "E", "R", "T",
	"1", "2", "3", "4", "5",
	"0", "9", "8", "7", "6",
	"P", "O", "I", "U", "Y",
	"ENTER", "L", "K", "J", "H",
	"SPACE", "SYMBOL SHIFT", "M", "N", "B",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown key"
	}
	return keyNames[k]
}

// Row returns the half-row and the bit in the half-row for the key.
func (k Key) Row() (int, int) {
	return int(k) / RowKeys, int(k) % RowKeys
}

// KeyByName returns the Key with the name. Names are not case sensitive.
func KeyByName(name string) (Key, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, curated.Errorf("keyboard: unknown key (%s)", name)
}

// Keyboard is the state of the keyboard matrix. It is safe to change the state
// of the keyboard from a goroutine other than the one reading it.
type Keyboard struct {
	crit sync.Mutex

	// one bit for each key in the half-row. a set bit indicates that the key
	// is pressed
	rows [HalfRows]uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Reset releases all keys.
func (kb *Keyboard) Reset() {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.rows = [HalfRows]uint8{}
}

// HandleEvent changes the state of the key. A value of true indicates the key
// is pressed.
func (kb *Keyboard) HandleEvent(k Key, down bool) error {
	if k < 0 || k >= numKeys {
		return curated.Errorf("keyboard: unknown key (%d)", int(k))
	}

	row, bit := k.Row()

	kb.crit.Lock()
	defer kb.crit.Unlock()

	if down {
		kb.rows[row] |= 1 << bit
	} else {
		kb.rows[row] &^= 1 << bit
	}

	return nil
}

// IsPressed returns true if the key is pressed.
func (kb *Keyboard) IsPressed(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}

	row, bit := k.Row()

	kb.crit.Lock()
	defer kb.crit.Unlock()

	return kb.rows[row]&(1<<bit) != 0
}

// Read returns the state of the half-rows selected by the zero bits of the
// address byte. The result is in the low five bits of the return value, with
// pressed keys reading as zero. The upper three bits are always set.
func (kb *Keyboard) Read(address uint8) uint8 {
	kb.crit.Lock()
	defer kb.crit.Unlock()

	var pressed uint8
	for row := 0; row < HalfRows; row++ {
		if address&(1<<row) == 0 {
			pressed |= kb.rows[row]
		}
	}

	return ^pressed&rowKeyMask | ^uint8(rowKeyMask)
}
