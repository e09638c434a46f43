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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// Write the entries to io.Writer.
func Write(output io.Writer, attr WriteAttr, entries []Entry) error {
	for _, e := range entries {
		var err error
		if attr.ByteCode {
			_, err = fmt.Fprintln(output, e.String())
		} else {
			_, err = fmt.Fprintf(output, "%#04x %s\n", e.Address, e.Mnemonic())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
