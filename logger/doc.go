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

// Package logger is the central log for the emulator. Entries are tagged
// with the name of the part of the program that made them and are kept in a
// ring of fixed length.
//
// Every call to Log() or Logf() is accompanied by a Permission. This allows
// instances of the emulation that are not seen by the user (tests for
// example) to avoid cluttering the log. Use logger.Allow when an entry
// should always be made.
//
// Repeated entries are collapsed into a single entry with a repeat count.
package logger
