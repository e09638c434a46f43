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

// Package curated wraps the plain Go error type with a "pattern" that
// identifies where an error came from. Errors are created with Errorf(), in
// the same way as the fmt package function of the same name, except that the
// pattern string is kept and can later be tested for with Is() and Has().
//
//	e := curated.Errorf("memory: image size mismatch (%d bytes)", n)
//
//	if curated.Is(e, "memory: image size mismatch (%d bytes)") {
//		...
//	}
//
// Packages should declare the patterns they return as exported constants so
// that callers do not need to repeat the pattern text.
//
// Has() searches the chain of wrapped curated errors for the pattern. A
// sentence like "spectrum: cpu: unimplemented opcode" is thought of as a chain
// of parts separated by ": ". When the same part appears twice in succession
// the Error() function removes the repeat, so it is always safe to wrap an
// error with a prefix that the wrapped error may already carry.
//
// Curated errors also implement Unwrap() so that the standard errors package
// functions can see through them to any wrapped error value.
package curated
