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

// Package test contains helper functions that remove common boilerplate from
// test functions.
//
// The Expect*() functions record a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions stop the test with t.Fatalf(). Use the
// Demand functions when later parts of the test rely on the value being
// correct, for example when checking the length of a slice before indexing it.
//
// Success and failure are interpreted according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// All functions take an optional list of tags which are prefixed to the
// failure message. This is useful when tests are run in a loop.
package test
