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

package curated_test

import (
	"errors"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

const testPattern = "test: value %d"
const wrapPattern = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))
	test.ExpectEquality(t, e.Error(), "test: value 10")

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	p := errors.New("plain")
	g := curated.Errorf(wrapPattern, p)
	test.ExpectSuccess(t, errors.Is(g, p))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: halted"))
	test.ExpectEquality(t, e.Error(), "cpu: halted")

	e = curated.Errorf("spectrum: %v", curated.Errorf("cpu: halted"))
	test.ExpectEquality(t, e.Error(), "spectrum: cpu: halted")
}
