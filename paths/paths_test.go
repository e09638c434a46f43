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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OhhJordy/ZX-Spectrum-Emu/paths"
	"github.com/OhhJordy/ZX-Spectrum-Emu/test"
)

func TestPaths(t *testing.T) {
	cwd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(cwd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".zxspectrum", "foo", "bar", "baz"))

	// the directory is created but the file is not
	_, err = os.Stat(filepath.Join(".zxspectrum", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".zxspectrum", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".zxspectrum")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("beeper", "manic")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "beeper_manic_"))

	fn = paths.UniqueFilename("beeper", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "beeper_2"))
}
