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

// Package paths contains functions to prepare paths to ZX-Spectrum-Emu
// resources.
//
// The ResourcePath() function prepends the supplied resource path with the
// base resource directory. For example, the following will return the path to
// the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".zxspectrum" in the current working
// directory. For builds with the "release" build tag the base path is
// "zxspectrum" in the user's configuration directory, as reported by
// os.UserConfigDir(). On a modern Linux system that would be:
//
//	/home/user/.config/zxspectrum/preferences
//
// Directories are created as required. Files are never created.
package paths
