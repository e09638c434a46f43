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

// Package prefs facilitates the storage of preferential values in the
// ZX-Spectrum-Emu system. It is used by the hardware/preferences package and
// by the front ends.
//
// Preference values are of type Bool, String or Int. Each type can have a pre
// and post hook. These are called just before and just after the stored
// value is changed. A pre hook that returns an error prevents the change.
//
// A Disk collects preference values under unique keys and saves and loads
// them to a preferences file. The file is a list of key/value pairs, one to a
// line, in the following format
//
//	key :: value
//
// Values for many keys can be stored in the same file. When saving a Disk,
// the values for any keys not in that Disk are preserved.
//
// A group of values can also be supplied on the command line. The
// PushCommandLineStack() function accepts a string of key/value pairs
// separated by semi-colons. Values on the top of the stack override the values
// in the preferences file when a Disk is loaded.
//
//	prefs.PushCommandLineStack("hardware.interrupt::nmi; hardware.flashperiod::8")
package prefs
