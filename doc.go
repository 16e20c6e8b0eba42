// seehuhn.de/go/pagesetup - a library for page setup and printer validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pagesetup models the geometry of printable pages.
//
// All dimensions are stored in printer's points (1/72 inch).  The [Unit]
// type converts between points and the units a user enters dimensions in,
// rounding converted values to a fixed number of decimals per unit.
//
// A [PageFormat] combines a paper size, an orientation and the four page
// margins.  Sizes and margins always refer to the page as the user sees it
// while editing; [PageFormat.PaperSize] and [PageFormat.ImageableBox]
// apply the orientation to obtain the physical sheet dimensions and the
// printable area on it.
//
// The subpackages build on these types:
//
//   - paper holds a catalog of named paper sizes (Letter, ISO A4, ...).
//   - printer checks page formats against the capabilities of a printer.
//
// The package performs no I/O and is safe for concurrent use.
package pagesetup
