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

package paper

import "seehuhn.de/go/pagesetup"

const (
	in = pagesetup.Inch
	mm = pagesetup.Millimeter
)

// builtinEntries returns the pre-defined paper sizes, grouped by category.
func builtinEntries() []Entry {
	var res []Entry
	add := func(category, name string, width, height float64, u pagesetup.Unit) {
		res = append(res, newEntry(category, name, width, height, u))
	}

	// US and Canada sizes
	add("US/ANSI", "Letter (ANSI A)", 8.5, 11, in)
	add("US/ANSI", "Legal", 8.5, 14, in)
	add("US/ANSI", "Tabloid/Ledger (ANSI B)", 11, 17, in)
	add("US/ANSI", "Executive", 7.25, 10.55, in)
	add("US/ANSI", "Government Letter", 8.5, 10.5, in)
	add("US/ANSI", "Government Legal (Oficio/Folio)", 8.5, 13, in)
	add("US/ANSI", "ANSI C", 17, 22, in)
	add("US/ANSI", "ANSI D", 22, 34, in)
	add("US/ANSI", "ANSI E", 34, 44, in)
	add("US/ANSI", "Half Letter (Statement/Stationery)", 5.5, 8.5, in)
	add("US/ANSI", "Junior Legal", 5, 6, in)

	add("US Envelope (Commercial)", "6-1/4", 6, 3.5, in)
	add("US Envelope (Commercial)", "6-3/4", 6.5, 3.625, in)
	add("US Envelope (Commercial)", "7", 6.75, 3.75, in)
	add("US Envelope (Commercial)", "7-3/4 (Monarch)", 7.5, 3.875, in)
	add("US Envelope (Commercial)", "8-5/8", 8.625, 3.625, in)
	add("US Envelope (Commercial)", "9", 8.875, 3.875, in)
	add("US Envelope (Commercial)", "10 (Common)", 9.5, 4.125, in)
	add("US Envelope (Commercial)", "11", 10.375, 4.5, in)
	add("US Envelope (Commercial)", "12", 11, 4.75, in)
	add("US Envelope (Commercial)", "14", 11.5, 5, in)
	add("US Envelope (Commercial)", "16", 12, 6, in)

	add("US Envelope (Announcement)", "A1", 3.625, 5.125, in)
	add("US Envelope (Announcement)", "A2 (Lady Grey)", 5.75, 4.375, in)
	add("US Envelope (Announcement)", "A4", 6.25, 4.25, in)
	add("US Envelope (Announcement)", "A6 (Thompson's Standard)", 6.5, 4.75, in)
	add("US Envelope (Announcement)", "A7 (Besselheim)", 7.25, 5.25, in)
	add("US Envelope (Announcement)", "A8 (Carr's)", 8.125, 5.5, in)
	add("US Envelope (Announcement)", "A9 (Diplomat)", 8.75, 5.75, in)
	add("US Envelope (Announcement)", "A10 (Willow)", 9.5, 6, in)
	add("US Envelope (Announcement)", "A Long", 8.875, 3.875, in)

	add("US Envelope (Catalog)", "1", 9, 6, in)
	add("US Envelope (Catalog)", "1-3/4", 9.5, 6.5, in)
	add("US Envelope (Catalog)", "3", 10, 7, in)
	add("US Envelope (Catalog)", "6", 10.5, 7.5, in)
	add("US Envelope (Catalog)", "8", 11.25, 8.25, in)
	add("US Envelope (Catalog)", "9-3/4", 11.25, 8.75, in)
	add("US Envelope (Catalog)", "10-1/2", 12, 9, in)
	add("US Envelope (Catalog)", "12-1/2", 12.5, 9.5, in)
	add("US Envelope (Catalog)", "13-1/2", 13, 10, in)
	add("US Envelope (Catalog)", "14-1/2", 14.5, 11.5, in)
	add("US Envelope (Catalog)", "15", 15, 10, in)
	add("US Envelope (Catalog)", "15-1/2", 15.5, 12, in)

	add("US Architectural", "Arch A", 9, 12, in)
	add("US Architectural", "Arch B", 12, 18, in)
	add("US Architectural", "Arch C", 18, 24, in)
	add("US Architectural", "Arch D", 24, 36, in)
	add("US Architectural", "Arch E", 36, 48, in)
	add("US Architectural", "Arch E1", 30, 42, in)

	res = append(res, isoEntries()...)

	add("Card", "3x5 Index", 3, 5, in)
	add("Card", "4x6 Index", 4, 6, in)
	add("Card", "5x8 Index", 5, 8, in)
	add("Card", "International Business", 53.98, 85.6, mm)
	add("Card", "US Business", 2, 3.5, in)
	add("Card", "Japanese Business", 50, 90, mm)

	add("Photo", "3x5", 3, 5, in)
	add("Photo", "4x6", 4, 6, in)
	add("Photo", "5x7", 5, 7, in)
	add("Photo", "6x8", 6, 8, in)
	add("Photo", "8x10", 8, 10, in)
	add("Photo", "8x12", 8, 12, in)
	add("Photo", "11x14", 11, 14, in)

	add("Other", "ISO DL Envelope", 220, 110, mm)
	add("Other", "JIS B4", 257, 364, mm)
	add("Other", "JIS B5", 182, 257, mm)
	add("Other", "F4", 210, 330, mm)

	return res
}
