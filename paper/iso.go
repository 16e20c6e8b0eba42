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

import (
	"math"
	"strconv"
)

// Base lengths of the ISO 216 series in millimeters, see
// https://en.wikipedia.org/wiki/Paper_size#Overview:_ISO_paper_sizes .
var (
	thetaA = 1000 * math.Pow(2, 0.25)
	thetaB = 1000 * math.Sqrt(2)
	thetaC = 1000 * math.Pow(8, 0.125)
)

// isoSize returns the dimensions of size i of an ISO series in
// millimeters.  Width and height are rounded to the nearest millimeter
// independently, so folding size i in half gives exactly size i+1.  A few
// values differ by one millimeter from the official ISO 216 tables, which
// round the short edge down instead.
func isoSize(i int, theta float64) (width, height float64) {
	width = math.Round(theta * math.Pow(2, -float64(i+1)/2))
	height = math.Round(theta * math.Pow(2, -float64(i)/2))
	return width, height
}

// isoEntries generates the ISO A, B and C series, sizes 0 through 10.
func isoEntries() []Entry {
	series := []struct {
		category string
		letter   string
		theta    float64
	}{
		{"ISO A", "A", thetaA},
		{"ISO B", "B", thetaB},
		{"ISO C", "C", thetaC},
	}

	var res []Entry
	for i := 0; i <= 10; i++ {
		for _, s := range series {
			w, h := isoSize(i, s.theta)
			name := s.letter + strconv.Itoa(i)
			res = append(res, newEntry(s.category, name, w, h, mm))
		}
	}
	return res
}
