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

package pagesetup

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is a measurement unit for page dimensions.  The possible values are
// [Inch], [Millimeter] and [Point].
//
// Points are the canonical unit: all page geometry in this package is
// stored in points, and a Unit describes how values are presented to the
// user.  Conversions from points round to a fixed number of decimals per
// unit, so converted values are suitable for display and editing.
type Unit int

// Valid values for Unit.
const (
	Inch       Unit = iota // rounded to 1/100
	Millimeter             // rounded to 1/10
	Point                  // 1/72 inch, rounded to integers
)

// Units returns all units, in the order they should be offered for
// selection.
func Units() []Unit {
	return []Unit{Inch, Millimeter, Point}
}

// ParseUnit returns the unit with the given name or abbreviation.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "in", "inch":
		return Inch, nil
	case "mm", "millimeter":
		return Millimeter, nil
	case "pt", "point":
		return Point, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

func (u Unit) String() string {
	switch u {
	case Inch:
		return "inch"
	case Millimeter:
		return "millimeter"
	case Point:
		return "point"
	}
	panic("pagesetup: invalid unit")
}

// Abbr returns the two-letter abbreviation of the unit.
func (u Unit) Abbr() string {
	switch u {
	case Inch:
		return "in"
	case Millimeter:
		return "mm"
	case Point:
		return "pt"
	}
	panic("pagesetup: invalid unit")
}

// scale is the number of points per one of u.
func (u Unit) scale() float64 {
	switch u {
	case Inch:
		return 72.0
	case Millimeter:
		return 72.0 / 25.4
	case Point:
		return 1.0
	}
	panic("pagesetup: invalid unit")
}

// ToPoints converts a value in units of u to points.
func (u Unit) ToPoints(v float64) float64 {
	return v * u.scale()
}

// FromPoints converts a value in points to units of u, rounded to the
// unit's granularity.  The conversion is lossy, but applying FromPoints to
// the result of ToPoints gives back the rounded value unchanged.
//
// Ties round away from zero.
func (u Unit) FromPoints(pt float64) float64 {
	return u.Round(pt / u.scale())
}

// Round rounds a value in units of u to the unit's granularity: two
// decimals for inches, one for millimeters, none for points.
func (u Unit) Round(v float64) float64 {
	switch u {
	case Inch:
		return math.Round(100*v) / 100
	case Millimeter:
		return math.Round(10*v) / 10
	case Point:
		return math.Round(v)
	}
	panic("pagesetup: invalid unit")
}

// Step returns the increment by which values in units of u are adjusted
// when editing.
func (u Unit) Step() float64 {
	if u == Inch {
		return 0.1
	}
	return 1
}

// Precision returns the number of decimals shown for values in units of u.
func (u Unit) Precision() int {
	switch u {
	case Inch:
		return 2
	case Millimeter:
		return 1
	case Point:
		return 0
	}
	panic("pagesetup: invalid unit")
}

// Format formats a value in units of u for display, using at most
// [Unit.Precision] decimals and omitting trailing zeros.
func (u Unit) Format(v float64) string {
	return strconv.FormatFloat(u.Round(v), 'f', -1, 64)
}

// Convert converts a value from one unit to another, rounding to the
// granularity of the target unit.
func Convert(v float64, from, to Unit) float64 {
	return to.FromPoints(from.ToPoints(v))
}
