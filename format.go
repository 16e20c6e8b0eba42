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

	"seehuhn.de/go/geom/rect"
)

// Size gives the extent of a page or of its printable area, in points.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("[%.2f x %.2f]", s.Width, s.Height)
}

// NearlyEqual reports whether the dimensions of two sizes differ by less
// than eps.
func (s Size) NearlyEqual(other Size, eps float64) bool {
	return (math.Abs(s.Width-other.Width) < eps &&
		math.Abs(s.Height-other.Height) < eps)
}

// Orientation describes how a page is turned relative to the direction the
// user edits it in.  The possible values are [Portrait], [Landscape] and
// [ReverseLandscape].
type Orientation int

// Valid values for Orientation.
const (
	Portrait         Orientation = iota // upright
	Landscape                           // turned 90 degrees counter-clockwise
	ReverseLandscape                    // turned 90 degrees clockwise
)

// ParseOrientation returns the orientation with the given name.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	case "reverse-landscape":
		return ReverseLandscape, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case ReverseLandscape:
		return "reverse-landscape"
	}
	panic("pagesetup: invalid orientation")
}

// Margins give the distances between the edges of a page and its printable
// area, in points.  Margins always refer to the page as the user sees it
// while editing, before any orientation is applied.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// A PageFormat describes the size, orientation and margins of a page.
//
// Size and Margins are stored in points and refer to the upright page as
// shown during editing.  For Landscape and ReverseLandscape formats the
// physical sheet is turned relative to this view; use [PageFormat.PaperSize]
// and [PageFormat.ImageableBox] to obtain the physical dimensions.
type PageFormat struct {
	Size        Size
	Orientation Orientation
	Margins     Margins
}

// Fields holds the dimensions of a page format converted to a display
// unit, in the same layout as the editing controls.
type Fields struct {
	Width, Height            float64
	Left, Top, Right, Bottom float64
}

// Convert converts all field values from one display unit to another.
func (f Fields) Convert(from, to Unit) Fields {
	return Fields{
		Width:  Convert(f.Width, from, to),
		Height: Convert(f.Height, from, to),
		Left:   Convert(f.Left, from, to),
		Top:    Convert(f.Top, from, to),
		Right:  Convert(f.Right, from, to),
		Bottom: Convert(f.Bottom, from, to),
	}
}

// FromFields creates a page format from dimensions given in units of u.
//
// An error is returned if any dimension is negative, or if the margins
// leave no printable area.  In this case the returned format is the zero
// value, fields are never applied partially.
func FromFields(f Fields, o Orientation, u Unit) (PageFormat, error) {
	res := PageFormat{
		Size: Size{
			Width:  u.ToPoints(f.Width),
			Height: u.ToPoints(f.Height),
		},
		Orientation: o,
		Margins: Margins{
			Left:   u.ToPoints(f.Left),
			Top:    u.ToPoints(f.Top),
			Right:  u.ToPoints(f.Right),
			Bottom: u.ToPoints(f.Bottom),
		},
	}
	if err := res.Check(); err != nil {
		return PageFormat{}, err
	}
	return res, nil
}

// Fields converts the page format to display values in units of u,
// rounded to the unit's granularity.
func (f PageFormat) Fields(u Unit) Fields {
	return Fields{
		Width:  u.FromPoints(f.Size.Width),
		Height: u.FromPoints(f.Size.Height),
		Left:   u.FromPoints(f.Margins.Left),
		Top:    u.FromPoints(f.Margins.Top),
		Right:  u.FromPoints(f.Margins.Right),
		Bottom: u.FromPoints(f.Margins.Bottom),
	}
}

// WithOrientation returns a copy of the page format with the given
// orientation.  Width and height are swapped when the format changes
// between Portrait and one of the landscape orientations, so that the
// physical sheet keeps its shape.  Switching between Landscape and
// ReverseLandscape changes nothing but the orientation.  Margins are
// never touched.
func (f PageFormat) WithOrientation(o Orientation) PageFormat {
	if (f.Orientation == Portrait) != (o == Portrait) {
		f.Size.Width, f.Size.Height = f.Size.Height, f.Size.Width
	}
	f.Orientation = o
	return f
}

// PaperSize returns the dimensions of the physical sheet of paper.
// For Portrait formats this equals f.Size; for the landscape orientations
// width and height are exchanged.
func (f PageFormat) PaperSize() Size {
	if f.Orientation == Portrait {
		return f.Size
	}
	return Size{Width: f.Size.Height, Height: f.Size.Width}
}

// Imageable returns the extent of the printable area as the user sees it,
// i.e. the page size reduced by the margins.
func (f PageFormat) Imageable() Size {
	return Size{
		Width:  f.Size.Width - f.Margins.Left - f.Margins.Right,
		Height: f.Size.Height - f.Margins.Top - f.Margins.Bottom,
	}
}

// ImageableBox returns the printable area on the physical sheet.
// Coordinates are relative to the top left corner of the sheet as it
// leaves the printer, with y increasing downwards; (LLx, LLy) is the
// corner of the printable area closest to this origin.
func (f PageFormat) ImageableBox() rect.Rect {
	m := f.Margins
	img := f.Imageable()

	var x, y, w, h float64
	switch f.Orientation {
	case Portrait:
		x, y = m.Left, m.Top
		w, h = img.Width, img.Height
	case Landscape:
		x, y = m.Top, m.Right
		w, h = img.Height, img.Width
	case ReverseLandscape:
		x, y = m.Bottom, m.Left
		w, h = img.Height, img.Width
	default:
		panic("pagesetup: invalid orientation")
	}
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
}

// Check verifies that the page format can be printed on: all dimensions
// must be non-negative, and the margins must leave room for a printable
// area.  Possible errors are [ErrNegativeDimension] and
// [ErrNoImageableArea].
func (f PageFormat) Check() error {
	m := f.Margins
	if f.Size.Width < 0 || f.Size.Height < 0 ||
		m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
		return ErrNegativeDimension
	}
	img := f.Imageable()
	if img.Width <= 0 || img.Height <= 0 {
		return ErrNoImageableArea
	}
	return nil
}
