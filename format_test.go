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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

// letter is a US Letter page with distinct margins on all four sides,
// used to make orientation mix-ups visible in tests.
var letter = PageFormat{
	Size:        Size{Width: 612, Height: 792},
	Orientation: Portrait,
	Margins:     Margins{Left: 36, Top: 72, Right: 18, Bottom: 54},
}

func TestFromFieldsRoundTrip(t *testing.T) {
	type testCase struct {
		name        string
		fields      Fields
		orientation Orientation
		unit        Unit
	}
	cases := []testCase{
		{
			name:        "letter in inches",
			fields:      Fields{Width: 8.5, Height: 11, Left: 0.5, Top: 0.75, Right: 0.25, Bottom: 1},
			orientation: Portrait,
			unit:        Inch,
		},
		{
			name:        "a4 in millimeters",
			fields:      Fields{Width: 210, Height: 297, Left: 10, Top: 10, Right: 10, Bottom: 10},
			orientation: Landscape,
			unit:        Millimeter,
		},
		{
			name:        "letter in points",
			fields:      Fields{Width: 612, Height: 792, Left: 36, Top: 54, Right: 18, Bottom: 72},
			orientation: ReverseLandscape,
			unit:        Point,
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			format, err := FromFields(test.fields, test.orientation, test.unit)
			if err != nil {
				t.Fatal(err)
			}
			if format.Orientation != test.orientation {
				t.Errorf("orientation = %s, want %s",
					format.Orientation, test.orientation)
			}
			got := format.Fields(test.unit)
			if diff := cmp.Diff(test.fields, got); diff != "" {
				t.Errorf("fields round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromFieldsCanonical(t *testing.T) {
	format, err := FromFields(Fields{Width: 8.5, Height: 11, Left: 1, Top: 1, Right: 1, Bottom: 1}, Portrait, Inch)
	if err != nil {
		t.Fatal(err)
	}
	want := PageFormat{
		Size:        Size{Width: 612, Height: 792},
		Orientation: Portrait,
		Margins:     Margins{Left: 72, Top: 72, Right: 72, Bottom: 72},
	}
	if diff := cmp.Diff(want, format); diff != "" {
		t.Errorf("canonical format mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFieldsErrors(t *testing.T) {
	type testCase struct {
		name   string
		fields Fields
		want   error
	}
	cases := []testCase{
		{
			name:   "margins eat the page",
			fields: Fields{Width: 8.5, Height: 11, Left: 5, Top: 1, Right: 5, Bottom: 1},
			want:   ErrNoImageableArea,
		},
		{
			name:   "margins leave zero width",
			fields: Fields{Width: 8.5, Height: 11, Left: 4.25, Top: 1, Right: 4.25, Bottom: 1},
			want:   ErrNoImageableArea,
		},
		{
			name:   "negative width",
			fields: Fields{Width: -1, Height: 11},
			want:   ErrNegativeDimension,
		},
		{
			name:   "negative margin",
			fields: Fields{Width: 8.5, Height: 11, Left: -0.5},
			want:   ErrNegativeDimension,
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			format, err := FromFields(test.fields, Portrait, Inch)
			if !errors.Is(err, test.want) {
				t.Fatalf("FromFields error = %v, want %v", err, test.want)
			}
			if format != (PageFormat{}) {
				t.Errorf("FromFields returned %v on error, want zero value", format)
			}
		})
	}
}

func TestWithOrientation(t *testing.T) {
	flipped := Size{Width: 792, Height: 612}

	l := letter.WithOrientation(Landscape)
	if l.Size != flipped {
		t.Errorf("portrait to landscape: size = %v, want %v", l.Size, flipped)
	}
	if l.Margins != letter.Margins {
		t.Errorf("margins changed: %v", l.Margins)
	}

	// The two landscape orientations share the same field layout.
	rl := l.WithOrientation(ReverseLandscape)
	if rl.Size != flipped {
		t.Errorf("landscape to reverse-landscape: size = %v, want %v", rl.Size, flipped)
	}

	back := rl.WithOrientation(Portrait)
	if diff := cmp.Diff(letter, back); diff != "" {
		t.Errorf("not restored after full cycle (-want +got):\n%s", diff)
	}

	same := letter.WithOrientation(Portrait)
	if diff := cmp.Diff(letter, same); diff != "" {
		t.Errorf("no-op transition changed the format (-want +got):\n%s", diff)
	}
}

func TestPaperSize(t *testing.T) {
	if got := letter.PaperSize(); got != letter.Size {
		t.Errorf("portrait paper size = %v, want %v", got, letter.Size)
	}

	l := letter.WithOrientation(Landscape)
	if got := l.PaperSize(); got != letter.Size {
		t.Errorf("landscape paper size = %v, want %v", got, letter.Size)
	}
	rl := letter.WithOrientation(ReverseLandscape)
	if got := rl.PaperSize(); got != letter.Size {
		t.Errorf("reverse-landscape paper size = %v, want %v", got, letter.Size)
	}
}

func TestImageable(t *testing.T) {
	want := Size{Width: 612 - 36 - 18, Height: 792 - 72 - 54}
	if got := letter.Imageable(); got != want {
		t.Errorf("imageable = %v, want %v", got, want)
	}
}

func TestImageableBox(t *testing.T) {
	type testCase struct {
		orientation Orientation
		want        rect.Rect
	}
	// Margins are left 36, top 72, right 18, bottom 54 on a 612x792
	// page; the imageable extent is 558x666.
	cases := []testCase{
		{Portrait, rect.Rect{LLx: 36, LLy: 72, URx: 36 + 558, URy: 72 + 666}},
		{Landscape, rect.Rect{LLx: 72, LLy: 18, URx: 72 + 666, URy: 18 + 558}},
		{ReverseLandscape, rect.Rect{LLx: 54, LLy: 36, URx: 54 + 666, URy: 36 + 558}},
	}
	for _, test := range cases {
		t.Run(test.orientation.String(), func(t *testing.T) {
			f := letter
			f.Orientation = test.orientation
			got := f.ImageableBox()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("imageable box mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	type testCase struct {
		name   string
		format PageFormat
		want   error
	}
	cases := []testCase{
		{
			name:   "valid",
			format: letter,
			want:   nil,
		},
		{
			name: "margins leave zero height",
			format: PageFormat{
				Size:    Size{Width: 612, Height: 792},
				Margins: Margins{Top: 396, Bottom: 396},
			},
			want: ErrNoImageableArea,
		},
		{
			name: "margins exceed width",
			format: PageFormat{
				Size:    Size{Width: 612, Height: 792},
				Margins: Margins{Left: 360, Right: 360},
			},
			want: ErrNoImageableArea,
		},
		{
			name: "negative margin",
			format: PageFormat{
				Size:    Size{Width: 612, Height: 792},
				Margins: Margins{Left: -1},
			},
			want: ErrNegativeDimension,
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			err := test.format.Check()
			if !errors.Is(err, test.want) {
				t.Errorf("Check() = %v, want %v", err, test.want)
			}
		})
	}
}

func TestFieldsConvert(t *testing.T) {
	in := Fields{Width: 8.5, Height: 11, Left: 0.5, Top: 0.5, Right: 0.5, Bottom: 0.5}
	want := Fields{Width: 215.9, Height: 279.4, Left: 12.7, Top: 12.7, Right: 12.7, Bottom: 12.7}
	got := in.Convert(Inch, Millimeter)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("convert to mm mismatch (-want +got):\n%s", diff)
	}

	back := got.Convert(Millimeter, Inch)
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("convert back to inches mismatch (-want +got):\n%s", diff)
	}
}

func TestSizeNearlyEqual(t *testing.T) {
	a := Size{Width: 612, Height: 792}
	if !a.NearlyEqual(Size{Width: 612.05, Height: 791.95}, 0.1) {
		t.Error("sizes within eps not considered equal")
	}
	if a.NearlyEqual(Size{Width: 612.1, Height: 792}, 0.1) {
		t.Error("difference of exactly eps considered equal")
	}
	if a.NearlyEqual(Size{Width: 612, Height: 793}, 0.1) {
		t.Error("different sizes considered equal")
	}
}
