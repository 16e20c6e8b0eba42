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

// Package printertest provides an in-memory printer service.
//
// The service is used by the tests in place of a platform printing
// system, and by the command line tools to run validation against a
// capability description loaded from a file.
package printertest

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/pagesetup"
)

// A Printer describes the capabilities of one simulated printer.
type Printer struct {
	Name string

	// Media lists the supported paper sizes, in points and in portrait
	// orientation.
	Media []pagesetup.Size

	// MinMargins gives the smallest margins the device supports.
	MinMargins pagesetup.Margins

	// Default is the index into Media of the default paper size.
	Default int

	// Err, if set, is returned by every query for this printer.
	Err error
}

// A Service answers capability queries from a fixed list of simulated
// printers.  It implements the printer.Service interface.
type Service struct {
	printers []Printer
}

// NewService creates a service backed by the given printers.  The first
// printer acts as the system default.
func NewService(printers ...Printer) *Service {
	return &Service{printers: printers}
}

// Printers returns the names of the simulated printers.
func (s *Service) Printers() ([]string, error) {
	names := make([]string, len(s.printers))
	for i, p := range s.printers {
		names[i] = p.Name
	}
	return names, nil
}

func (s *Service) lookup(name string) (*Printer, error) {
	if len(s.printers) == 0 {
		return nil, errors.New("no printers configured")
	}
	if name == "" {
		return &s.printers[0], nil
	}
	for i := range s.printers {
		if s.printers[i].Name == name {
			return &s.printers[i], nil
		}
	}
	return nil, fmt.Errorf("unknown printer %q", name)
}

// DefaultPage returns the printer's default paper size in portrait
// orientation, with the margins set to the device minimum.
func (s *Service) DefaultPage(printer string) (pagesetup.PageFormat, error) {
	p, err := s.lookup(printer)
	if err != nil {
		return pagesetup.PageFormat{}, err
	}
	if p.Err != nil {
		return pagesetup.PageFormat{}, p.Err
	}
	if len(p.Media) == 0 {
		return pagesetup.PageFormat{}, fmt.Errorf("printer %q has no media", p.Name)
	}

	i := p.Default
	if i < 0 || i >= len(p.Media) {
		i = 0
	}
	return pagesetup.PageFormat{
		Size:        p.Media[i],
		Orientation: pagesetup.Portrait,
		Margins:     p.MinMargins,
	}, nil
}

// ValidatePage snaps the sheet size of f to the closest supported medium
// and raises the margins to the device minimum.  The orientation of f is
// kept.
func (s *Service) ValidatePage(printer string, f pagesetup.PageFormat) (pagesetup.PageFormat, error) {
	p, err := s.lookup(printer)
	if err != nil {
		return pagesetup.PageFormat{}, err
	}
	if p.Err != nil {
		return pagesetup.PageFormat{}, p.Err
	}
	if len(p.Media) == 0 {
		return pagesetup.PageFormat{}, fmt.Errorf("printer %q has no media", p.Name)
	}

	sheet := f.PaperSize()
	best := p.Media[0]
	for _, m := range p.Media[1:] {
		if dist(m, sheet) < dist(best, sheet) {
			best = m
		}
	}

	res := f
	if f.Orientation == pagesetup.Portrait {
		res.Size = best
	} else {
		res.Size = pagesetup.Size{Width: best.Height, Height: best.Width}
	}

	res.Margins.Left = max(res.Margins.Left, p.MinMargins.Left)
	res.Margins.Top = max(res.Margins.Top, p.MinMargins.Top)
	res.Margins.Right = max(res.Margins.Right, p.MinMargins.Right)
	res.Margins.Bottom = max(res.Margins.Bottom, p.MinMargins.Bottom)

	// If the margins swallow the sheet, fall back to the device minimum
	// so that the result is always printable.
	if res.Imageable().Width < 1 {
		res.Margins.Left = p.MinMargins.Left
		res.Margins.Right = p.MinMargins.Right
	}
	if res.Imageable().Height < 1 {
		res.Margins.Top = p.MinMargins.Top
		res.Margins.Bottom = p.MinMargins.Bottom
	}
	return res, nil
}

func dist(a, b pagesetup.Size) float64 {
	return math.Abs(a.Width-b.Width) + math.Abs(a.Height-b.Height)
}
