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

package printertest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pagesetup"
)

type capsFile struct {
	Unit     string        `json:"unit"`
	Printers []capsPrinter `json:"printers"`
}

type capsPrinter struct {
	Name       string       `json:"name"`
	Media      [][2]float64 `json:"media"`
	MinMargins [4]float64   `json:"minMargins"`
	Default    int          `json:"default"`
}

// Load reads a printer capability description from r.
//
// The description is a JSON document of the form
//
//	{
//	  "unit": "mm",
//	  "printers": [
//	    {
//	      "name": "office",
//	      "media": [[210, 297], [297, 420]],
//	      "minMargins": [5, 5, 5, 5],
//	      "default": 0
//	    }
//	  ]
//	}
//
// All lengths are given in the unit named at the top, with points as the
// default.  Media sizes are width-height pairs in portrait orientation,
// and minMargins lists the left, top, right and bottom margin.
func Load(r io.Reader) (*Service, error) {
	var file capsFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid capability description: %w", err)
	}

	u := pagesetup.Point
	if file.Unit != "" {
		var err error
		u, err = pagesetup.ParseUnit(file.Unit)
		if err != nil {
			return nil, err
		}
	}

	printers := make([]Printer, 0, len(file.Printers))
	for _, p := range file.Printers {
		if p.Name == "" {
			return nil, fmt.Errorf("printer %d has no name", len(printers))
		}
		if len(p.Media) == 0 {
			return nil, fmt.Errorf("printer %q has no media", p.Name)
		}
		media := make([]pagesetup.Size, len(p.Media))
		for i, m := range p.Media {
			media[i] = pagesetup.Size{
				Width:  u.ToPoints(m[0]),
				Height: u.ToPoints(m[1]),
			}
		}
		printers = append(printers, Printer{
			Name:  p.Name,
			Media: media,
			MinMargins: pagesetup.Margins{
				Left:   u.ToPoints(p.MinMargins[0]),
				Top:    u.ToPoints(p.MinMargins[1]),
				Right:  u.ToPoints(p.MinMargins[2]),
				Bottom: u.ToPoints(p.MinMargins[3]),
			},
			Default: p.Default,
		})
	}
	return NewService(printers...), nil
}

// LoadFile reads a printer capability description from the named file.
func LoadFile(name string) (*Service, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
