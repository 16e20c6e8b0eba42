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

// Package paper provides a catalog of named paper sizes.
//
// The catalog starts out with the common US, international and ISO sizes
// and can be extended with custom entries.  Entries are grouped into
// categories and keep the order in which they were added, so that they can
// be presented to the user as a stable, grouped list.
package paper

import (
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"seehuhn.de/go/pagesetup"
	"seehuhn.de/go/pagesetup/logging"
)

// An Entry describes one named paper size.
type Entry struct {
	// Category groups related sizes, for example "US/ANSI" or "ISO A".
	Category string

	// Name identifies the size within its category.
	Name string

	// Size gives the paper dimensions in points, width first.
	Size pagesetup.Size

	// Unit is the measurement unit the size was defined in.
	Unit pagesetup.Unit

	// Dimensions is a display label like "8.5 x 11 in", giving the
	// dimensions in the original unit.
	Dimensions string
}

func newEntry(category, name string, width, height float64, u pagesetup.Unit) Entry {
	return Entry{
		Category:   category,
		Name:       name,
		Size:       pagesetup.Size{Width: u.ToPoints(width), Height: u.ToPoints(height)},
		Unit:       u,
		Dimensions: formatDim(width) + " x " + formatDim(height) + " " + u.Abbr(),
	}
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Orientation returns the orientation matching the shape of the entry:
// Landscape if the entry is wider than tall, Portrait otherwise.
func (e Entry) Orientation() pagesetup.Orientation {
	if e.Size.Width > e.Size.Height {
		return pagesetup.Landscape
	}
	return pagesetup.Portrait
}

// Fields returns the entry dimensions converted to units of u, rounded to
// the unit's granularity.
func (e Entry) Fields(u pagesetup.Unit) (width, height float64) {
	return u.FromPoints(e.Size.Width), u.FromPoints(e.Size.Height)
}

// A Catalog holds named paper sizes for selection by the user.
//
// It is safe to use a Catalog concurrently from multiple goroutines.
type Catalog struct {
	sync.RWMutex
	entries []Entry
}

// New creates a catalog populated with the built-in paper sizes.
func New() *Catalog {
	return &Catalog{entries: builtinEntries()}
}

// Add registers a custom paper size.  Width and height are given in units
// of u.  The entry is appended to the catalog, creating the category if it
// does not exist yet.
//
// If an identical entry already exists (same category, name, dimensions
// and unit), the catalog is left unchanged and Add returns false.
func (c *Catalog) Add(category, name string, width, height float64, u pagesetup.Unit) bool {
	e := newEntry(category, name, width, height, u)

	c.Lock()
	defer c.Unlock()
	if slices.Contains(c.entries, e) {
		logging.Logger().Debug("duplicate paper size rejected",
			slog.String("category", category), slog.String("name", name))
		return false
	}
	c.entries = append(c.entries, e)
	return true
}

// All returns all entries in the order they were added.  The returned
// slice is a copy and remains valid while the catalog changes.
func (c *Catalog) All() []Entry {
	c.RLock()
	defer c.RUnlock()
	return slices.Clone(c.entries)
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	c.RLock()
	defer c.RUnlock()
	return len(c.entries)
}

// Find returns the entry with the given category and name.  Names are not
// unique across categories ("A4" names both an ISO size and an envelope),
// so both values are needed to identify an entry.
func (c *Catalog) Find(category, name string) (Entry, bool) {
	c.RLock()
	defer c.RUnlock()
	for _, e := range c.entries {
		if e.Category == category && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Categories returns the distinct categories in the order they first
// appear in the catalog.
func (c *Catalog) Categories() []string {
	c.RLock()
	defer c.RUnlock()
	var res []string
	seen := make(map[string]bool)
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			res = append(res, e.Category)
		}
	}
	return res
}
