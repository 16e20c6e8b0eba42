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

// Package printer checks page setups against printer capabilities.
//
// Capabilities are queried through the Service interface, which an
// application implements on top of its platform's printing system.  A
// Validator uses a Service to classify page setups as accepted, adjusted
// or rejected, without ever modifying the caller's values.
package printer

import (
	"seehuhn.de/go/pagesetup"
)

// AnyPrinter selects no printer in particular.  Validate and Reconcile
// accept every page setup with a positive imageable area for AnyPrinter,
// without consulting the Service.
const AnyPrinter = ""

// A Service reports printer capabilities.  It is the bridge between this
// package and the platform's printing system.
//
// Implementations must be safe for use from multiple goroutines.
type Service interface {
	// Printers returns the names of the available printers.
	Printers() ([]string, error)

	// DefaultPage returns the default page setup of the named printer.
	// The empty string selects the system default printer.
	DefaultPage(printer string) (pagesetup.PageFormat, error)

	// ValidatePage returns the page setup closest to f which the named
	// printer supports.  The empty string selects the system default
	// printer.
	ValidatePage(printer string, f pagesetup.PageFormat) (pagesetup.PageFormat, error)
}
