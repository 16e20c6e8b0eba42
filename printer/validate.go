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

package printer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/pagesetup"
	"seehuhn.de/go/pagesetup/logging"
)

// eps is the tolerance, in points, below which two lengths compare equal.
const eps = 0.1

var (
	// ErrUnsupportedSize indicates that a printer cannot handle the
	// requested paper size or orientation.
	ErrUnsupportedSize = errors.New("paper size not supported")

	// ErrUnsupportedMargins indicates that the requested margins are
	// smaller than the printer's hardware margins.
	ErrUnsupportedMargins = errors.New("margins not supported")

	// ErrNoService indicates that no printer service is available.
	ErrNoService = errors.New("no printer service")
)

// An UnsupportedError reports why a printer cannot produce a page setup.
type UnsupportedError struct {
	Printer string
	Reason  error
}

func (e *UnsupportedError) Error() string {
	return describe(e.Printer) + ": " + e.Reason.Error()
}

func (e *UnsupportedError) Unwrap() error {
	return e.Reason
}

func describe(printer string) string {
	if printer == "" {
		return "default printer"
	}
	return fmt.Sprintf("printer %q", printer)
}

// Status classifies the result of a capability check.
type Status int

const (
	Accepted Status = iota // the candidate can be used unchanged
	Adjusted               // the printer substituted different values
	Rejected               // the candidate cannot be used
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Adjusted:
		return "adjusted"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// A Field identifies one editable value of a page setup.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldOrientation
	FieldLeftMargin
	FieldTopMargin
	FieldRightMargin
	FieldBottomMargin
)

func (f Field) String() string {
	switch f {
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	case FieldOrientation:
		return "orientation"
	case FieldLeftMargin:
		return "left margin"
	case FieldTopMargin:
		return "top margin"
	case FieldRightMargin:
		return "right margin"
	case FieldBottomMargin:
		return "bottom margin"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// An Outcome is the result of checking a page setup against a printer.
type Outcome struct {
	// Status classifies the result.
	Status Status

	// Page is the page setup to use.  For Adjusted outcomes this is the
	// printer's substitute, otherwise it equals the candidate.
	Page pagesetup.PageFormat

	// Changed lists the fields where Page differs from the candidate.
	// It is only set for Adjusted outcomes.
	Changed []Field

	// Reason explains Rejected outcomes.  It is nil otherwise.
	Reason error
}

// A Validator checks page setups against printer capabilities.
//
// The zero value uses no Service and accepts every page setup with a
// positive imageable area.
type Validator struct {
	// Service queries the available printers.  A nil Service behaves
	// like a system without printers: all sizes are supported.
	Service Service
}

// Validate checks whether the named printer can produce the candidate
// page setup as given.
//
// A candidate whose margins leave no printable area is rejected with
// ErrNoImageableArea before any printer is consulted.  For AnyPrinter, or
// when no Service is configured, every remaining candidate is accepted.
// Otherwise the printer's closest supported page setup is fetched, and
// the candidate is rejected with ErrUnsupportedSize if the paper size or
// orientation differs, and with ErrUnsupportedMargins if only the
// imageable area differs.  Differences smaller than 0.1 pt are ignored.
//
// Validate never modifies the candidate: a Rejected outcome leaves it to
// the caller to pick different values.  Use Reconcile to adopt the
// printer's substitute instead.
func (v Validator) Validate(printer string, candidate pagesetup.PageFormat) Outcome {
	if err := candidate.Check(); err != nil {
		return rejected(candidate, err)
	}
	if v.Service == nil || printer == AnyPrinter {
		return Outcome{Status: Accepted, Page: candidate}
	}

	supported, err := v.Service.ValidatePage(printer, candidate)
	if err != nil {
		return rejected(candidate, fmt.Errorf("%s: %w", describe(printer), err))
	}

	if candidate.Orientation != supported.Orientation ||
		!candidate.Size.NearlyEqual(supported.Size, eps) {
		return rejected(candidate, &UnsupportedError{Printer: printer, Reason: ErrUnsupportedSize})
	}

	// The margins compare via the position and extent of the imageable
	// area, so that an equal shift of opposite margins still counts as a
	// change.
	if !nearly(candidate.Margins.Left, supported.Margins.Left) ||
		!nearly(candidate.Margins.Top, supported.Margins.Top) ||
		!candidate.Imageable().NearlyEqual(supported.Imageable(), eps) {
		return rejected(candidate, &UnsupportedError{Printer: printer, Reason: ErrUnsupportedMargins})
	}

	return Outcome{Status: Accepted, Page: candidate}
}

// Reconcile asks the named printer for the closest supported page setup
// and adopts it.  The outcome is Accepted if the printer kept the
// candidate unchanged, and Adjusted with the list of changed fields
// otherwise.  Differences smaller than 0.1 pt are ignored.
//
// Unlike Validate, Reconcile sends a candidate whose margins leave no
// printable area to the printer as given, so that the printer can move
// the margins back into range.  An Accepted or Adjusted outcome never
// carries such a page: without a printer to consult the candidate is
// rejected, and a substitute without a printable area is rejected too.
func (v Validator) Reconcile(printer string, candidate pagesetup.PageFormat) Outcome {
	if v.Service == nil || printer == AnyPrinter {
		if err := candidate.Check(); err != nil {
			return rejected(candidate, err)
		}
		return Outcome{Status: Accepted, Page: candidate}
	}

	supported, err := v.Service.ValidatePage(printer, candidate)
	if err != nil {
		return rejected(candidate, fmt.Errorf("%s: %w", describe(printer), err))
	}
	if err := supported.Check(); err != nil {
		return rejected(candidate, fmt.Errorf("%s: %w", describe(printer), err))
	}

	changed := diffFields(candidate, supported)
	if len(changed) == 0 {
		if err := candidate.Check(); err != nil {
			return rejected(candidate, err)
		}
		return Outcome{Status: Accepted, Page: candidate}
	}
	logging.Logger().Debug("page setup adjusted",
		slog.String("printer", printer),
		slog.Any("fields", changed))
	return Outcome{Status: Adjusted, Page: supported, Changed: changed}
}

// Defaults returns the default page setup of the named printer, with the
// margins opened up to the printer's minimum.  The empty string selects
// the system default printer.
func (v Validator) Defaults(printer string) (pagesetup.PageFormat, error) {
	if v.Service == nil {
		return pagesetup.PageFormat{}, ErrNoService
	}

	page, err := v.Service.DefaultPage(printer)
	if err != nil {
		return pagesetup.PageFormat{}, fmt.Errorf("%s: %w", describe(printer), err)
	}

	// Ask for the full sheet, and let the printer push the margins back
	// out to its hardware minimum.
	page.Margins = pagesetup.Margins{}
	page, err = v.Service.ValidatePage(printer, page)
	if err != nil {
		return pagesetup.PageFormat{}, fmt.Errorf("%s: %w", describe(printer), err)
	}
	if err := page.Check(); err != nil {
		return pagesetup.PageFormat{}, fmt.Errorf("%s: %w", describe(printer), err)
	}
	return page, nil
}

func rejected(candidate pagesetup.PageFormat, err error) Outcome {
	logging.Logger().Debug("page setup rejected", slog.Any("error", err))
	return Outcome{Status: Rejected, Page: candidate, Reason: err}
}

func diffFields(candidate, supported pagesetup.PageFormat) []Field {
	var res []Field
	if !nearly(candidate.Size.Width, supported.Size.Width) {
		res = append(res, FieldWidth)
	}
	if !nearly(candidate.Size.Height, supported.Size.Height) {
		res = append(res, FieldHeight)
	}
	if candidate.Orientation != supported.Orientation {
		res = append(res, FieldOrientation)
	}
	if !nearly(candidate.Margins.Left, supported.Margins.Left) {
		res = append(res, FieldLeftMargin)
	}
	if !nearly(candidate.Margins.Top, supported.Margins.Top) {
		res = append(res, FieldTopMargin)
	}
	if !nearly(candidate.Margins.Right, supported.Margins.Right) {
		res = append(res, FieldRightMargin)
	}
	if !nearly(candidate.Margins.Bottom, supported.Margins.Bottom) {
		res = append(res, FieldBottomMargin)
	}
	return res
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < eps
}
