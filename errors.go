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

import "errors"

var (
	// ErrNoImageableArea indicates that the margins of a page format
	// leave no printable area.
	ErrNoImageableArea = errors.New("margins exceed page area")

	// ErrNegativeDimension indicates a negative page dimension or margin.
	ErrNegativeDimension = errors.New("negative page dimension")
)
