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

// Package logging provides the *slog.Logger used by seehuhn.de/go/pagesetup.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package-level logger.  While unset, Logger returns a
// logger which discards all output.
var logger atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by the pagesetup packages.
// Pass nil to discard all log output again.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(l)
	}
}

// Logger returns the logger used by the pagesetup packages.  The returned
// logger is never nil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
