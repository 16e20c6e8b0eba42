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

package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/pagesetup/logging"
)

func TestSetLogger(t *testing.T) {
	defer logging.SetLogger(nil)

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logging.SetLogger(slog.New(h))

	logging.Logger().Debug("test message", slog.String("key", "value"))

	if !strings.Contains(buf.String(), "test message") {
		t.Error("configured logger did not receive output")
	}
}

func TestDefaultDiscards(t *testing.T) {
	logging.SetLogger(nil)

	l := logging.Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Handler() != slog.DiscardHandler {
		t.Error("default logger does not discard output")
	}
}
