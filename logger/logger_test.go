// seehuhn.de/go/layers - remove optional content from PDF files
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

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := Writer(buf, DebugLevel)

	log.Debug("page rewritten", "page", 3, "bytes", 120)
	log.Error("odd", "key")
	assert.Equal(t, "debug page rewritten page=3 bytes=120\nerror odd key=(missing)\n", buf.String())
}

func TestWriterMinLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := Writer(buf, ErrorLevel)

	log.Debug("ignored")
	log.Error("failed", "err", "boom")
	assert.Equal(t, "error failed err=boom\n", buf.String())
}

func TestNilAndNop(t *testing.T) {
	var log LogFunc
	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Error("y")
		LogFunc(Nop).Error("z", "a", 1)
	})
}
