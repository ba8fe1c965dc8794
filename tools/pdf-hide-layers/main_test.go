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

package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layers"
)

func TestLayerFlag(t *testing.T) {
	var names layerList
	fs := flag.NewFlagSet(toolName, flag.ContinueOnError)
	fs.Var(&names, "layer", "")

	err := fs.Parse([]string{"-layer", "A", "-layer", "B C", "in.pdf"})
	require.NoError(t, err)
	assert.Equal(t, layerList{"A", "B C"}, names)
	assert.Equal(t, "A,B C", names.String())
	assert.Equal(t, []string{"in.pdf"}, fs.Args())

	assert.ErrorIs(t, names.Set(""), errEmptyLayerName)
}

func TestNewConfig(t *testing.T) {
	cfg, err := newConfig(&options{workers: 3, strict: true})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxWorkers)
	assert.Equal(t, layers.Strict, cfg.ParsingMode)
	assert.NotNil(t, cfg.Logger)

	cfg, err = newConfig(&options{})
	require.NoError(t, err)
	assert.Equal(t, layers.NewDefaultConfig().MaxWorkers, cfg.MaxWorkers)
	assert.Equal(t, layers.BestEffort, cfg.ParsingMode)

	_, err = newConfig(&options{workers: -1})
	assert.Error(t, err)
}

func TestRunExistingOutput(t *testing.T) {
	out := t.TempDir() + "/out.pdf"
	require.NoError(t, os.WriteFile(out, nil, 0o644))

	err := run(t.Context(), &options{in: "missing.pdf", out: out, names: layerList{"A"}})
	assert.ErrorContains(t, err, "already exists")
}
