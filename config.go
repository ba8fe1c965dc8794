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

package layers

import (
	"runtime"

	"github.com/go-playground/validator/v10"

	"seehuhn.de/go/layers/logger"
)

// ParsingMode determines how page errors are handled.
type ParsingMode string

// These are the supported parsing modes.
const (
	// Strict aborts the removal on the first page which cannot be
	// processed.
	Strict ParsingMode = "strict"

	// BestEffort leaves pages which cannot be processed unchanged and
	// continues with the remaining pages.
	BestEffort ParsingMode = "best-effort"
)

// Config holds the settings for a [Remover].
type Config struct {
	// MaxWorkers is the number of pages processed concurrently.
	MaxWorkers int `validate:"min=1,max=64"`

	// MaxConcurrentDocs is the number of documents a Remover processes
	// at the same time.  Additional calls to Remove wait.
	MaxConcurrentDocs int `validate:"min=1,max=16"`

	ParsingMode ParsingMode `validate:"oneof=strict best-effort"`

	// Logger, if set, receives progress and error messages.
	Logger logger.LogFunc
}

// NewDefaultConfig returns the default settings.
func NewDefaultConfig() *Config {
	return &Config{
		MaxWorkers:        min(runtime.NumCPU(), 8),
		MaxConcurrentDocs: 1,
		ParsingMode:       BestEffort,
	}
}

// Validate checks that all settings are in range.
func (cfg *Config) Validate() error {
	cfg.Logger.Debug("validating config")
	validate := validator.New()
	return validate.Struct(cfg)
}
