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
	"fmt"

	"seehuhn.de/go/layers/logger"
)

// pageStrategy decides what happens when a page cannot be processed.
type pageStrategy interface {
	// pageFailed is called with the page number and the error.  If the
	// returned error is non-nil, the removal is aborted.
	pageFailed(pageNo int, err error) error
}

// strictStrategy aborts on the first failing page.
type strictStrategy struct{}

func (strictStrategy) pageFailed(pageNo int, err error) error {
	return fmt.Errorf("strict mode failed on page %d: %w", pageNo, err)
}

// bestEffortStrategy logs the error and leaves the page unchanged.
type bestEffortStrategy struct {
	log logger.LogFunc
}

func (s bestEffortStrategy) pageFailed(pageNo int, err error) error {
	s.log.Error("page left unchanged", "page", pageNo, "err", err)
	return nil
}

func newStrategy(cfg *Config) pageStrategy {
	if cfg.ParsingMode == Strict {
		return strictStrategy{}
	}
	return bestEffortStrategy{log: cfg.Logger}
}
