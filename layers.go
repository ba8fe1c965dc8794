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

// Package layers removes optional content ("layers") from PDF documents.
//
// Given a set of layer names, a [Remover] rewrites the content streams of
// all pages so that content belonging to these layers is removed, deletes
// XObjects, marked-content properties and annotations which belong to the
// layers, and removes the layers from the optional content configuration
// in the document catalog.
//
// The package works on any document which implements [pagetree.Document],
// for example a [pdf.Memory] object store.
package layers

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"seehuhn.de/go/layers/filter"
	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pagetree"
	"seehuhn.de/go/layers/pdf"
)

// Remover removes layers from PDF documents.
// A Remover can be used concurrently by several goroutines.
type Remover struct {
	cfg      *Config
	sem      *semaphore.Weighted
	strategy pageStrategy
}

// New validates the configuration and returns a new Remover.
// If cfg is nil, the default configuration is used.
func New(cfg *Config) (*Remover, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("remover initialized",
		"parsing_mode", cfg.ParsingMode,
		"max_workers", cfg.MaxWorkers,
		"max_concurrent_docs", cfg.MaxConcurrentDocs)

	return &Remover{
		cfg:      cfg,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentDocs)),
		strategy: newStrategy(cfg),
	}, nil
}

// Report summarizes the changes made by [Remover.Remove].
type Report struct {
	// Pages is the number of pages in the document.
	Pages int

	// Rewritten is the number of pages with rewritten content streams.
	Rewritten int

	// Failed lists the pages which could not be processed and were left
	// unchanged.  Only used in best-effort mode.
	Failed []int

	// XObjects is the number of XObject resources removed.
	XObjects int

	// Properties is the number of marked-content property entries removed.
	Properties int

	// Annots is the number of annotations removed.
	Annots int

	// Groups is the number of optional content groups removed from the
	// document catalog.
	Groups int
}

// pageJob holds the data of one page while the page is processed.
type pageJob struct {
	page     *pagetree.Page
	data     []byte
	xobjects map[pdf.Name]bool
	out      []byte
	err      error
}

// Remove removes the layers with the given names from doc.
// The document is modified in place.
//
// Pages are rewritten concurrently.  All changes to the document are made
// after every page has been rewritten, so that resource dictionaries shared
// between pages are consistent.  If names is empty, the document is not
// changed.
func (rm *Remover) Remove(ctx context.Context, doc pagetree.Document, names oc.NameSet) (*Report, error) {
	if err := rm.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer rm.sem.Release(1)

	log := rm.cfg.Logger

	pages, err := pagetree.Pages(doc, doc.Catalog())
	if err != nil {
		return nil, err
	}
	report := &Report{Pages: len(pages)}
	log.Debug("starting layer removal", "pages", len(pages), "layers", names.Names())
	if len(names) == 0 {
		return report, nil
	}

	// Stream data is read sequentially, since stream readers cannot be
	// shared between goroutines.
	jobs := make([]*pageJob, len(pages))
	for i, page := range pages {
		job := &pageJob{page: page}
		job.data, job.err = pagetree.ReadContents(doc, page.Dict)
		if job.err == nil {
			job.xobjects, job.err = filter.HiddenXObjects(doc, page.Resources, names)
		}
		jobs[i] = job
	}

	f := &filter.Filter{
		Table:  filter.DefaultTable(),
		Getter: doc,
		Hidden: names,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rm.cfg.MaxWorkers)
	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if job.err == nil {
				job.out, job.err = f.Rewrite(job.data, job.page.Resources, job.xobjects)
			}
			if job.err != nil {
				return rm.strategy.pageFailed(job.page.Number, job.err)
			}
			log.Debug("page rewritten",
				"page", job.page.Number,
				"bytes_in", len(job.data),
				"bytes_out", len(job.out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, job := range jobs {
		if job.err != nil {
			report.Failed = append(report.Failed, job.page.Number)
			continue
		}
		err := rm.updatePage(doc, job, names, report)
		if err != nil {
			if err := rm.strategy.pageFailed(job.page.Number, err); err != nil {
				return nil, err
			}
			report.Failed = append(report.Failed, job.page.Number)
			continue
		}
		report.Rewritten++
	}

	err = removeGroups(doc, doc.Catalog(), names, report)
	if err != nil {
		return nil, err
	}

	log.Debug("layer removal completed",
		"rewritten", report.Rewritten,
		"failed", len(report.Failed),
		"xobjects", report.XObjects,
		"properties", report.Properties,
		"annots", report.Annots,
		"groups", report.Groups)
	return report, nil
}
