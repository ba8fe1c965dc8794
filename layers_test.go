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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layers/filter"
	"seehuhn.de/go/layers/logger"
	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pagetree"
	"seehuhn.de/go/layers/pdf"
)

type testDoc struct {
	*pdf.Memory

	l1, l2   pdf.Reference
	annot1   pdf.Reference
	annot2   pdf.Reference
	s2a, s2b pdf.Reference
	pages    []pdf.Reference
}

func stream(data string) *pdf.Stream {
	return &pdf.Stream{Dict: pdf.Dict{}, R: strings.NewReader(data)}
}

// newTestDoc creates a three-page document with the layers "Layer1" and
// "Layer2".  All pages share the same resources.  Page 3 has a malformed
// content stream.
func newTestDoc() *testDoc {
	m := pdf.NewMemory()
	d := &testDoc{Memory: m}

	d.l1 = m.Add(pdf.Dict{"Type": pdf.Name("OCG"), "Name": pdf.String("Layer1")})
	d.l2 = m.Add(pdf.Dict{"Type": pdf.Name("OCG"), "Name": pdf.String("Layer2")})

	im1 := m.Add(&pdf.Stream{
		Dict: pdf.Dict{"Subtype": pdf.Name("Image"), "OC": d.l2},
		R:    strings.NewReader(""),
	})
	im2 := m.Add(&pdf.Stream{
		Dict: pdf.Dict{"Subtype": pdf.Name("Image")},
		R:    strings.NewReader(""),
	})
	resources := m.Add(pdf.Dict{
		"Properties": pdf.Dict{"OC1": d.l1, "OC2": d.l2},
		"XObject":    pdf.Dict{"Im1": im1, "Im2": im2},
	})

	d.annot1 = m.Add(pdf.Dict{"Subtype": pdf.Name("Square"), "OC": d.l1})
	d.annot2 = m.Add(pdf.Dict{"Subtype": pdf.Name("Text")})

	root := pdf.NewReference(1000, 0)
	d.s2a = m.Add(stream("/Im1 Do"))
	d.s2b = m.Add(stream("/OC /OC2 BDC (x) Tj EMC"))
	p1 := m.Add(pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    root,
		"Contents":  m.Add(stream("q /OC /OC1 BDC 0 0 m 1 1 l S EMC Q")),
		"Annots":    m.Add(pdf.Array{d.annot1, d.annot2}),
		"PieceInfo": pdf.Dict{"App": pdf.Dict{"Private": pdf.Integer(1)}},
	})
	p2 := m.Add(pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   root,
		"Contents": pdf.Array{d.s2a, d.s2b},
	})
	p3 := m.Add(pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   root,
		"Contents": m.Add(stream("q (unterminated")),
	})
	d.pages = []pdf.Reference{p1, p2, p3}
	m.Put(root, pdf.Dict{
		"Type":      pdf.Name("Pages"),
		"Kids":      pdf.Array{p1, p2, p3},
		"Count":     pdf.Integer(3),
		"Resources": resources,
	})

	catalog := m.Add(pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": root,
		"OCProperties": pdf.Dict{
			"OCGs": pdf.Array{d.l1, d.l2},
			"D": pdf.Dict{
				"ON":     pdf.Array{d.l1, d.l2},
				"Locked": m.Add(pdf.Array{d.l1}),
				"Order":  pdf.Array{d.l1, d.l2},
				"AS":     pdf.Array{},
			},
		},
	})
	m.SetRoot(catalog)
	return d
}

func (d *testDoc) page(i int) pdf.Dict {
	dict, _ := pdf.GetDict(d, d.pages[i])
	return dict
}

func (d *testDoc) contents(t *testing.T, i int) string {
	t.Helper()
	data, err := pagetree.ReadContents(d, d.page(i))
	require.NoError(t, err)
	return string(data)
}

func (d *testDoc) resources(t *testing.T) pdf.Dict {
	t.Helper()
	pages, err := pagetree.Pages(d, d.Catalog())
	require.NoError(t, err)
	return pages[0].Resources
}

func TestRemoveLayer1(t *testing.T) {
	doc := newTestDoc()
	rm, err := New(nil)
	require.NoError(t, err)

	report, err := rm.Remove(context.Background(), doc, oc.NewNameSet("Layer1"))
	require.NoError(t, err)

	assert.Equal(t, &Report{
		Pages:      3,
		Rewritten:  2,
		Failed:     []int{3},
		XObjects:   0,
		Properties: 1,
		Annots:     1,
		Groups:     1,
	}, report)

	assert.Equal(t, "q\nQ\n", doc.contents(t, 0))
	assert.Equal(t, "/Im1 Do\n/OC /OC2 BDC\n(x) Tj\nEMC\n", doc.contents(t, 1))
	assert.Equal(t, "q (unterminated", doc.contents(t, 2))

	// multi-stream pages are reduced to their first stream
	assert.Equal(t, doc.s2a, doc.page(1)["Contents"])

	annots, err := pdf.GetArray(doc, doc.page(0)["Annots"])
	require.NoError(t, err)
	assert.Equal(t, pdf.Array{doc.annot2}, annots)
	assert.NotContains(t, doc.page(0), pdf.Name("PieceInfo"))

	props, err := pdf.GetDict(doc, doc.resources(t)["Properties"])
	require.NoError(t, err)
	assert.Equal(t, pdf.Dict{"OC2": doc.l2}, props)

	ocProps := doc.Catalog()["OCProperties"].(pdf.Dict)
	assert.Equal(t, pdf.Array{doc.l2}, ocProps["OCGs"])
	d := ocProps["D"].(pdf.Dict)
	assert.Equal(t, pdf.Array{doc.l2}, d["ON"])
	assert.NotContains(t, d, pdf.Name("Order"))
	assert.NotContains(t, d, pdf.Name("AS"))

	// the indirect Locked array is replaced in the object store
	locked, err := pdf.GetArray(doc, d["Locked"])
	require.NoError(t, err)
	assert.Empty(t, locked)
}

func TestRemoveLayer2(t *testing.T) {
	doc := newTestDoc()
	rm, err := New(nil)
	require.NoError(t, err)

	report, err := rm.Remove(context.Background(), doc, oc.NewNameSet("Layer2"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.XObjects)
	assert.Equal(t, 0, report.Annots)
	assert.Equal(t, "q\n/OC /OC1 BDC\n0 0 m\n1 1 l\nS\nEMC\nQ\n", doc.contents(t, 0))
	assert.Equal(t, "", doc.contents(t, 1))

	xobjects, err := pdf.GetDict(doc, doc.resources(t)["XObject"])
	require.NoError(t, err)
	assert.NotContains(t, xobjects, pdf.Name("Im1"))
	assert.Contains(t, xobjects, pdf.Name("Im2"))
}

func TestRemoveStrict(t *testing.T) {
	doc := newTestDoc()
	cfg := NewDefaultConfig()
	cfg.ParsingMode = Strict
	rm, err := New(cfg)
	require.NoError(t, err)

	_, err = rm.Remove(context.Background(), doc, oc.NewNameSet("Layer1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode failed on page 3")
	var malformed *filter.MalformedContentError
	assert.True(t, errors.As(err, &malformed))

	// nothing was changed
	assert.Equal(t, "q /OC /OC1 BDC 0 0 m 1 1 l S EMC Q", doc.contents(t, 0))
	assert.Contains(t, doc.page(0), pdf.Name("PieceInfo"))
}

func TestRemoveNothing(t *testing.T) {
	doc := newTestDoc()
	rm, err := New(nil)
	require.NoError(t, err)

	report, err := rm.Remove(context.Background(), doc, oc.NewNameSet())
	require.NoError(t, err)
	assert.Equal(t, &Report{Pages: 3}, report)
	assert.Equal(t, "q /OC /OC1 BDC 0 0 m 1 1 l S EMC Q", doc.contents(t, 0))
	assert.Len(t, doc.Catalog()["OCProperties"].(pdf.Dict)["OCGs"], 2)
}

func TestRemoveCanceled(t *testing.T) {
	doc := newTestDoc()
	rm, err := New(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rm.Remove(ctx, doc, oc.NewNameSet("Layer1"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoveLogsFailures(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewDefaultConfig()
	cfg.MaxWorkers = 1
	cfg.Logger = logger.Writer(buf, logger.ErrorLevel)
	rm, err := New(cfg)
	require.NoError(t, err)

	_, err = rm.Remove(context.Background(), newTestDoc(), oc.NewNameSet("Layer1"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "error page left unchanged page=3 err=malformed content stream")
	assert.NotContains(t, buf.String(), "debug")
}

func TestRemoveConcurrentDocuments(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxConcurrentDocs = 2
	rm, err := New(cfg)
	require.NoError(t, err)

	docs := make([]*testDoc, 6)
	errs := make(chan error, len(docs))
	for i := range docs {
		docs[i] = newTestDoc()
		go func() {
			_, err := rm.Remove(context.Background(), docs[i], oc.NewNameSet("Layer1"))
			errs <- err
		}()
	}
	for range docs {
		require.NoError(t, <-errs)
	}
	for _, doc := range docs {
		assert.Equal(t, "q\nQ\n", doc.contents(t, 0))
	}
}
