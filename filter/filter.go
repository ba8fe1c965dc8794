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

package filter

import (
	"bytes"
	"io"

	"seehuhn.de/go/layers/content"
	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pdf"
)

// Rewrite removes hidden content from a content stream.
//
// The function first removes hidden XObjects from resources (see [Prune]),
// and then rewrites the content stream data using the default operator
// table.  The returned data replaces the content stream.  If the content
// stream is malformed, an error of type [*MalformedContentError] is
// returned.  In this case the XObject dictionary may already have been
// modified.
func Rewrite(r pdf.Getter, data []byte, resources pdf.Dict, hidden oc.NameSet) ([]byte, error) {
	xobjects, err := Prune(r, resources, hidden)
	if err != nil {
		return nil, err
	}
	f := &Filter{
		Table:  DefaultTable(),
		Getter: r,
		Hidden: hidden,
	}
	return f.Rewrite(data, resources, xobjects)
}

// Filter holds the settings for rewriting content streams.
// A Filter can be used concurrently by several goroutines.
type Filter struct {
	// Table classifies the operators.  If this is nil, [DefaultTable] is
	// used.
	Table *Table

	// Getter is used to resolve references in the resource dictionary.
	// This can be nil, if the resources contain no references.
	Getter pdf.Getter

	// Hidden is the set of layer names to remove.
	Hidden oc.NameSet
}

// Rewrite reads the content stream data and returns the data with all
// hidden content removed.  Invocations of the XObjects listed in xobjects
// are removed as well.  The resource dictionary is only read, never
// modified.
//
// If the content stream is malformed, an error of type
// [*MalformedContentError] is returned and no data.
func (f *Filter) Rewrite(data []byte, resources pdf.Dict, xobjects map[pdf.Name]bool) ([]byte, error) {
	rw := &rewriter{
		table:    f.Table,
		getter:   f.Getter,
		hidden:   f.Hidden,
		xobjects: xobjects,
	}
	if rw.table == nil {
		rw.table = DefaultTable()
	}
	if rw.getter == nil {
		rw.getter = noObjects{}
	}

	var err error
	rw.properties, err = pdf.Optional(pdf.GetDict(rw.getter, resources["Properties"]))
	if err != nil {
		return nil, err
	}

	s := content.NewScanner(bytes.NewReader(data))
	for {
		g, err := s.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &MalformedContentError{Err: err}
		}

		err = rw.process(g)
		if err != nil {
			return nil, err
		}
	}
	return rw.out.Bytes(), nil
}

// rewriter holds the state for rewriting a single content stream.
type rewriter struct {
	table      *Table
	getter     pdf.Getter
	hidden     oc.NameSet
	xobjects   map[pdf.Name]bool
	properties pdf.Dict

	// balance is the nesting depth of marked-content inside hidden
	// content.  Content is removed while balance > 0.
	balance int

	out bytes.Buffer
}

func (rw *rewriter) process(g content.Group) error {
	switch rw.table.Classify(g.Op) {
	case GraphicsState:
		return rw.emit(g)

	case XObjectInvoke:
		if len(g.Args) > 0 {
			if name, ok := g.Args[0].(pdf.Name); ok && rw.xobjects[name] {
				return nil
			}
		}

	case MarkedContent:
		switch g.Op {
		case content.OpBeginMarkedContentWithProperties:
			err := rw.beginMarkedContent(g)
			if err != nil {
				return err
			}
		case content.OpBeginMarkedContent:
			if rw.balance > 0 {
				rw.balance++
			}
		case content.OpEndMarkedContent:
			err := rw.emitVisible(g)
			if rw.balance > 0 {
				rw.balance--
			}
			return err
		}
	}

	return rw.emitVisible(g)
}

// beginMarkedContent updates the balance for a BDC operator.
func (rw *rewriter) beginMarkedContent(g content.Group) error {
	if rw.balance > 0 {
		rw.balance++
		return nil
	}

	if len(g.Args) < 2 {
		return nil
	}
	if tag, _ := g.Args[0].(pdf.Name); tag != "OC" {
		return nil
	}

	var group pdf.Object
	switch prop := g.Args[1].(type) {
	case pdf.Name:
		group = rw.properties[prop]
	case pdf.Dict:
		group = prop
	}
	isHidden, err := rw.hidden.Hides(rw.getter, group)
	if err != nil {
		return err
	}
	if isHidden {
		rw.balance++
	}
	return nil
}

// emitVisible writes g to the output, unless we are inside hidden content.
func (rw *rewriter) emitVisible(g content.Group) error {
	if rw.balance > 0 {
		return nil
	}
	return rw.emit(g)
}

func (rw *rewriter) emit(g content.Group) error {
	return g.Write(&rw.out)
}

// MalformedContentError indicates that a content stream could not be
// parsed.
type MalformedContentError struct {
	Err error
}

func (err *MalformedContentError) Error() string {
	return "malformed content stream: " + err.Err.Error()
}

func (err *MalformedContentError) Unwrap() error {
	return err.Err
}

// noObjects is a pdf.Getter for resources without indirect objects.
type noObjects struct{}

func (noObjects) Get(pdf.Reference) (pdf.Object, error) {
	return nil, nil
}
