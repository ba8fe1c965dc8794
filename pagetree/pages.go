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

// Package pagetree gives access to the pages of a PDF document.
package pagetree

import (
	"errors"

	"seehuhn.de/go/layers/pdf"
)

// Document is a PDF document which can be modified in place.
//
// Objects returned by Get can be modified directly; Put is needed only to
// replace an object by a different one.
type Document interface {
	pdf.Getter

	// Catalog returns the document catalog.
	Catalog() pdf.Dict

	// Put replaces the indirect object ref.
	Put(ref pdf.Reference, obj pdf.Object) error
}

// Page describes a page of a document.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Ref is the reference of the page object.  This is 0 if the page
	// object is not an indirect object.
	Ref pdf.Reference

	// Dict is the page dictionary.
	Dict pdf.Dict

	// Resources is the resource dictionary of the page, possibly
	// inherited from an ancestor in the page tree.  This is nil if the
	// page has no resources.  Pages may share the same resource
	// dictionary.
	Resources pdf.Dict
}

// Pages returns all pages of the document, in order.
//
// Page tree nodes without a Type entry are treated as intermediate nodes
// if they have a Kids entry, and as pages otherwise.  Loops in the page
// tree result in an error of type [*pdf.MalformedFileError].
func Pages(r pdf.Getter, catalog pdf.Dict) ([]*Page, error) {
	if catalog == nil {
		return nil, &pdf.MalformedFileError{Err: errNoCatalog}
	}

	type frame struct {
		node      pdf.Object
		resources pdf.Object
	}
	todo := []frame{{node: catalog["Pages"]}}
	seen := map[pdf.Reference]bool{}

	var res []*Page
	for len(todo) > 0 {
		k := len(todo) - 1
		f := todo[k]
		todo = todo[:k]

		ref, isRef := f.node.(pdf.Reference)
		if isRef {
			if seen[ref] {
				return nil, &pdf.MalformedFileError{
					Err: errInvalidPageTree,
					Loc: []string{"object " + ref.String()},
				}
			}
			seen[ref] = true
		}

		node, err := pdf.GetDict(r, f.node)
		if err != nil {
			return nil, pdf.Wrap(err, "page tree")
		} else if node == nil {
			return nil, &pdf.MalformedFileError{Err: errInvalidPageTree}
		}

		resources := f.resources
		if obj, ok := node["Resources"]; ok {
			resources = obj
		}

		tp, _ := node["Type"].(pdf.Name)
		_, hasKids := node["Kids"]
		if tp == "Pages" || tp == "" && hasKids {
			kids, err := pdf.GetArray(r, node["Kids"])
			if err != nil {
				return nil, pdf.Wrap(err, "page tree")
			}
			for i := len(kids) - 1; i >= 0; i-- {
				todo = append(todo, frame{node: kids[i], resources: resources})
			}
			continue
		}

		resDict, err := pdf.GetDict(r, resources)
		if err != nil {
			return nil, pdf.Wrap(err, "page resources")
		}
		page := &Page{
			Number:    len(res) + 1,
			Dict:      node,
			Resources: resDict,
		}
		if isRef {
			page.Ref = ref
		}
		res = append(res, page)
	}

	return res, nil
}

var (
	errNoCatalog       = errors.New("missing document catalog")
	errInvalidPageTree = errors.New("invalid page tree")
)
