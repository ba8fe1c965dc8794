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
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pagetree"
	"seehuhn.de/go/layers/pdf"
)

// updatePage installs the rewritten content of a page and removes the
// hidden resources and annotations.
func (rm *Remover) updatePage(doc pagetree.Document, job *pageJob, names oc.NameSet, report *Report) error {
	page := job.page

	err := pagetree.SetContents(doc, page.Dict, job.out)
	if err != nil {
		return err
	}

	if page.Resources != nil {
		xobjects, err := pdf.Optional(pdf.GetDict(doc, page.Resources["XObject"]))
		if err != nil {
			return err
		}
		for name := range job.xobjects {
			if _, present := xobjects[name]; present {
				delete(xobjects, name)
				report.XObjects++
			}
		}

		n, err := removeProperties(doc, page.Resources, names)
		if err != nil {
			return err
		}
		report.Properties += n
	}

	n, err := removeAnnots(doc, page.Dict, names)
	if err != nil {
		return err
	}
	report.Annots += n

	// PieceInfo may hold private data for the old page content
	delete(page.Dict, "PieceInfo")

	return nil
}

// removeProperties deletes all entries of the Properties resource
// dictionary which refer to a hidden optional content group.
func removeProperties(r pdf.Getter, resources pdf.Dict, names oc.NameSet) (int, error) {
	props, err := pdf.Optional(pdf.GetDict(r, resources["Properties"]))
	if err != nil {
		return 0, err
	}

	count := 0
	keys := maps.Keys(props)
	slices.Sort(keys)
	for _, key := range keys {
		hidden, err := names.Hides(r, props[key])
		if err != nil {
			return count, err
		}
		if hidden {
			delete(props, key)
			count++
		}
	}
	return count, nil
}

// removeAnnots removes all annotations of a page which belong to a hidden
// optional content group.
func removeAnnots(doc pagetree.Document, page pdf.Dict, names oc.NameSet) (int, error) {
	annots, err := pdf.Optional(pdf.GetArray(doc, page["Annots"]))
	if err != nil || len(annots) == 0 {
		return 0, err
	}

	keep := make(pdf.Array, 0, len(annots))
	for _, obj := range annots {
		annot, err := pdf.Optional(pdf.GetDict(doc, obj))
		if err != nil {
			return 0, err
		}
		if annot != nil {
			hidden, err := names.Hides(doc, annot["OC"])
			if err != nil {
				return 0, err
			}
			if hidden {
				continue
			}
		}
		keep = append(keep, obj)
	}

	removed := len(annots) - len(keep)
	if removed == 0 {
		return 0, nil
	}
	return removed, setArray(doc, page, "Annots", keep)
}

// removeGroups removes hidden optional content groups from the optional
// content properties of the document catalog.  The groups are removed from
// the OCGs array, and from the ON, OFF and Locked arrays of the default
// configuration.  The Order and AS entries of the default configuration
// are removed, since they may refer to the removed groups.
func removeGroups(doc pagetree.Document, catalog pdf.Dict, names oc.NameSet, report *Report) error {
	props, err := pdf.Optional(pdf.GetDict(doc, catalog["OCProperties"]))
	if err != nil || props == nil {
		return err
	}

	n, err := removeFromArray(doc, props, "OCGs", names)
	if err != nil {
		return err
	}
	report.Groups += n

	d, err := pdf.Optional(pdf.GetDict(doc, props["D"]))
	if err != nil || d == nil {
		return err
	}
	for _, key := range []pdf.Name{"ON", "OFF", "Locked"} {
		_, err := removeFromArray(doc, d, key, names)
		if err != nil {
			return err
		}
	}
	delete(d, "Order")
	delete(d, "AS")

	return nil
}

// removeFromArray removes all hidden groups from the array dict[key] and
// returns the number of groups removed.
func removeFromArray(doc pagetree.Document, dict pdf.Dict, key pdf.Name, names oc.NameSet) (int, error) {
	arr, err := pdf.Optional(pdf.GetArray(doc, dict[key]))
	if err != nil || arr == nil {
		return 0, err
	}

	keep := make(pdf.Array, 0, len(arr))
	for _, obj := range arr {
		hidden, err := names.Hides(doc, obj)
		if err != nil {
			return 0, err
		}
		if !hidden {
			keep = append(keep, obj)
		}
	}

	removed := len(arr) - len(keep)
	if removed == 0 {
		return 0, nil
	}
	return removed, setArray(doc, dict, key, keep)
}

// setArray stores arr as dict[key].  If the old value was a reference to
// an indirect object, the indirect object is replaced instead.
func setArray(doc pagetree.Document, dict pdf.Dict, key pdf.Name, arr pdf.Array) error {
	if ref, ok := dict[key].(pdf.Reference); ok {
		return doc.Put(ref, arr)
	}
	dict[key] = arr
	return nil
}
