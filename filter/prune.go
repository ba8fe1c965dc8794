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
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pdf"
)

// HiddenXObjects returns the names of all XObjects in the resource
// dictionary which belong to a hidden optional content group.
// The resource dictionary is not modified.
//
// An XObject is hidden if its OC entry refers to an optional content group
// with a name in hidden.  XObjects controlled by a membership dictionary
// are not hidden.  A missing XObject dictionary results in an empty set.
func HiddenXObjects(r pdf.Getter, resources pdf.Dict, hidden oc.NameSet) (map[pdf.Name]bool, error) {
	res := make(map[pdf.Name]bool)
	if len(hidden) == 0 || resources == nil {
		return res, nil
	}

	xobjects, err := pdf.Optional(pdf.GetDict(r, resources["XObject"]))
	if err != nil {
		return nil, err
	}
	names := maps.Keys(xobjects)
	slices.Sort(names)
	for _, name := range names {
		stm, err := pdf.Optional(pdf.GetStream(r, xobjects[name]))
		if err != nil {
			return nil, err
		} else if stm == nil {
			continue
		}

		isHidden, err := hidden.Hides(r, stm.Dict["OC"])
		if err != nil {
			return nil, pdf.Wrap(err, "XObject /"+string(name))
		}
		if isHidden {
			res[name] = true
		}
	}
	return res, nil
}

// Prune removes all hidden XObjects from the resource dictionary and
// returns their names.  The XObject dictionary is modified in place.
func Prune(r pdf.Getter, resources pdf.Dict, hidden oc.NameSet) (map[pdf.Name]bool, error) {
	names, err := HiddenXObjects(r, resources, hidden)
	if err != nil || len(names) == 0 {
		return names, err
	}

	xobjects, err := pdf.Optional(pdf.GetDict(r, resources["XObject"]))
	if err != nil {
		return nil, err
	}
	RemoveNames(xobjects, names)
	return names, nil
}

// RemoveNames deletes the given keys from dict.
func RemoveNames(dict pdf.Dict, names map[pdf.Name]bool) {
	for name := range names {
		delete(dict, name)
	}
}
