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

// Package oc implements optional content groups ("layers") as far as needed
// to decide which parts of a PDF file belong to a hidden layer.
package oc

import (
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/layers/pdf"
)

// NameSet is a set of optional content group names.  Content which belongs
// to a group with one of these names is removed.
//
// A NameSet is not modified by the code in this module and can be shared
// between goroutines.
type NameSet map[string]struct{}

// NewNameSet returns a set containing the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the names in the set, in sorted order.
func (s NameSet) Names() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}

// Hides reports whether obj refers to an optional content group with a
// name in the set.
//
// Objects which are not valid group dictionaries, for example optional
// content membership dictionaries or dangling references, are never
// hidden.  Errors other than malformed data are returned to the caller.
func (s NameSet) Hides(r pdf.Getter, obj pdf.Object) (bool, error) {
	if len(s) == 0 || obj == nil {
		return false, nil
	}
	group, err := pdf.Optional(ExtractGroup(r, obj))
	if err != nil {
		return false, err
	} else if group == nil {
		return false, nil
	}
	return s.Contains(group.Name), nil
}
