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

package oc

import (
	"seehuhn.de/go/layers/pdf"
)

// Group represents an optional content group dictionary.
type Group struct {
	// Name is the name of the group, as shown in the user interface of PDF
	// viewers.
	Name string

	// Intent (optional) represents the intended use of the graphics in the group.
	// Common values include "View" and "Design". Default is ["View"].
	Intent []pdf.Name
}

// ExtractGroup extracts an optional content group from a PDF object.
//
// The Type entry of the dictionary is not checked, since many PDF writers
// omit it.  If the object is not a dictionary or has no valid Name entry,
// an error of type [*pdf.MalformedFileError] is returned.
func ExtractGroup(r pdf.Getter, obj pdf.Object) (*Group, error) {
	dict, err := pdf.GetDict(r, obj)
	if err != nil {
		return nil, err
	} else if dict == nil {
		return nil, pdf.Error("missing optional content group dictionary")
	}

	name, err := pdf.GetString(r, dict["Name"])
	if err != nil {
		return nil, pdf.Wrap(err, "optional content group name")
	} else if name == nil {
		return nil, pdf.Error("optional content group without name")
	}

	group := &Group{
		Name: name.AsTextString(),
	}

	switch intent := dict["Intent"].(type) {
	case pdf.Name:
		group.Intent = []pdf.Name{intent}
	case pdf.Array:
		for _, item := range intent {
			if name, ok := item.(pdf.Name); ok {
				group.Intent = append(group.Intent, name)
			}
		}
	}
	if len(group.Intent) == 0 {
		group.Intent = []pdf.Name{"View"}
	}

	return group, nil
}
