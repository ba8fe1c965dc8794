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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/pdf"
)

func TestHiddenXObjects(t *testing.T) {
	cases := []struct {
		hidden []string
		want   map[pdf.Name]bool
	}{
		{nil, map[pdf.Name]bool{}},
		{[]string{"Layer1"}, map[pdf.Name]bool{"Fm1": true}},
		{[]string{"Layer2"}, map[pdf.Name]bool{"Im1": true}},
		{[]string{"Layer1", "Layer2"}, map[pdf.Name]bool{"Fm1": true, "Im1": true}},
		{[]string{"Layer3"}, map[pdf.Name]bool{}},
	}
	for _, c := range cases {
		m, resources := testResources()
		got, err := HiddenXObjects(m, resources, oc.NewNameSet(c.hidden...))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%v: unexpected names (-want +got):\n%s", c.hidden, d)
		}

		// the mark phase does not modify the resources
		xobjects, _ := pdf.GetDict(m, resources["XObject"])
		if len(xobjects) != 3 {
			t.Errorf("%v: XObject dictionary modified", c.hidden)
		}
	}
}

func TestPrune(t *testing.T) {
	m, resources := testResources()
	got, err := Prune(m, resources, oc.NewNameSet("Layer1", "Layer2"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(map[pdf.Name]bool{"Fm1": true, "Im1": true}, got); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}

	xobjects, err := pdf.GetDict(m, resources["XObject"])
	if err != nil {
		t.Fatal(err)
	}
	var keys []pdf.Name
	for key := range xobjects {
		keys = append(keys, key)
	}
	if d := cmp.Diff([]pdf.Name{"Im2"}, keys); d != "" {
		t.Errorf("unexpected XObjects (-want +got):\n%s", d)
	}
}

func TestPruneWithoutXObjects(t *testing.T) {
	m := pdf.NewMemory()
	hidden := oc.NewNameSet("Layer1")
	for _, resources := range []pdf.Dict{
		nil,
		{},
		{"XObject": pdf.NewReference(77, 0)},
		{"XObject": pdf.Integer(3)},
		{"XObject": pdf.Dict{"X": pdf.Integer(1), "Y": pdf.NewReference(88, 0)}},
	} {
		got, err := Prune(m, resources, hidden)
		if err != nil {
			t.Errorf("%s: %v", pdf.Format(resources), err)
		}
		if len(got) != 0 {
			t.Errorf("%s: got %v", pdf.Format(resources), got)
		}
	}
}
