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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/layers/pdf"
)

func TestExtractGroup(t *testing.T) {
	m := pdf.NewMemory()

	tests := []struct {
		name string
		obj  pdf.Object
		want *Group
	}{
		{
			name: "minimal",
			obj:  pdf.Dict{"Type": pdf.Name("OCG"), "Name": pdf.String("Layer1")},
			want: &Group{Name: "Layer1", Intent: []pdf.Name{"View"}},
		},
		{
			name: "without_type",
			obj:  pdf.Dict{"Name": pdf.String("Layer1")},
			want: &Group{Name: "Layer1", Intent: []pdf.Name{"View"}},
		},
		{
			name: "utf16_name",
			obj:  pdf.Dict{"Name": pdf.TextString("Ebene 日本")},
			want: &Group{Name: "Ebene 日本", Intent: []pdf.Name{"View"}},
		},
		{
			name: "single_intent",
			obj:  pdf.Dict{"Name": pdf.String("D"), "Intent": pdf.Name("Design")},
			want: &Group{Name: "D", Intent: []pdf.Name{"Design"}},
		},
		{
			name: "multiple_intents",
			obj: pdf.Dict{
				"Name":   pdf.String("D"),
				"Intent": pdf.Array{pdf.Name("View"), pdf.Name("Design")},
			},
			want: &Group{Name: "D", Intent: []pdf.Name{"View", "Design"}},
		},
		{
			name: "indirect",
			obj:  m.Add(pdf.Dict{"Name": m.Add(pdf.String("Ind"))}),
			want: &Group{Name: "Ind", Intent: []pdf.Name{"View"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractGroup(m, tt.obj)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("unexpected group (-want +got):\n%s", d)
			}
		})
	}
}

func TestExtractGroupMalformed(t *testing.T) {
	m := pdf.NewMemory()
	for _, obj := range []pdf.Object{
		nil,
		pdf.Integer(1),
		pdf.Dict{},
		pdf.Dict{"Name": pdf.Name("NotAString")},
		pdf.NewReference(100, 0),
	} {
		_, err := ExtractGroup(m, obj)
		if !pdf.IsMalformed(err) {
			t.Errorf("%s: expected malformed file error, got %v", pdf.Format(obj), err)
		}
	}
}

func TestNameSetHides(t *testing.T) {
	m := pdf.NewMemory()
	l1 := m.Add(pdf.Dict{"Type": pdf.Name("OCG"), "Name": pdf.String("Layer1")})
	l2 := m.Add(pdf.Dict{"Type": pdf.Name("OCG"), "Name": pdf.String("Layer2")})
	ocmd := m.Add(pdf.Dict{"Type": pdf.Name("OCMD"), "OCGs": pdf.Array{l1}})

	hidden := NewNameSet("Layer1")
	cases := []struct {
		obj  pdf.Object
		want bool
	}{
		{l1, true},
		{l2, false},
		{ocmd, false},
		{pdf.NewReference(99, 0), false},
		{nil, false},
	}
	for _, c := range cases {
		got, err := hidden.Hides(m, c.obj)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%s: got %t, want %t", pdf.Format(c.obj), got, c.want)
		}
	}

	if got, _ := NewNameSet().Hides(m, l1); got {
		t.Error("empty set hides a group")
	}
}

type errGetter struct{}

func (errGetter) Get(pdf.Reference) (pdf.Object, error) {
	return nil, errRead
}

var errRead = errors.New("read failed")

func TestNameSetHidesReadError(t *testing.T) {
	_, err := NewNameSet("L").Hides(errGetter{}, pdf.NewReference(1, 0))
	if err != errRead {
		t.Errorf("got %v, want %v", err, errRead)
	}
}

func TestNames(t *testing.T) {
	s := NewNameSet("b", "a", "c", "a")
	if d := cmp.Diff([]string{"a", "b", "c"}, s.Names()); d != "" {
		t.Errorf("unexpected names (-want +got):\n%s", d)
	}
}
