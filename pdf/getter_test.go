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

package pdf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	m := NewMemory()
	a := m.Add(Integer(42))
	b := m.Add(a)

	obj, err := Resolve(m, b)
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Errorf("got %v, want 42", obj)
	}

	// missing objects are null
	obj, err = Resolve(m, NewReference(999, 0))
	if err != nil || obj != nil {
		t.Errorf("got %v, %v, want nil, nil", obj, err)
	}
}

func TestResolveLoop(t *testing.T) {
	m := NewMemory()
	a := NewReference(1, 0)
	b := NewReference(2, 0)
	m.Put(a, b)
	m.Put(b, a)

	_, err := Resolve(m, a)
	var mf *MalformedFileError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MalformedFileError, got %v", err)
	}
}

func TestGetters(t *testing.T) {
	m := NewMemory()
	dict := Dict{"Name": TextString("Layer")}
	ref := m.Add(dict)

	got, err := GetDict(m, ref)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(dict, got); d != "" {
		t.Errorf("unexpected dict (-want +got):\n%s", d)
	}

	name, err := GetTextString(m, got["Name"])
	if err != nil || name != "Layer" {
		t.Errorf("got %q, %v", name, err)
	}

	_, err = GetStream(m, ref)
	if err == nil {
		t.Error("dict accepted as stream")
	}

	arr, err := GetArray(m, nil)
	if err != nil || arr != nil {
		t.Errorf("null: got %v, %v", arr, err)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(Error("bad"), "page 3")
	if err.Error() != "malformed PDF object: bad (page 3)" {
		t.Errorf("got %q", err.Error())
	}

	other := errors.New("other")
	if Wrap(other, "x") != other {
		t.Error("non-malformed error was modified")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	ref := m.Add(Dict{"Type": Name("Catalog")})
	m.SetRoot(ref)
	if m.Catalog()["Type"] != Name("Catalog") {
		t.Error("catalog not found")
	}

	err := m.Put(ref, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Catalog() != nil {
		t.Error("deleted catalog still present")
	}

	m.Put(NewReference(10, 0), Integer(1))
	next := m.Add(Integer(2))
	if next.Number() != 11 {
		t.Errorf("got object number %d, want 11", next.Number())
	}
	if d := cmp.Diff([]Reference{NewReference(10, 0), next}, m.Refs()); d != "" {
		t.Errorf("unexpected refs (-want +got):\n%s", d)
	}

	if err := m.Put(0, Integer(1)); err == nil {
		t.Error("reference 0 accepted")
	}
}

func TestOptional(t *testing.T) {
	m := NewMemory()
	ref := m.Add(Integer(1))

	d, err := Optional(GetDict(m, ref))
	if err != nil || d != nil {
		t.Errorf("got %v, %v, want nil, nil", d, err)
	}

	other := errors.New("read failed")
	_, err = Optional(Integer(0), other)
	if err != other {
		t.Errorf("got %v, want %v", err, other)
	}
}
