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

package pdfcpuio

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/layers/pdf"
)

// toNative converts a direct pdfcpu object.  Streams can only occur as
// indirect objects and are handled by the caller.
func toNative(obj types.Object) (pdf.Object, error) {
	switch obj := obj.(type) {
	case nil:
		return nil, nil
	case types.Boolean:
		return pdf.Boolean(obj), nil
	case types.Integer:
		return pdf.Integer(obj), nil
	case types.Float:
		return pdf.Real(obj), nil
	case types.Name:
		return pdf.Name(obj), nil
	case types.StringLiteral:
		b, err := types.Unescape(string(obj))
		if err != nil {
			return nil, err
		}
		return pdf.String(b), nil
	case types.HexLiteral:
		b, err := obj.Bytes()
		if err != nil {
			return nil, err
		}
		return pdf.String(b), nil
	case types.IndirectRef:
		return toNativeRef(obj), nil
	case *types.IndirectRef:
		if obj == nil {
			return nil, nil
		}
		return toNativeRef(*obj), nil
	case types.Array:
		res := make(pdf.Array, len(obj))
		for i, elem := range obj {
			x, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case types.Dict:
		return toNativeDict(obj)
	default:
		return nil, fmt.Errorf("unsupported object type %T", obj)
	}
}

func toNativeDict(d types.Dict) (pdf.Dict, error) {
	res := make(pdf.Dict, len(d))
	for key, val := range d {
		x, err := toNative(val)
		if err != nil {
			return nil, err
		}
		if x != nil {
			res[pdf.Name(key)] = x
		}
	}
	return res, nil
}

func toNativeRef(ref types.IndirectRef) pdf.Reference {
	return pdf.NewReference(uint32(ref.ObjectNumber.Value()), uint16(ref.GenerationNumber.Value()))
}

// fromNative converts a direct object to pdfcpu's object model.
// Strings are written as hex literals.
func fromNative(obj pdf.Object) (types.Object, error) {
	switch obj := obj.(type) {
	case nil:
		return nil, nil
	case pdf.Boolean:
		return types.Boolean(obj), nil
	case pdf.Integer:
		return types.Integer(obj), nil
	case pdf.Real:
		return types.Float(obj), nil
	case pdf.Name:
		return types.Name(obj), nil
	case pdf.String:
		return types.NewHexLiteral([]byte(obj)), nil
	case pdf.Reference:
		return *types.NewIndirectRef(int(obj.Number()), int(obj.Generation())), nil
	case pdf.Array:
		res := make(types.Array, len(obj))
		for i, elem := range obj {
			x, err := fromNative(elem)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return res, nil
	case pdf.Dict:
		return fromNativeDict(obj)
	default:
		return nil, fmt.Errorf("cannot convert %T to a direct object", obj)
	}
}

func fromNativeDict(d pdf.Dict) (types.Dict, error) {
	res := make(types.Dict, len(d))
	for key, val := range d {
		if val == nil {
			continue
		}
		x, err := fromNative(val)
		if err != nil {
			return nil, err
		}
		res[string(key)] = x
	}
	return res, nil
}
