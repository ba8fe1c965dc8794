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
	"fmt"
)

// Getter gives access to the indirect objects of a PDF file.
//
// Get returns a nil object and no error if ref does not refer to an object
// in the file.  This matches the PDF rule that references to missing
// objects are treated as null.
type Getter interface {
	Get(ref Reference) (Object, error)
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function reads the corresponding object from
// r and returns the result.  If obj is not a [Reference], it is returned
// unchanged.  The function recursively follows chains of references until it
// resolves to a non-reference object.
//
// If a reference loop is encountered, the function returns an error of type
// [*MalformedFileError].
func Resolve(r Getter, obj Object) (Object, error) {
	origObj := obj

	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		count++
		if count > 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origObj.(Reference).String()},
			}
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	x, isCorrectType := obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, &MalformedFileError{
		Err: fmt.Errorf("expected %T but got %T", x, obj),
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to the
// desired type.  If the object is `null`, a zero object is returned without
// error.  If the object is of the wrong type, an error is returned.

// GetDict resolves references to indirect objects and makes sure the resulting
// object is a dictionary.
func GetDict(r Getter, obj Object) (Dict, error) {
	return resolveAndCast[Dict](r, obj)
}

// GetArray resolves references to indirect objects and makes sure the resulting
// object is an array.
func GetArray(r Getter, obj Object) (Array, error) {
	return resolveAndCast[Array](r, obj)
}

// GetName resolves references to indirect objects and makes sure the resulting
// object is a name.
func GetName(r Getter, obj Object) (Name, error) {
	return resolveAndCast[Name](r, obj)
}

// GetString resolves references to indirect objects and makes sure the resulting
// object is a string.
func GetString(r Getter, obj Object) (String, error) {
	return resolveAndCast[String](r, obj)
}

// GetInteger resolves references to indirect objects and makes sure the
// resulting object is an integer.
func GetInteger(r Getter, obj Object) (Integer, error) {
	return resolveAndCast[Integer](r, obj)
}

// GetStream resolves references to indirect objects and makes sure the
// resulting object is a stream.
func GetStream(r Getter, obj Object) (*Stream, error) {
	return resolveAndCast[*Stream](r, obj)
}

// GetTextString resolves references to indirect objects and makes sure the
// resulting object is a string.  The string is then decoded as a PDF "text
// string".
func GetTextString(r Getter, obj Object) (string, error) {
	s, err := GetString(r, obj)
	if err != nil {
		return "", err
	}
	return s.AsTextString(), nil
}
