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
	"strings"
)

// MalformedFileError indicates that a PDF file or a PDF object could not be
// interpreted.  Loc, if non-empty, lists the objects which were being
// processed, from the outermost to the innermost.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	msg := "malformed PDF object"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if len(err.Loc) > 0 {
		msg += " (" + strings.Join(err.Loc, ", ") + ")"
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Wrap adds location information to an error.  Errors of type
// [*MalformedFileError] get loc prepended to their location list, other
// errors are returned unchanged.
func Wrap(err error, loc string) error {
	var mf *MalformedFileError
	if !errors.As(err, &mf) {
		return err
	}
	return &MalformedFileError{
		Err: mf.Err,
		Loc: append([]string{loc}, mf.Loc...),
	}
}

// Error returns a new [*MalformedFileError] with the given message.
func Error(msg string) error {
	return &MalformedFileError{Err: errors.New(msg)}
}

// IsMalformed reports whether err is, or wraps, a [*MalformedFileError].
func IsMalformed(err error) bool {
	var mf *MalformedFileError
	return errors.As(err, &mf)
}

// Optional turns errors of type [*MalformedFileError] into a zero value
// without error.  This is used for optional entries, where malformed data
// is treated like absent data.  Other errors are returned unchanged.
func Optional[T any](x T, err error) (T, error) {
	if IsMalformed(err) {
		var zero T
		return zero, nil
	}
	return x, err
}
