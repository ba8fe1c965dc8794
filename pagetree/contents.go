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

package pagetree

import (
	"bytes"
	"errors"
	"io"

	"seehuhn.de/go/layers/pdf"
)

// ReadContents returns the content stream data of a page.
//
// If the Contents entry is an array, the data of all streams is returned,
// separated by newline characters.  If the Contents entry is absent, null,
// or an empty array, no data is returned.
//
// The streams can be read again afterwards: readers implementing
// io.Seeker are rewound, all other readers are replaced by a reader for
// the same data.
func ReadContents(r pdf.Getter, page pdf.Dict) ([]byte, error) {
	contents, err := pdf.Resolve(r, page["Contents"])
	if err != nil {
		return nil, err
	}

	var a pdf.Array
	switch contents := contents.(type) {
	case nil:
		return nil, nil
	case pdf.Array:
		a = contents
	default:
		a = pdf.Array{contents}
	}

	buf := &bytes.Buffer{}
	first := true
	for _, obj := range a {
		stm, err := pdf.GetStream(r, obj)
		if err != nil {
			return nil, pdf.Wrap(err, "page contents")
		} else if stm == nil {
			continue
		}

		if !first {
			buf.WriteByte('\n')
		}
		first = false

		data, err := readStream(stm)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

func readStream(stm *pdf.Stream) ([]byte, error) {
	if stm.R == nil {
		return nil, nil
	}
	data, err := io.ReadAll(stm.R)
	if err != nil {
		return nil, err
	}
	if seeker, ok := stm.R.(io.Seeker); ok {
		_, err = seeker.Seek(0, io.SeekStart)
		if err != nil {
			return nil, err
		}
	} else {
		stm.R = bytes.NewReader(data)
	}
	return data, nil
}

// SetContents replaces the content stream data of a page.
//
// The data is stored in the first content stream of the page.  If the
// page has several content streams, the Contents entry of the page is
// changed to refer only to the first one.
func SetContents(r pdf.Getter, page pdf.Dict, data []byte) error {
	contents, err := pdf.Resolve(r, page["Contents"])
	if err != nil {
		return err
	}

	switch contents := contents.(type) {
	case *pdf.Stream:
		contents.R = bytes.NewReader(data)
		return nil
	case pdf.Array:
		for _, obj := range contents {
			stm, err := pdf.Optional(pdf.GetStream(r, obj))
			if err != nil {
				return err
			} else if stm == nil {
				continue
			}
			stm.R = bytes.NewReader(data)
			page["Contents"] = obj
			return nil
		}
	case nil:
	default:
		return &pdf.MalformedFileError{Err: errInvalidContents}
	}

	if len(data) > 0 {
		return errNoContentStream
	}
	// an empty page stays empty
	delete(page, "Contents")
	return nil
}

var (
	errInvalidContents = errors.New("invalid page contents")
	errNoContentStream = errors.New("page has no content stream")
)
