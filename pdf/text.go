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
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// AsTextString interprets x as a PDF "text string" and returns
// the corresponding utf-8 encoded string.
//
// Strings starting with a UTF-16BE byte order mark are decoded as UTF-16,
// strings starting with a UTF-8 byte order mark are returned without the
// mark, and all other strings are decoded using PDFDocEncoding.
func (x String) AsTextString() string {
	switch {
	case bytes.HasPrefix(x, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(x)
		if err != nil {
			return pdfDocDecode(x)
		}
		return string(out)
	case bytes.HasPrefix(x, []byte{0xEF, 0xBB, 0xBF}) && utf8.Valid(x[3:]):
		return string(x[3:])
	default:
		return pdfDocDecode(x)
	}
}

// TextString creates a String object using the "text string" encoding,
// i.e. using PDFDocEncoding where possible and UTF-16BE (with a byte order
// mark) otherwise.
func TextString(s string) String {
	if enc, ok := pdfDocEncode(s); ok {
		return enc
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		// invalid utf-8 in s
		return String(s)
	}
	return String(out)
}

func pdfDocDecode(s String) string {
	plain := true
	for _, c := range s {
		if c >= 0x80 || pdfDocDecodeTable[c] != rune(c) {
			plain = false
			break
		}
	}
	if plain {
		return string(s)
	}

	b := &strings.Builder{}
	for _, c := range s {
		b.WriteRune(pdfDocDecodeTable[c])
	}
	return b.String()
}

func pdfDocEncode(s string) (String, bool) {
	res := make(String, 0, len(s))
	for _, r := range s {
		c, ok := pdfDocEncodeTable[r]
		if !ok {
			return nil, false
		}
		res = append(res, c)
	}
	return res, true
}

var pdfDocEncodeTable = func() map[rune]byte {
	m := make(map[rune]byte, 256)
	for i, r := range pdfDocDecodeTable {
		if r != utf8.RuneError {
			m[r] = byte(i)
		}
	}
	return m
}()

// pdfDocDecodeTable maps PDFDocEncoding codes to unicode.  Undefined codes
// map to utf8.RuneError.
var pdfDocDecodeTable = func() [256]rune {
	var t [256]rune
	for i := range t {
		t[i] = rune(i)
	}
	copy(t[0x18:0x20], []rune{
		'˘', 'ˇ', 'ˆ', '˙', '˝', '˛', '˚', '˜',
	})
	t[0x7f] = utf8.RuneError
	copy(t[0x80:0xa1], []rune{
		'•', '†', '‡', '…', '—', '–', 'ƒ', '⁄',
		'‹', '›', '−', '‰', '„', '“', '”', '‘',
		'’', '‚', '™', 'ﬁ', 'ﬂ', 'Ł', 'Œ', 'Š',
		'Ÿ', 'Ž', 'ı', 'ł', 'œ', 'š', 'ž', utf8.RuneError,
		'€',
	})
	t[0xad] = utf8.RuneError
	return t
}()
