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

package content

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/layers/pdf"
)

// Group is one content stream instruction: an operator together with the
// operands which precede it.
//
// Inline images are represented by a single group with operator "BI".  In
// this case Args holds the image dictionary and Data the image data found
// between "ID" and "EI".
type Group struct {
	Args []pdf.Object
	Op   pdf.Operator
	Data []byte
}

// Scanner breaks a content stream into groups.
type Scanner struct {
	src *bufio.Reader

	line   int // 0-based
	col    int // 0-based
	crSeen bool

	// err is the first error returned by Next.
	err error
}

// NewScanner returns a new scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		src: bufio.NewReader(r),
	}
}

// Next returns the next group from the content stream.
//
// At the end of the stream, Next returns io.EOF.  Invalid content stream
// syntax is reported as an error of type [*SyntaxError].  Once an error
// has been returned, all subsequent calls return the same error.
func (s *Scanner) Next() (Group, error) {
	if s.err != nil {
		return Group{}, s.err
	}
	g, err := s.next()
	if err != nil {
		s.err = err
		return Group{}, err
	}
	return g, nil
}

func (s *Scanner) next() (Group, error) {
	var args []pdf.Object
	for {
		tok, err := s.readToken()
		if err == io.EOF {
			if len(args) > 0 {
				return Group{}, s.errorf("%d operands without operator", len(args))
			}
			return Group{}, io.EOF
		} else if err != nil {
			return Group{}, err
		}

		op, isOp := tok.(pdf.Operator)
		if isOp {
			switch op {
			case "[", "<<", "]", ">>":
				// delimiters, handled below
			case OpBeginInlineImage:
				if len(args) > 0 {
					return Group{}, s.errorf("unexpected operands for BI")
				}
				return s.readInlineImage()
			default:
				return Group{Args: args, Op: op}, nil
			}
		}

		obj, err := s.complete(tok)
		if err != nil {
			return Group{}, err
		}
		args = append(args, obj)
	}
}

// complete finishes reading an object which starts with the given token.
func (s *Scanner) complete(tok pdf.Object) (pdf.Object, error) {
	switch tok {
	case pdf.Operator("["):
		return s.readArray()
	case pdf.Operator("<<"):
		return s.readDict()
	case pdf.Operator("]"), pdf.Operator(">>"):
		return nil, s.errorf("unexpected %q", tok)
	}
	return tok, nil
}

func (s *Scanner) readArray() (pdf.Array, error) {
	arr := pdf.Array{}
	for {
		tok, err := s.readToken()
		if err != nil {
			return nil, s.unexpectedEOF(err)
		}
		if tok == pdf.Operator("]") {
			return arr, nil
		}
		if op, isOp := tok.(pdf.Operator); isOp && op != "[" && op != "<<" {
			return nil, s.errorf("unexpected %q in array", op)
		}
		obj, err := s.complete(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

func (s *Scanner) readDict() (pdf.Dict, error) {
	dict := pdf.Dict{}
	for {
		tok, err := s.readToken()
		if err != nil {
			return nil, s.unexpectedEOF(err)
		}
		if tok == pdf.Operator(">>") {
			return dict, nil
		}
		key, ok := tok.(pdf.Name)
		if !ok {
			return nil, s.errorf("invalid dictionary key %s", pdf.Format(tok))
		}

		val, err := s.readValue()
		if err != nil {
			return nil, err
		}
		if val != nil {
			dict[key] = val
		}
	}
}

// readValue reads a dictionary value.
func (s *Scanner) readValue() (pdf.Object, error) {
	tok, err := s.readToken()
	if err != nil {
		return nil, s.unexpectedEOF(err)
	}
	if op, isOp := tok.(pdf.Operator); isOp && op != "[" && op != "<<" {
		return nil, s.errorf("unexpected %q in dictionary", op)
	}
	return s.complete(tok)
}

// readToken reads the next token.  Numbers, strings, names, booleans and
// null are returned as the corresponding PDF objects.  Keywords and the
// delimiters "[", "]", "<<" and ">>" are returned as [pdf.Operator] values.
func (s *Scanner) readToken() (pdf.Object, error) {
	err := s.skipWhiteSpace()
	if err != nil {
		return nil, err
	}
	b, err := s.peek()
	if err != nil {
		return nil, err
	}

	switch b {
	case '(':
		return s.readString()
	case '<':
		if bytes.Equal(s.peekN(2), []byte("<<")) {
			s.skip(2)
			return pdf.Operator("<<"), nil
		}
		return s.readHexString()
	case '>':
		if bytes.Equal(s.peekN(2), []byte(">>")) {
			s.skip(2)
			return pdf.Operator(">>"), nil
		}
		return nil, s.errorf("unexpected '>'")
	case '[', ']', '{', '}':
		s.skip(1)
		return pdf.Operator([]byte{b}), nil
	case ')':
		return nil, s.errorf("unexpected ')'")
	case '/':
		s.skip(1)
		return s.readName()
	}

	var word []byte
	for {
		b, err := s.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if class[b] != regular {
			break
		}
		s.skip(1)
		word = append(word, b)
	}

	if x, ok := parseNumber(word); ok {
		return x, nil
	}
	switch string(word) {
	case "true":
		return pdf.Boolean(true), nil
	case "false":
		return pdf.Boolean(false), nil
	case "null":
		return nil, nil
	}
	return pdf.Operator(word), nil
}

func (s *Scanner) readString() (pdf.String, error) {
	s.skip(1) // '('

	var res []byte
	bracketLevel := 1
	ignoreLF := false
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, s.unexpectedEOF(err)
		}
		if ignoreLF && b == '\n' {
			ignoreLF = false
			continue
		}
		ignoreLF = false

		switch b {
		case '(':
			bracketLevel++
		case ')':
			bracketLevel--
			if bracketLevel == 0 {
				return pdf.String(res), nil
			}
		case '\r':
			// end-of-line markers in literal strings are read as LF
			b = '\n'
			ignoreLF = true
		case '\\':
			b, err = s.readByte()
			if err != nil {
				return nil, s.unexpectedEOF(err)
			}
			switch b {
			case 'n':
				b = '\n'
			case 'r':
				b = '\r'
			case 't':
				b = '\t'
			case 'b':
				b = '\b'
			case 'f':
				b = '\f'
			case '\n':
				continue
			case '\r':
				ignoreLF = true
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for range 2 {
					c, err := s.peek()
					if err != nil && err != io.EOF {
						return nil, err
					}
					if err == io.EOF || c < '0' || c > '7' {
						break
					}
					s.skip(1)
					oct = oct*8 + (c - '0')
				}
				b = oct
			}
		}
		res = append(res, b)
	}
}

func (s *Scanner) readHexString() (pdf.String, error) {
	s.skip(1) // '<'

	var res []byte
	first := true
	var hi byte
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, s.unexpectedEOF(err)
		}
		var lo byte
		switch {
		case b == '>':
			if !first {
				res = append(res, hi)
			}
			return pdf.String(res), nil
		case class[b] == space:
			continue
		case b >= '0' && b <= '9':
			lo = b - '0'
		case b >= 'A' && b <= 'F':
			lo = b - 'A' + 10
		case b >= 'a' && b <= 'f':
			lo = b - 'a' + 10
		default:
			return nil, s.errorf("invalid hex digit %q", b)
		}
		if first {
			hi = lo << 4
		} else {
			res = append(res, hi|lo)
		}
		first = !first
	}
}

// readName reads a PDF name object (without the leading slash).
// A '#' which is not followed by two hex digits is kept as is.
func (s *Scanner) readName() (pdf.Name, error) {
	var name []byte
	for {
		b, err := s.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if class[b] != regular {
			break
		}
		s.skip(1)

		if b == '#' {
			if x, ok := hexByte(s.peekN(2)); ok {
				s.skip(2)
				b = x
			}
		}
		name = append(name, b)
	}
	return pdf.Name(name), nil
}

func hexByte(buf []byte) (byte, bool) {
	if len(buf) < 2 {
		return 0, false
	}
	var x byte
	for _, c := range buf[:2] {
		switch {
		case c >= '0' && c <= '9':
			x = x<<4 | (c - '0')
		case c >= 'A' && c <= 'F':
			x = x<<4 | (c - 'A' + 10)
		case c >= 'a' && c <= 'f':
			x = x<<4 | (c - 'a' + 10)
		default:
			return 0, false
		}
	}
	return x, true
}

// readInlineImage reads the image dictionary and the image data of an
// inline image.  The "BI" operator has already been consumed.
func (s *Scanner) readInlineImage() (Group, error) {
	dict := pdf.Dict{}
	for {
		tok, err := s.readToken()
		if err != nil {
			return Group{}, s.unexpectedEOF(err)
		}
		if tok == OpInlineImageData {
			break
		}
		key, ok := tok.(pdf.Name)
		if !ok {
			return Group{}, s.errorf("invalid inline image key %s", pdf.Format(tok))
		}
		val, err := s.readValue()
		if err != nil {
			return Group{}, err
		}
		if val != nil {
			dict[key] = val
		}
	}

	// "ID" is followed by a single white-space character
	if b, err := s.peek(); err == nil && class[b] == space {
		s.skip(1)
	}

	var data []byte
	length := inlineImageLength(dict)
	if length >= 0 {
		data = make([]byte, 0, min(length, maxInlinePrealloc))
		for range length {
			b, err := s.readByte()
			if err != nil {
				return Group{}, s.unexpectedEOF(err)
			}
			data = append(data, b)
		}
		err := s.skipWhiteSpace()
		if err != nil && err != io.EOF {
			return Group{}, err
		}
		if !s.atEI() {
			return Group{}, s.errorf("missing EI after inline image data")
		}
	} else if !s.atEI() {
		for {
			b, err := s.readByte()
			if err == io.EOF {
				return Group{}, s.errorf("missing EI after inline image data")
			} else if err != nil {
				return Group{}, err
			}
			if class[b] == space && s.atEI() {
				break
			}
			data = append(data, b)
		}
	}
	s.skip(2) // "EI"

	return Group{
		Args: []pdf.Object{dict},
		Op:   OpBeginInlineImage,
		Data: data,
	}, nil
}

// maxInlinePrealloc limits the buffer allocated up front for inline image
// data.  Longer data grows the buffer as it is read.
const maxInlinePrealloc = 64 << 10

// inlineImageLength returns the value of the L or Length entry of an
// inline image dictionary, or -1 if no valid length is given.
func inlineImageLength(dict pdf.Dict) int {
	val, ok := dict["L"]
	if !ok {
		val = dict["Length"]
	}
	if x, ok := val.(pdf.Integer); ok && x >= 0 && x <= math.MaxInt32 {
		return int(x)
	}
	return -1
}

// atEI reports whether the input continues with the keyword "EI", followed
// by white space, a delimiter or the end of input.
func (s *Scanner) atEI() bool {
	buf := s.peekN(3)
	if len(buf) < 2 || buf[0] != 'E' || buf[1] != 'I' {
		return false
	}
	return len(buf) == 2 || class[buf[2]] != regular
}

// skipWhiteSpace skips all input (including comments) until a non-whitespace
// character is found.
func (s *Scanner) skipWhiteSpace() error {
	inComment := false
	for {
		b, err := s.peek()
		if err != nil {
			return err
		}
		switch {
		case b == '\n' || b == '\r':
			inComment = false
		case inComment || class[b] == space:
			// skip
		case b == '%':
			inComment = true
		default:
			return nil
		}
		s.skip(1)
	}
}

func (s *Scanner) peek() (byte, error) {
	buf, err := s.src.Peek(1)
	if len(buf) == 0 {
		return 0, err
	}
	return buf[0], nil
}

// peekN returns up to n bytes of look-ahead.  Fewer bytes are returned
// near the end of input.
func (s *Scanner) peekN(n int) []byte {
	buf, _ := s.src.Peek(n)
	return buf
}

func (s *Scanner) skip(n int) {
	for range n {
		if _, err := s.readByte(); err != nil {
			return
		}
	}
}

// readByte returns the next byte from the input stream.
// The function updates the line and column numbers.
func (s *Scanner) readByte() (byte, error) {
	b, err := s.src.ReadByte()
	if err != nil {
		return 0, err
	}

	if s.crSeen && b == '\n' {
		// LF after CR ends the same line
	} else if b == '\n' || b == '\r' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.crSeen = b == '\r'

	return b, nil
}

// parseNumber returns [pdf.Integer] or [pdf.Real] if s is a valid number.
func parseNumber(s []byte) (pdf.Object, bool) {
	if len(s) == 0 {
		return nil, false
	}

	x, err := strconv.ParseInt(string(s), 10, 64)
	if err == nil {
		return pdf.Integer(x), true
	}

	for i, c := range s {
		if i == 0 && (c == '+' || c == '-') || c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			return nil, false
		}
	}
	y, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		return nil, false
	}
	return pdf.Real(y), true
}

// SyntaxError reports invalid content stream syntax.  Line and Col give
// the 0-based position where the error was detected.
type SyntaxError struct {
	Line, Col int
	Err       error
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("content stream %d:%d: %v", err.Line+1, err.Col+1, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &SyntaxError{
		Line: s.line,
		Col:  s.col,
		Err:  fmt.Errorf(format, args...),
	}
}

func (s *Scanner) unexpectedEOF(err error) error {
	if err != io.EOF {
		return err
	}
	return &SyntaxError{Line: s.line, Col: s.col, Err: io.ErrUnexpectedEOF}
}

type characterClass byte

const (
	regular characterClass = iota
	space
	delimiter
)

var class = func() [256]characterClass {
	var c [256]characterClass
	for _, b := range []byte{0, '\t', '\n', '\f', '\r', ' '} {
		c[b] = space
	}
	for _, b := range []byte("()<>[]{}/%") {
		c[b] = delimiter
	}
	return c
}()
