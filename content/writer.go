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
	"io"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/layers/pdf"
)

// Write writes the group to w in content stream syntax.  Every operand is
// followed by a single space, and the operator is followed by a newline.
func (g Group) Write(w io.Writer) error {
	if g.Op == OpBeginInlineImage {
		return g.writeInlineImage(w)
	}

	for _, arg := range g.Args {
		if err := pdf.WriteObject(w, arg); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, string(g.Op)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (g Group) writeInlineImage(w io.Writer) error {
	var dict pdf.Dict
	if len(g.Args) > 0 {
		dict, _ = g.Args[0].(pdf.Dict)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("BI\n"); err != nil {
		return err
	}
	keys := maps.Keys(dict)
	slices.Sort(keys)
	for _, key := range keys {
		if err := key.PDF(bw); err != nil {
			return err
		}
		if _, err := bw.WriteString(" "); err != nil {
			return err
		}
		if err := pdf.WriteObject(bw, dict[key]); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("ID\n"); err != nil {
		return err
	}
	if _, err := bw.Write(g.Data); err != nil {
		return err
	}
	if _, err := bw.WriteString("\nEI\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// Format returns the content stream representation of a sequence of groups.
func Format(groups ...Group) ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, g := range groups {
		if err := g.Write(buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
