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
	"strconv"
	"sync"

	"seehuhn.de/go/layers/content"
	"seehuhn.de/go/layers/pdf"
)

// Category describes how the stream filter treats an operator.
type Category int

// These are the operator categories.
const (
	Default Category = iota
	PathPainting
	GraphicsState
	XObjectInvoke
	InlineImage
	TextState
	MarkedContent
)

func (c Category) String() string {
	switch c {
	case Default:
		return "Default"
	case PathPainting:
		return "PathPainting"
	case GraphicsState:
		return "GraphicsState"
	case XObjectInvoke:
		return "XObjectInvoke"
	case InlineImage:
		return "InlineImage"
	case TextState:
		return "TextState"
	case MarkedContent:
		return "MarkedContent"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// Table maps content stream operators to categories.  Operators not in
// the table have category [Default].
//
// A Table is populated once, by the first call to [Table.Build] (or
// [Table.Classify]), and is read-only afterwards.  It is safe for
// concurrent use.
type Table struct {
	once sync.Once
	ops  map[pdf.Operator]Category
}

// NewTable returns a new, populated operator table.
func NewTable() *Table {
	t := &Table{}
	t.Build()
	return t
}

var defaultTable = sync.OnceValue(NewTable)

// DefaultTable returns the operator table shared by all filters which
// don't specify their own table.
func DefaultTable() *Table {
	return defaultTable()
}

// Build populates the table.  Calling Build on a populated table has no
// effect.
func (t *Table) Build() {
	t.once.Do(func() {
		t.ops = make(map[pdf.Operator]Category, len(tableEntries))
		for _, e := range tableEntries {
			for _, op := range e.ops {
				t.ops[op] = e.cat
			}
		}
	})
}

// Classify returns the category of the given operator.
func (t *Table) Classify(op pdf.Operator) Category {
	t.Build()
	return t.ops[op]
}

// Len returns the number of operators in the table.
func (t *Table) Len() int {
	t.Build()
	return len(t.ops)
}

// tableEntries lists the operators of every category.  Entries are added
// in order, so "ID" ends up with category TextState.
var tableEntries = []struct {
	cat Category
	ops []pdf.Operator
}{
	{PathPainting, []pdf.Operator{
		content.OpMoveTo,
		content.OpLineTo,
		content.OpCurveTo,
		content.OpCurveToV,
		content.OpCurveToY,
		content.OpClosePath,
		content.OpRectangle,
		content.OpStroke,
		content.OpCloseAndStroke,
		content.OpFill,
		content.OpFillCompat,
		content.OpFillEvenOdd,
		content.OpFillAndStroke,
		content.OpFillAndStrokeEvenOdd,
		content.OpCloseFillAndStroke,
		content.OpCloseFillAndStrokeEvenOdd,
		content.OpEndPath,
		content.OpClipNonZero,
		content.OpClipEvenOdd,
	}},
	{GraphicsState, []pdf.Operator{
		content.OpPushGraphicsState,
		content.OpPopGraphicsState,
		content.OpSetLineWidth,
		content.OpSetLineCap,
		content.OpSetLineJoin,
		content.OpSetMiterLimit,
		content.OpSetLineDash,
		content.OpSetRenderingIntent,
		content.OpSetFlatnessTolerance,
		content.OpSetExtGState,
		content.OpTransform,
		content.OpSetFillGray,
		content.OpSetStrokeGray,
		content.OpSetFillRGB,
		content.OpSetStrokeRGB,
		content.OpSetFillCMYK,
		content.OpSetStrokeCMYK,
		content.OpSetFillColorSpace,
		content.OpSetStrokeColorSpace,
		content.OpSetFillColor,
		content.OpSetStrokeColor,
		content.OpSetFillColorN,
		content.OpSetStrokeColorN,
		content.OpShading,
	}},
	{XObjectInvoke, []pdf.Operator{
		content.OpXObject,
	}},
	{InlineImage, []pdf.Operator{
		content.OpBeginInlineImage,
		content.OpInlineImageData,
		content.OpEndInlineImage,
	}},
	{TextState, []pdf.Operator{
		content.OpTextBegin,
		content.OpTextEnd,
		content.OpTextSetCharacterSpacing,
		content.OpTextSetWordSpacing,
		content.OpTextSetHorizontalScaling,
		content.OpTextSetLeading,
		content.OpTextSetFont,
		content.OpTextSetRenderingMode,
		content.OpTextSetRise,
		content.OpTextMoveOffset,
		content.OpTextMoveOffsetSetLeading,
		content.OpTextSetMatrix,
		content.OpTextNextLine,
		content.OpTextShow,
		content.OpTextShowMoveNextLine,
		content.OpTextShowMoveNextLineSetSpacing,
		content.OpTextShowArray,
		content.OpInlineImageData,
	}},
	{MarkedContent, []pdf.Operator{
		content.OpBeginMarkedContent,
		content.OpBeginMarkedContentWithProperties,
		content.OpEndMarkedContent,
	}},
}
