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

import "seehuhn.de/go/layers/pdf"

// Operator names used in content streams.
const (
	// General Graphics State
	OpPushGraphicsState    pdf.Operator = "q"
	OpPopGraphicsState     pdf.Operator = "Q"
	OpTransform            pdf.Operator = "cm"
	OpSetLineWidth         pdf.Operator = "w"
	OpSetLineCap           pdf.Operator = "J"
	OpSetLineJoin          pdf.Operator = "j"
	OpSetMiterLimit        pdf.Operator = "M"
	OpSetLineDash          pdf.Operator = "d"
	OpSetRenderingIntent   pdf.Operator = "ri"
	OpSetFlatnessTolerance pdf.Operator = "i"
	OpSetExtGState         pdf.Operator = "gs"

	// Path Construction
	OpMoveTo    pdf.Operator = "m"
	OpLineTo    pdf.Operator = "l"
	OpCurveTo   pdf.Operator = "c"
	OpCurveToV  pdf.Operator = "v"
	OpCurveToY  pdf.Operator = "y"
	OpClosePath pdf.Operator = "h"
	OpRectangle pdf.Operator = "re"

	// Path Painting
	OpStroke                    pdf.Operator = "S"
	OpCloseAndStroke            pdf.Operator = "s"
	OpFill                      pdf.Operator = "f"
	OpFillCompat                pdf.Operator = "F"
	OpFillEvenOdd               pdf.Operator = "f*"
	OpFillAndStroke             pdf.Operator = "B"
	OpFillAndStrokeEvenOdd      pdf.Operator = "B*"
	OpCloseFillAndStroke        pdf.Operator = "b"
	OpCloseFillAndStrokeEvenOdd pdf.Operator = "b*"
	OpEndPath                   pdf.Operator = "n"

	// Clipping Paths
	OpClipNonZero pdf.Operator = "W"
	OpClipEvenOdd pdf.Operator = "W*"

	// Text Objects
	OpTextBegin pdf.Operator = "BT"
	OpTextEnd   pdf.Operator = "ET"

	// Text State
	OpTextSetCharacterSpacing  pdf.Operator = "Tc"
	OpTextSetWordSpacing       pdf.Operator = "Tw"
	OpTextSetHorizontalScaling pdf.Operator = "Tz"
	OpTextSetLeading           pdf.Operator = "TL"
	OpTextSetFont              pdf.Operator = "Tf"
	OpTextSetRenderingMode     pdf.Operator = "Tr"
	OpTextSetRise              pdf.Operator = "Ts"

	// Text Positioning
	OpTextMoveOffset           pdf.Operator = "Td"
	OpTextMoveOffsetSetLeading pdf.Operator = "TD"
	OpTextSetMatrix            pdf.Operator = "Tm"
	OpTextNextLine             pdf.Operator = "T*"

	// Text Showing
	OpTextShow                       pdf.Operator = "Tj"
	OpTextShowArray                  pdf.Operator = "TJ"
	OpTextShowMoveNextLine           pdf.Operator = "'"
	OpTextShowMoveNextLineSetSpacing pdf.Operator = "\""

	// Type 3 Fonts
	OpType3SetWidthOnly           pdf.Operator = "d0"
	OpType3SetWidthAndBoundingBox pdf.Operator = "d1"

	// Color Spaces
	OpSetStrokeColorSpace pdf.Operator = "CS"
	OpSetFillColorSpace   pdf.Operator = "cs"

	// Generic Color
	OpSetStrokeColor  pdf.Operator = "SC"
	OpSetStrokeColorN pdf.Operator = "SCN"
	OpSetFillColor    pdf.Operator = "sc"
	OpSetFillColorN   pdf.Operator = "scn"

	// Device Colors
	OpSetStrokeGray pdf.Operator = "G"
	OpSetFillGray   pdf.Operator = "g"
	OpSetStrokeRGB  pdf.Operator = "RG"
	OpSetFillRGB    pdf.Operator = "rg"
	OpSetStrokeCMYK pdf.Operator = "K"
	OpSetFillCMYK   pdf.Operator = "k"

	// Shading Patterns
	OpShading pdf.Operator = "sh"

	// XObjects
	OpXObject pdf.Operator = "Do"

	// Marked Content
	OpMarkedContentPoint               pdf.Operator = "MP"
	OpMarkedContentPointWithProperties pdf.Operator = "DP"
	OpBeginMarkedContent               pdf.Operator = "BMC"
	OpBeginMarkedContentWithProperties pdf.Operator = "BDC"
	OpEndMarkedContent                 pdf.Operator = "EMC"

	// Compatibility
	OpBeginCompatibility pdf.Operator = "BX"
	OpEndCompatibility   pdf.Operator = "EX"

	// Inline Images
	OpBeginInlineImage pdf.Operator = "BI"
	OpInlineImageData  pdf.Operator = "ID"
	OpEndInlineImage   pdf.Operator = "EI"
)
