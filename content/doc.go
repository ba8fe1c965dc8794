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

// Package content reads and writes PDF content streams.
//
// A content stream is a sequence of groups, each consisting of zero or more
// operands followed by an operator keyword.  [Scanner] splits a stream into
// groups without interpreting the operators, and [Group.Write] writes a
// group back in normalized form.
package content
