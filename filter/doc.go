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

// Package filter removes hidden optional content from page content streams.
//
// The package has three parts.  The operator table ([Table]) assigns a
// [Category] to every content stream operator.  The XObject pruner
// ([Prune], [HiddenXObjects]) finds XObjects in a resource dictionary which
// belong to a hidden optional content group.  The stream filter
// ([Rewrite], [Filter.Rewrite]) reads a content stream and writes back
// every operator which is not part of hidden content.
//
// Content is hidden if it is enclosed in a marked-content sequence
//
//	/OC /Name BDC ... EMC
//
// where /Name refers to an optional content group in the Properties
// resource dictionary, and the group's name is in the set of hidden layer
// names.  Marked-content sequences nested inside hidden content are hidden
// as well.  Graphics state operators are always kept, so that the state
// after a removed sequence is unchanged.
package filter
