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

// Package pdfcpuio exposes a PDF file read by pdfcpu as a
// [pagetree.Document].
//
// All indirect objects of the file are converted into the object model of
// package pdf when the file is loaded.  Stream data is decoded lazily, when
// a stream is first read.  [Document.Sync] converts back every object which
// was modified since the file was loaded.
package pdfcpuio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/layers/pagetree"
	"seehuhn.de/go/layers/pdf"
)

// Document is a PDF document backed by a pdfcpu context.
type Document struct {
	*pdf.Memory

	ctx *model.Context

	// before holds the serialization of each object at load time.
	// For streams, only the stream dictionary is recorded.
	before  map[pdf.Reference]string
	streams map[pdf.Reference]*streamReader
}

var _ pagetree.Document = (*Document)(nil)

// Read reads the PDF file at path.
func Read(path string) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Load(ctx)
}

// Load converts the objects of a pdfcpu context.
func Load(ctx *model.Context) (*Document, error) {
	if ctx == nil || ctx.XRefTable == nil {
		return nil, errNoXRefTable
	}

	d := &Document{
		Memory:  pdf.NewMemory(),
		ctx:     ctx,
		before:  make(map[pdf.Reference]string),
		streams: make(map[pdf.Reference]*streamReader),
	}

	nums := maps.Keys(ctx.Table)
	slices.Sort(nums)
	for _, num := range nums {
		entry := ctx.Table[num]
		if num <= 0 || entry == nil || entry.Free {
			continue
		}
		gen := 0
		if entry.Generation != nil {
			gen = *entry.Generation
		}
		ref := pdf.NewReference(uint32(num), uint16(gen))

		obj := entry.Object
		if obj == nil {
			var err error
			obj, err = ctx.Dereference(*types.NewIndirectRef(num, gen))
			if err != nil {
				return nil, fmt.Errorf("object %d %d: %w", num, gen, err)
			}
		}

		var native pdf.Object
		switch obj := obj.(type) {
		case nil, types.ObjectStreamDict, types.XRefStreamDict:
			continue
		case types.StreamDict:
			dict, err := toNativeDict(obj.Dict)
			if err != nil {
				return nil, fmt.Errorf("object %d %d: %w", num, gen, err)
			}
			sd := obj
			r := &streamReader{sd: &sd}
			d.streams[ref] = r
			d.before[ref] = pdf.Format(dict)
			native = &pdf.Stream{Dict: dict, R: r}
		default:
			var err error
			native, err = toNative(obj)
			if err != nil {
				return nil, fmt.Errorf("object %d %d: %w", num, gen, err)
			}
			d.before[ref] = pdf.Format(native)
		}

		err := d.Put(ref, native)
		if err != nil {
			return nil, err
		}
	}

	if ctx.Root != nil {
		d.SetRoot(toNativeRef(*ctx.Root))
	}
	return d, nil
}

// Sync writes all modified objects back into the pdfcpu context.
// Streams whose data was replaced are re-encoded using their original
// filters.
func (d *Document) Sync() error {
	for _, ref := range d.Refs() {
		entry := d.ctx.Table[int(ref.Number())]
		if entry == nil || entry.Free {
			return fmt.Errorf("object %s: %w", ref, errNewObject)
		}

		obj, _ := d.Get(ref)
		switch obj := obj.(type) {
		case *pdf.Stream:
			orig := d.streams[ref]
			if orig == nil {
				return fmt.Errorf("object %s: %w", ref, errNewObject)
			}
			dictChanged := pdf.Format(obj.Dict) != d.before[ref]
			dataChanged := obj.R != io.Reader(orig)
			if !dictChanged && !dataChanged {
				continue
			}

			sd := *orig.sd
			if dictChanged {
				dict, err := fromNativeDict(obj.Dict)
				if err != nil {
					return fmt.Errorf("object %s: %w", ref, err)
				}
				sd.Dict = dict
			}
			if dataChanged {
				data := []byte{}
				if obj.R != nil {
					var err error
					data, err = io.ReadAll(obj.R)
					if err != nil {
						return fmt.Errorf("object %s: %w", ref, err)
					}
				}
				sd.Content = data
				err := sd.Encode()
				if err != nil {
					return fmt.Errorf("object %s: encoding stream: %w", ref, err)
				}
				length := int64(len(sd.Raw))
				sd.StreamLength = &length
				sd.StreamLengthObjNr = nil
				sd.Dict["Length"] = types.Integer(length)
			}
			entry.Object = sd

		default:
			if pdf.Format(obj) == d.before[ref] {
				continue
			}
			conv, err := fromNative(obj)
			if err != nil {
				return fmt.Errorf("object %s: %w", ref, err)
			}
			entry.Object = conv
		}
	}
	return nil
}

// WriteFile syncs the document and saves it to the file at path.
func (d *Document) WriteFile(path string) error {
	err := d.Sync()
	if err != nil {
		return err
	}
	return api.WriteContextFile(d.ctx, path)
}

// Write syncs the document and writes it to w.
func (d *Document) Write(w io.Writer) error {
	err := d.Sync()
	if err != nil {
		return err
	}
	return api.WriteContext(d.ctx, w)
}

// streamReader decodes the data of a pdfcpu stream on first use.
type streamReader struct {
	sd  *types.StreamDict
	r   *bytes.Reader
	err error
}

func (s *streamReader) load() error {
	if s.r != nil || s.err != nil {
		return s.err
	}
	if s.sd.Content == nil {
		err := s.sd.Decode()
		if err != nil {
			s.err = fmt.Errorf("decoding stream: %w", err)
			return s.err
		}
	}
	s.r = bytes.NewReader(s.sd.Content)
	return nil
}

func (s *streamReader) Read(p []byte) (int, error) {
	err := s.load()
	if err != nil {
		return 0, err
	}
	return s.r.Read(p)
}

func (s *streamReader) Seek(offset int64, whence int) (int64, error) {
	err := s.load()
	if err != nil {
		return 0, err
	}
	return s.r.Seek(offset, whence)
}

var (
	errNoXRefTable = errors.New("pdfcpu context without xref table")
	errNewObject   = errors.New("object not present in the original file")
)
