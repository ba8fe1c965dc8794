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
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Memory is an in-memory store of indirect PDF objects.
// It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	objects map[Reference]Object
	next    uint32
	root    Reference
}

// NewMemory returns a new, empty object store.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[Reference]Object),
		next:    1,
	}
}

// Get implements the [Getter] interface.
func (m *Memory) Get(ref Reference) (Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objects[ref], nil
}

// Put stores obj under the given reference.  Storing nil removes the object.
func (m *Memory) Put(ref Reference, obj Object) error {
	if ref.Number() == 0 {
		return errInvalidReference
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if obj == nil {
		delete(m.objects, ref)
		return nil
	}
	m.objects[ref] = obj
	if ref.Number() >= m.next {
		m.next = ref.Number() + 1
	}
	return nil
}

// Add stores obj under a newly allocated reference and returns the
// reference.
func (m *Memory) Add(obj Object) Reference {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref := NewReference(m.next, 0)
	m.next++
	m.objects[ref] = obj
	return ref
}

// Refs returns the references of all objects in the store, in increasing
// order.
func (m *Memory) Refs() []Reference {
	m.mu.RLock()
	defer m.mu.RUnlock()
	refs := maps.Keys(m.objects)
	slices.Sort(refs)
	return refs
}

// SetRoot sets the reference of the document catalog.
func (m *Memory) SetRoot(ref Reference) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = ref
}

// Root returns the reference of the document catalog, or 0 if no catalog
// has been set.
func (m *Memory) Root() Reference {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// Catalog returns the document catalog.  If no catalog has been set, or if
// the root object is not a dictionary, nil is returned.
func (m *Memory) Catalog() Dict {
	m.mu.RLock()
	defer m.mu.RUnlock()
	catalog, _ := m.objects[m.root].(Dict)
	return catalog
}

var errInvalidReference = errors.New("invalid object reference")
