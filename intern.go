// intern.go: Append-only intern table for permanently retained buffers
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// Intern promotes text into the engine's permanent intern table and returns
// the retained buffer. Interning the same content twice returns the same
// buffer identity. Interned buffers are never registered with a scope and
// never return to the pool.
//
// Lookup is a linear scan over the table, O(table size) per call. That is a
// deliberate trade: the table is meant for a small set of long-lived keys,
// not hot-path text, and a flat slice stays cheap to walk and never needs a
// hash index.
func (e *Engine) Intern(text string) *Buffer {
	for _, entry := range e.interned {
		if entry.EqualString(text) {
			return entry
		}
	}

	entry := &Buffer{data: make([]byte, len(text)), interned: true}
	copy(entry.data, text)
	e.interned = append(e.interned, entry)
	if e.logger != nil {
		e.logger.Debug("intern append", "length", len(text), "table", len(e.interned))
	}
	return entry
}

// InternBuffer promotes a buffer's current content into the intern table.
// The returned buffer is the permanent entry; the argument itself stays
// under its scope's management and is released as usual at scope close.
func (e *Engine) InternBuffer(b *Buffer) (*Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("intern: %w", ErrNilArgument)
	}
	for _, entry := range e.interned {
		if entry.Equal(b) {
			return entry, nil
		}
	}

	entry := &Buffer{data: make([]byte, len(b.data)), interned: true}
	copy(entry.data, b.data)
	e.interned = append(e.interned, entry)
	if e.logger != nil {
		e.logger.Debug("intern append", "length", len(b.data), "table", len(e.interned))
	}
	return entry, nil
}

// InternedCount reports the number of entries in the intern table.
func (e *Engine) InternedCount() int {
	return len(e.interned)
}
