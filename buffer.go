// buffer.go: Fixed-capacity mutable text buffer, the unit of pooling
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// Buffer is a fixed-capacity mutable byte sequence with identity. Its
// length is decided at allocation and never changes: every algorithm that
// produces text computes the exact output length up front and fills one
// freshly acquired Buffer in a single pass. Identity matters for pool
// bookkeeping; equality for application use is by content.
//
// A Buffer is live from Engine.Acquire until its owning scope closes,
// unless it is promoted into the intern table, after which it is permanent.
type Buffer struct {
	data     []byte
	disposed bool
	interned bool
}

// newBuffer allocates a fresh buffer of the given length, filled with the
// sentinel byte so unwritten storage is visibly uninitialized.
func newBuffer(length int, fill byte) *Buffer {
	b := &Buffer{data: make([]byte, length)}
	b.scrub(fill)
	return b
}

// scrub overwrites the whole storage with the sentinel fill byte. Done on
// creation and again on release, so stale reads of a returned buffer are
// visibly wrong rather than silently plausible.
func (b *Buffer) scrub(fill byte) {
	for i := range b.data {
		b.data[i] = fill
	}
}

// Len returns the declared length of the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// ByteAt returns the byte at index i.
func (b *Buffer) ByteAt(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("byte at %d of %d: %w", i, len(b.data), ErrRange)
	}
	return b.data[i], nil
}

// SetByte overwrites the byte at index i.
func (b *Buffer) SetByte(i int, c byte) error {
	if i < 0 || i >= len(b.data) {
		return fmt.Errorf("set byte at %d of %d: %w", i, len(b.data), ErrRange)
	}
	b.data[i] = c
	return nil
}

// CopyFrom overwrites the whole buffer with the content of src. Both
// buffers must have the same declared length.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src == nil {
		return fmt.Errorf("copy source: %w", ErrNilArgument)
	}
	if len(src.data) != len(b.data) {
		return fmt.Errorf("copy %d into %d: %w", len(src.data), len(b.data), ErrLengthMismatch)
	}
	copy(b.data, src.data)
	return nil
}

// Equal reports whether both buffers hold identical content.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || len(b.data) != len(other.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether the buffer content equals s.
func (b *Buffer) EqualString(s string) bool {
	if len(b.data) != len(s) {
		return false
	}
	for i := range b.data {
		if b.data[i] != s[i] {
			return false
		}
	}
	return true
}

// String extracts the content as an immutable string. This is the one
// deliberate allocation point of the engine: crossing back into immutable
// text copies.
func (b *Buffer) String() string {
	return string(b.data)
}

// Interned reports whether the buffer has been promoted into the intern
// table and is permanently retained.
func (b *Buffer) Interned() bool {
	return b.interned
}
