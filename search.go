// search.go: Forward and backward search over buffer content
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// Searches never acquire a result buffer, so they are methods on Buffer and
// need no open scope. Not found is reported with the -1 sentinel. The scans
// are deliberately naive O(n*m): needles in this engine's workloads are
// short, and the constant factor of a naive loop beats preprocessing.

// checkWindow validates a [start, start+count) window against the buffer
// bounds.
func (b *Buffer) checkWindow(start, count int) error {
	if start < 0 || start > len(b.data) {
		return fmt.Errorf("start %d of %d: %w", start, len(b.data), ErrRange)
	}
	if count < 0 || start+count > len(b.data) {
		return fmt.Errorf("count %d at %d of %d: %w", count, start, len(b.data), ErrRange)
	}
	return nil
}

// IndexOfByte returns the index of the first occurrence of c, or -1.
func (b *Buffer) IndexOfByte(c byte) int {
	for i := 0; i < len(b.data); i++ {
		if b.data[i] == c {
			return i
		}
	}
	return -1
}

// IndexOfByteRange returns the index of the first occurrence of c within
// the window [start, start+count), or -1.
func (b *Buffer) IndexOfByteRange(c byte, start, count int) (int, error) {
	if err := b.checkWindow(start, count); err != nil {
		return -1, err
	}
	for i := start; i < start+count; i++ {
		if b.data[i] == c {
			return i, nil
		}
	}
	return -1, nil
}

// LastIndexOfByte returns the index of the last occurrence of c, or -1.
func (b *Buffer) LastIndexOfByte(c byte) int {
	for i := len(b.data) - 1; i >= 0; i-- {
		if b.data[i] == c {
			return i
		}
	}
	return -1
}

// LastIndexOfByteRange returns the index of the last occurrence of c within
// the window [start, start+count), or -1.
func (b *Buffer) LastIndexOfByteRange(c byte, start, count int) (int, error) {
	if err := b.checkWindow(start, count); err != nil {
		return -1, err
	}
	for i := start + count - 1; i >= start; i-- {
		if b.data[i] == c {
			return i, nil
		}
	}
	return -1, nil
}

// matchAt reports whether sub occurs at position i. The caller guarantees
// i+len(sub) stays inside the buffer.
func (b *Buffer) matchAt(sub string, i int) bool {
	for j := 0; j < len(sub); j++ {
		if b.data[i+j] != sub[j] {
			return false
		}
	}
	return true
}

// IndexOf returns the start index of the first occurrence of sub, or -1.
// An empty sub matches at index 0.
func (b *Buffer) IndexOf(sub string) int {
	i, _ := b.IndexOfRange(sub, 0, len(b.data))
	return i
}

// IndexOfRange returns the start index of the first occurrence of sub whose
// match lies entirely within [start, start+count), or -1. An empty sub
// matches at the window start.
func (b *Buffer) IndexOfRange(sub string, start, count int) (int, error) {
	if err := b.checkWindow(start, count); err != nil {
		return -1, err
	}
	if len(sub) > count {
		return -1, nil
	}
	last := start + count - len(sub)
	for i := start; i <= last; i++ {
		if b.matchAt(sub, i) {
			return i, nil
		}
	}
	return -1, nil
}

// LastIndexOf returns the start index of the rightmost occurrence of sub,
// or -1. An empty sub matches at the end of the buffer.
func (b *Buffer) LastIndexOf(sub string) int {
	i, _ := b.LastIndexOfRange(sub, 0, len(b.data))
	return i
}

// LastIndexOfRange returns the start index of the rightmost occurrence of
// sub whose match lies entirely within [start, start+count), or -1. The
// scan walks start positions downward from the largest feasible one, so the
// boundary behavior is exactly "rightmost match that fits the window".
func (b *Buffer) LastIndexOfRange(sub string, start, count int) (int, error) {
	if err := b.checkWindow(start, count); err != nil {
		return -1, err
	}
	if len(sub) > count {
		return -1, nil
	}
	for i := start + count - len(sub); i >= start; i-- {
		if b.matchAt(sub, i) {
			return i, nil
		}
	}
	return -1, nil
}

// Contains reports whether sub occurs anywhere in the buffer. Equivalent to
// IndexOf(sub) != -1.
func (b *Buffer) Contains(sub string) bool {
	return b.IndexOf(sub) != -1
}

// ContainsByte reports whether c occurs anywhere in the buffer.
func (b *Buffer) ContainsByte(c byte) bool {
	return b.IndexOfByte(c) != -1
}
