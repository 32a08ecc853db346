// edit.go: Replace, insert, remove, substring, concat and case conversion
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// Every editing algorithm follows the same shape: validate the arguments,
// compute the exact result length analytically, acquire one result buffer
// from the active scope's pool, and fill it in a single pass. No algorithm
// grows or shrinks a buffer after acquisition.

// ReplaceByte substitutes every occurrence of old with new. Length
// preserving, single pass.
func (e *Engine) ReplaceByte(s *Buffer, old, new byte) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("replace byte: %w", ErrNilArgument)
	}
	if s.Len() == 0 {
		return e.empty, nil
	}
	out, err := e.Acquire(s.Len())
	if err != nil {
		return nil, err
	}
	for i, c := range s.data {
		if c == old {
			out.data[i] = new
		} else {
			out.data[i] = c
		}
	}
	return out, nil
}

// countMatches counts non-overlapping occurrences of old, scanning left to
// right and resuming after each match end.
func countMatches(s *Buffer, old string) int {
	count := 0
	for i := 0; i+len(old) <= len(s.data); {
		if s.matchAt(old, i) {
			count++
			i += len(old)
		} else {
			i++
		}
	}
	return count
}

// Replace substitutes every non-overlapping occurrence of old with new,
// scanning left to right and resuming after each match end. The result
// length is precomputed from the match count, so the rewrite is one pass.
// Zero matches is a no-op returning the input buffer itself.
func (e *Engine) Replace(s *Buffer, old, new string) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("replace: %w", ErrNilArgument)
	}
	if len(old) == 0 {
		return nil, fmt.Errorf("replace with empty old value: %w", ErrInvalidLength)
	}

	matches := countMatches(s, old)
	if matches == 0 {
		return s, nil
	}

	newLen := s.Len() + matches*(len(new)-len(old))
	if newLen == 0 {
		return e.empty, nil
	}
	out, err := e.Acquire(newLen)
	if err != nil {
		return nil, err
	}

	// Rewrite while rescanning; the match positions are recomputed instead
	// of recorded so the operation stays allocation free.
	w := 0
	for i := 0; i < len(s.data); {
		if i+len(old) <= len(s.data) && s.matchAt(old, i) {
			copy(out.data[w:], new)
			w += len(new)
			i += len(old)
		} else {
			out.data[w] = s.data[i]
			w++
			i++
		}
	}
	return out, nil
}

// Insert widens s by len(text), splicing text in at start. Inserting at
// start == s.Len() appends. Empty text is a no-op returning the input.
func (e *Engine) Insert(s *Buffer, text string, start int) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("insert: %w", ErrNilArgument)
	}
	if start < 0 || start > s.Len() {
		return nil, fmt.Errorf("insert at %d of %d: %w", start, s.Len(), ErrRange)
	}
	if len(text) == 0 {
		return s, nil
	}

	out, err := e.Acquire(s.Len() + len(text))
	if err != nil {
		return nil, err
	}
	copy(out.data, s.data[:start])
	copy(out.data[start:], text)
	copy(out.data[start+len(text):], s.data[start:])
	return out, nil
}

// InsertFill widens s by count copies of the engine's fill byte at start.
func (e *Engine) InsertFill(s *Buffer, start, count int) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("insert fill: %w", ErrNilArgument)
	}
	if start < 0 || start > s.Len() || count < 0 {
		return nil, fmt.Errorf("insert fill %d at %d of %d: %w", count, start, s.Len(), ErrRange)
	}
	if count == 0 {
		return s, nil
	}

	out, err := e.Acquire(s.Len() + count)
	if err != nil {
		return nil, err
	}
	copy(out.data, s.data[:start])
	for i := 0; i < count; i++ {
		out.data[start+i] = e.config.FillByte
	}
	copy(out.data[start+count:], s.data[start:])
	return out, nil
}

// Remove narrows s by dropping the window [start, start+count). A zero
// count is a no-op returning the input.
func (e *Engine) Remove(s *Buffer, start, count int) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("remove: %w", ErrNilArgument)
	}
	if err := s.checkWindow(start, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return s, nil
	}
	newLen := s.Len() - count
	if newLen == 0 {
		return e.empty, nil
	}

	out, err := e.Acquire(newLen)
	if err != nil {
		return nil, err
	}
	copy(out.data, s.data[:start])
	copy(out.data[start:], s.data[start+count:])
	return out, nil
}

// Substring copies the window [start, start+count) into a new buffer.
func (e *Engine) Substring(s *Buffer, start, count int) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("substring: %w", ErrNilArgument)
	}
	if err := s.checkWindow(start, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return e.empty, nil
	}

	out, err := e.Acquire(count)
	if err != nil {
		return nil, err
	}
	copy(out.data, s.data[start:start+count])
	return out, nil
}

// concat sums the operand lengths and copies each at its cumulative offset.
func (e *Engine) concat(bufs ...*Buffer) (*Buffer, error) {
	total := 0
	for _, b := range bufs {
		if b == nil {
			return nil, fmt.Errorf("concat: %w", ErrNilArgument)
		}
		total += b.Len()
	}
	if total == 0 {
		return e.empty, nil
	}

	out, err := e.Acquire(total)
	if err != nil {
		return nil, err
	}
	w := 0
	for _, b := range bufs {
		copy(out.data[w:], b.data)
		w += b.Len()
	}
	return out, nil
}

// Concat joins two buffers.
func (e *Engine) Concat(a, b *Buffer) (*Buffer, error) {
	return e.concat(a, b)
}

// Concat3 joins three buffers.
func (e *Engine) Concat3(a, b, c *Buffer) (*Buffer, error) {
	return e.concat(a, b, c)
}

// Concat4 joins four buffers.
func (e *Engine) Concat4(a, b, c, d *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d)
}

// Concat5 joins five buffers.
func (e *Engine) Concat5(a, b, c, d, f *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f)
}

// Concat6 joins six buffers.
func (e *Engine) Concat6(a, b, c, d, f, g *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f, g)
}

// Concat7 joins seven buffers.
func (e *Engine) Concat7(a, b, c, d, f, g, h *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f, g, h)
}

// Concat8 joins eight buffers.
func (e *Engine) Concat8(a, b, c, d, f, g, h, i *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f, g, h, i)
}

// Concat9 joins nine buffers.
func (e *Engine) Concat9(a, b, c, d, f, g, h, i, j *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f, g, h, i, j)
}

// Concat10 joins ten buffers. Wider joins compose from pairwise Concat.
func (e *Engine) Concat10(a, b, c, d, f, g, h, i, j, k *Buffer) (*Buffer, error) {
	return e.concat(a, b, c, d, f, g, h, i, j, k)
}

// ConcatAll joins any number of buffers.
func (e *Engine) ConcatAll(bufs ...*Buffer) (*Buffer, error) {
	return e.concat(bufs...)
}

// ToUpper maps ASCII lowercase letters to uppercase. Length preserving,
// single pass; bytes outside 'a'..'z' pass through unchanged.
func (e *Engine) ToUpper(s *Buffer) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("to upper: %w", ErrNilArgument)
	}
	if s.Len() == 0 {
		return e.empty, nil
	}
	out, err := e.Acquire(s.Len())
	if err != nil {
		return nil, err
	}
	for i, c := range s.data {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out.data[i] = c
	}
	return out, nil
}

// ToLower maps ASCII uppercase letters to lowercase. Length preserving,
// single pass; bytes outside 'A'..'Z' pass through unchanged.
func (e *Engine) ToLower(s *Buffer) (*Buffer, error) {
	if s == nil {
		return nil, fmt.Errorf("to lower: %w", ErrNilArgument)
	}
	if s.Len() == 0 {
		return e.empty, nil
	}
	out, err := e.Acquire(s.Len())
	if err != nil {
		return nil, err
	}
	for i, c := range s.data {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out.data[i] = c
	}
	return out, nil
}
