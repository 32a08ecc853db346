// format.go: Positional template substitution into one exact-length buffer
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// maxFormatArgs is the placeholder arity of Format: indices {0} through
// {9}. Wider substitutions compose from multiple Format or Concat calls.
const maxFormatArgs = 10

// coerceArg turns a format argument into a pooled buffer. Strings are
// copied into the pool; numbers are rendered through the numeric
// formatters; buffers pass through. The returned buffer belongs to the
// active scope like any other intermediate.
func (e *Engine) coerceArg(arg interface{}) (*Buffer, error) {
	switch v := arg.(type) {
	case *Buffer:
		if v == nil {
			return nil, fmt.Errorf("format argument: %w", ErrNilArgument)
		}
		return v, nil
	case string:
		return e.NewBuffer(v)
	case int:
		return e.FormatInt(int64(v))
	case int32:
		return e.FormatInt(int64(v))
	case int64:
		return e.FormatInt(v)
	case uint:
		return e.FormatInt(int64(v))
	case uint32:
		return e.FormatInt(int64(v))
	case float32:
		return e.FormatFloat(float64(v))
	case float64:
		return e.FormatFloat(v)
	case bool:
		if v {
			return e.NewBuffer("true")
		}
		return e.NewBuffer("false")
	case nil:
		return nil, fmt.Errorf("format argument: %w", ErrNilArgument)
	default:
		return nil, fmt.Errorf("format argument type %T: %w", arg, ErrNilArgument)
	}
}

// findMarker locates the placeholder "{d}" at or after pos. It returns the
// placeholder's index and nil, or -1 with the malformed-template error
// naming the missing brace.
func findMarker(template string, pos int, d byte) (int, error) {
	for i := pos; i+1 < len(template); i++ {
		if template[i] == '{' && template[i+1] == d {
			if i+2 >= len(template) || template[i+2] != '}' {
				return -1, fmt.Errorf("argument {%c} missing closing brace: %w", d, ErrMalformedTemplate)
			}
			return i, nil
		}
	}
	return -1, fmt.Errorf("argument {%c} missing opening brace: %w", d, ErrMalformedTemplate)
}

// Format substitutes up to ten positional arguments into a template with
// single-digit placeholders {0}..{9}, appearing in index order. The output
// length is computed up front (template minus the three placeholder bytes
// per argument, plus each argument's rendered length) and the template is
// then walked once, copying literal runs and splicing each argument at its
// placeholder. A placeholder missing its opening or closing brace for a
// requested index fails with ErrMalformedTemplate before the result buffer
// is written.
func (e *Engine) Format(template string, args ...interface{}) (*Buffer, error) {
	argc := len(args)
	if argc > maxFormatArgs {
		return nil, fmt.Errorf("format with %d arguments, maximum %d: %w", argc, maxFormatArgs, ErrRange)
	}

	// Validate the template and record placeholder positions before any
	// buffer for the result is touched.
	var markers [maxFormatArgs]int
	pos := 0
	for k := 0; k < argc; k++ {
		at, err := findMarker(template, pos, byte('0'+k))
		if err != nil {
			return nil, err
		}
		markers[k] = at
		pos = at + 3
	}

	var views [maxFormatArgs]*Buffer
	length := len(template) - 3*argc
	for k := 0; k < argc; k++ {
		b, err := e.coerceArg(args[k])
		if err != nil {
			return nil, err
		}
		views[k] = b
		length += b.Len()
	}

	if length == 0 {
		return e.empty, nil
	}
	out, err := e.Acquire(length)
	if err != nil {
		return nil, err
	}

	w, pos := 0, 0
	for k := 0; k < argc; k++ {
		w += copy(out.data[w:], template[pos:markers[k]])
		w += copy(out.data[w:], views[k].data)
		pos = markers[k] + 3
	}
	copy(out.data[w:], template[pos:])
	return out, nil
}
