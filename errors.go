// errors.go: Error kinds for the Calliope text buffer engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "errors"

// Error kinds raised by the engine. All violations are programming errors:
// they are reported synchronously at the point of misuse and are never
// retried or recovered internally. Check with errors.Is.
var (
	// ErrInvalidLength reports a non-positive buffer length request, or an
	// empty search/replace operand whose match enumeration cannot terminate.
	ErrInvalidLength = errors.New("calliope: invalid length")

	// ErrNoActiveScope reports a buffer acquisition with no open scope.
	ErrNoActiveScope = errors.New("calliope: no active scope")

	// ErrDoubleRelease reports releasing a buffer (or closing a scope) that
	// has already been released, or releasing an interned buffer.
	ErrDoubleRelease = errors.New("calliope: double release")

	// ErrRange reports an index or count outside the valid bounds of a
	// search, substring, remove or insert operation.
	ErrRange = errors.New("calliope: index out of range")

	// ErrNilArgument reports a required buffer argument that is nil, or a
	// format argument of an unsupported type.
	ErrNilArgument = errors.New("calliope: nil argument")

	// ErrMalformedTemplate reports a format template missing the opening or
	// closing brace for a requested argument index.
	ErrMalformedTemplate = errors.New("calliope: malformed template")

	// ErrLengthMismatch reports a direct copy between buffers of unequal
	// declared length.
	ErrLengthMismatch = errors.New("calliope: length mismatch")
)
