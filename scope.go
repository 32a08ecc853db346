// scope.go: Scoped acquisition bracket for the Calliope engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// Scope records every buffer acquired while it is the active scope and
// releases all of them, in LIFO order, when it closes. Scopes nest: opening
// a scope while another is active makes the new one current, and closing it
// makes the previous one current again.
//
// Scope objects are themselves pooled on a free list so opening a scope in
// a hot loop does not allocate bookkeeping.
type Scope struct {
	engine *Engine
	live   []*Buffer
	closed bool
}

// record appends a buffer to the scope's live stack.
func (s *Scope) record(b *Buffer) {
	s.live = append(s.live, b)
}

// OpenScope makes a new scope the active one. Every buffer produced by the
// engine from now until the matching Close is recorded by this scope.
// Callers must close exactly once per open:
//
//	scope := e.OpenScope()
//	defer scope.Close()
//
// A scope that is never closed leaks its buffers into live state; the
// engine does not protect against omission. Prefer WithScope when the body
// can fail or panic.
func (e *Engine) OpenScope() *Scope {
	var s *Scope
	if n := len(e.idleScopes); n > 0 {
		s = e.idleScopes[n-1]
		e.idleScopes[n-1] = nil
		e.idleScopes = e.idleScopes[:n-1]
	} else {
		s = &Scope{engine: e}
	}
	s.closed = false
	e.scopes = append(e.scopes, s)
	if e.logger != nil {
		e.logger.Debug("scope opened", "depth", len(e.scopes))
	}
	return s
}

// Close releases every buffer recorded by the scope in LIFO order, restores
// the previously active scope, and returns the scope object to the engine's
// free list. Closing twice fails with ErrDoubleRelease.
func (s *Scope) Close() error {
	if s.closed {
		return fmt.Errorf("scope close: %w", ErrDoubleRelease)
	}
	e := s.engine

	var firstErr error
	for i := len(s.live) - 1; i >= 0; i-- {
		b := s.live[i]
		s.live[i] = nil
		if b.disposed {
			// Released early by the caller; "no later than close" allows it.
			continue
		}
		if err := e.Release(b); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.live = s.live[:0]
	s.closed = true

	// Pop this scope from the active stack. Strict LIFO use always finds it
	// on top; out-of-order closing still detaches it.
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if e.scopes[i] == s {
			e.scopes = append(e.scopes[:i], e.scopes[i+1:]...)
			break
		}
	}
	e.idleScopes = append(e.idleScopes, s)
	if e.logger != nil {
		e.logger.Debug("scope closed", "depth", len(e.scopes))
	}
	return firstErr
}

// Live returns the number of buffers currently held by the scope.
func (s *Scope) Live() int {
	return len(s.live)
}

// WithScope runs fn under a fresh scope and guarantees the scope closes on
// every exit path: normal return, error return, or a panic unwinding
// through it. The error from fn is returned unchanged; a close failure is
// reported only when fn itself succeeded.
func (e *Engine) WithScope(fn func(*Scope) error) (err error) {
	scope := e.OpenScope()
	defer func() {
		closeErr := scope.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(scope)
}

// activeScope returns the currently active scope, or nil when none is open.
func (e *Engine) activeScope() *Scope {
	if n := len(e.scopes); n > 0 {
		return e.scopes[n-1]
	}
	return nil
}

// ScopeDepth reports how many scopes are currently open. Observability
// hook.
func (e *Engine) ScopeDepth() int {
	return len(e.scopes)
}
