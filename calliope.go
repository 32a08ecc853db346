// calliope.go: Pooled mutable text engine for allocation-free hot loops
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import (
	"fmt"

	"github.com/inconshreveable/log15"
)

// Engine owns every piece of shared state: the length-bucketed buffer pool,
// the scope stack, the scope free list, the intern table and the stats
// counters. There are no package-level globals; callers create an Engine
// and thread it through their code.
//
// The engine is deliberately single-threaded: no field is locked, and
// correctness depends on one logical thread of control owning the engine at
// any instant. Concurrent callers must each own an independent Engine.
type Engine struct {
	config     Config
	buckets    map[int]*bucket
	scopes     []*Scope
	idleScopes []*Scope
	interned   []*Buffer
	empty      *Buffer
	stats      engineStats
	logger     log15.Logger
}

// engineStats accumulates lifetime counters for diagnostics.
type engineStats struct {
	acquires  int64
	releases  int64
	misses    int64
	allocated int64
}

// NewEngine creates an engine from the given configuration. Zero or
// negative fields fall back to the defaults from DefaultConfig. The
// configuration is fixed for the engine's lifetime.
func NewEngine(config Config) *Engine {
	config = config.withDefaults()

	e := &Engine{
		config:     config,
		buckets:    make(map[int]*bucket, config.InitialBuckets+8),
		idleScopes: make([]*Scope, 0, config.InitialScopeCount),
		interned:   make([]*Buffer, 0, config.InitialInternCapacity),
	}

	// Pre-bucket the shortest lengths; those dominate hot loops.
	for length := 1; length <= config.InitialBuckets; length++ {
		e.buckets[length] = newBucket(length, config.InitialBucketCapacity, config.FillByte)
		e.stats.allocated += int64(config.InitialBucketCapacity)
	}
	for i := 0; i < config.InitialScopeCount; i++ {
		e.idleScopes = append(e.idleScopes, &Scope{engine: e})
	}

	// The shared zero-length buffer returned by every algorithm whose
	// computed result length is zero. Permanent, never pooled.
	e.empty = &Buffer{data: []byte{}, interned: true}

	return e
}

// SetLogger installs a diagnostics sink invoked on pool misses, bucket
// creation and buffer lifecycle events. Optional: a nil logger (the
// default) disables diagnostics without changing functional behavior.
func (e *Engine) SetLogger(logger log15.Logger) {
	e.logger = logger
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// NewBuffer copies raw text into a pooled buffer registered with the active
// scope. The empty string yields the engine's permanent zero-length buffer.
func (e *Engine) NewBuffer(text string) (*Buffer, error) {
	if len(text) == 0 {
		return e.empty, nil
	}
	b, err := e.Acquire(len(text))
	if err != nil {
		return nil, err
	}
	copy(b.data, text)
	return b, nil
}

// EngineStats is a snapshot of the engine's lifetime counters.
type EngineStats struct {
	Acquires  int64 `json:"acquires"`
	Releases  int64 `json:"releases"`
	Misses    int64 `json:"misses"`
	Allocated int64 `json:"allocated"`
	Buckets   int   `json:"buckets"`
	Idle      int   `json:"idle"`
	Interned  int   `json:"interned"`
	Scopes    int   `json:"scopes"`
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Acquires:  e.stats.acquires,
		Releases:  e.stats.releases,
		Misses:    e.stats.misses,
		Allocated: e.stats.allocated,
		Buckets:   len(e.buckets),
		Idle:      e.IdleBuffers(),
		Interned:  len(e.interned),
		Scopes:    len(e.scopes),
	}
}

// String returns a human-readable representation of the engine stats.
func (s EngineStats) String() string {
	return fmt.Sprintf("Engine Stats: %d acquires, %d releases, %d misses, %d allocated, %d buckets (%d idle), %d interned",
		s.Acquires, s.Releases, s.Misses, s.Allocated, s.Buckets, s.Idle, s.Interned)
}
