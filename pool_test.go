// pool_test.go: Unit tests for the length-bucketed buffer pool
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import (
	"errors"
	"testing"
)

func TestAcquireValidation(t *testing.T) {
	e := newTestEngine()

	// No active scope
	if _, err := e.Acquire(4); !errors.Is(err, ErrNoActiveScope) {
		t.Errorf("Acquire without scope should fail with ErrNoActiveScope, got %v", err)
	}

	scope := e.OpenScope()
	defer func() { _ = scope.Close() }()

	// Non-positive lengths
	if _, err := e.Acquire(0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Acquire(0) should fail with ErrInvalidLength, got %v", err)
	}
	if _, err := e.Acquire(-3); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Acquire(-3) should fail with ErrInvalidLength, got %v", err)
	}

	b, err := e.Acquire(8)
	if err != nil {
		t.Fatalf("Acquire(8) failed: %v", err)
	}
	if b.Len() != 8 {
		t.Errorf("Expected length 8, got %d", b.Len())
	}
	if b.disposed {
		t.Error("Acquired buffer should not be disposed")
	}
}

func TestBucketPreSeeding(t *testing.T) {
	e := newTestEngine()
	scope := e.OpenScope()
	defer func() { _ = scope.Close() }()

	if _, ok := e.BucketDepth(9); ok {
		t.Error("Bucket for length 9 should not exist yet")
	}

	// First acquisition of a never-seen length creates the bucket seeded
	// with InitialBucketCapacity buffers and pops one.
	if _, err := e.Acquire(9); err != nil {
		t.Fatalf("Acquire(9) failed: %v", err)
	}
	depth, ok := e.BucketDepth(9)
	if !ok {
		t.Fatal("Bucket for length 9 should exist after first acquire")
	}
	if depth != e.config.InitialBucketCapacity-1 {
		t.Errorf("Expected depth %d after seeded pop, got %d", e.config.InitialBucketCapacity-1, depth)
	}
}

func TestPoolMissOnEmptyBucket(t *testing.T) {
	e := newTestEngine()
	scope := e.OpenScope()
	defer func() { _ = scope.Close() }()

	// Drain the seeded bucket plus one: the last acquire is a miss.
	for i := 0; i < e.config.InitialBucketCapacity; i++ {
		if _, err := e.Acquire(5); err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
	}
	if e.Stats().Misses != 0 {
		t.Fatalf("Expected no misses while the seed lasts, got %d", e.Stats().Misses)
	}
	if _, err := e.Acquire(5); err != nil {
		t.Fatalf("Acquire on empty bucket failed: %v", err)
	}
	if e.Stats().Misses != 1 {
		t.Errorf("Expected exactly 1 miss, got %d", e.Stats().Misses)
	}
}

func TestReleaseGuards(t *testing.T) {
	e := newTestEngine()
	scope := e.OpenScope()
	defer func() { _ = scope.Close() }()

	b, err := e.Acquire(4)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := e.Release(b); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := e.Release(b); !errors.Is(err, ErrDoubleRelease) {
		t.Errorf("Second release should fail with ErrDoubleRelease, got %v", err)
	}
	if err := e.Release(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("Release(nil) should fail with ErrNilArgument, got %v", err)
	}

	interned := e.Intern("permanent")
	if err := e.Release(interned); !errors.Is(err, ErrDoubleRelease) {
		t.Errorf("Release of interned buffer should fail with ErrDoubleRelease, got %v", err)
	}
}

func TestBucketDepthGrowsByScopeReleases(t *testing.T) {
	e := newTestEngine()

	const k = 7
	const length = 11

	scope := e.OpenScope()
	for i := 0; i < k; i++ {
		if _, err := e.Acquire(length); err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
	}
	before, _ := e.BucketDepth(length)
	if err := scope.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	after, _ := e.BucketDepth(length)

	// All k live buffers return to the bucket at close.
	if after-before != k {
		t.Errorf("Expected depth increase of %d, got %d (before %d, after %d)", k, after-before, before, after)
	}
}

func TestAcquireReusesReleasedBuffer(t *testing.T) {
	e := newTestEngine()

	// One scope performs several operations of one length...
	scope := e.OpenScope()
	var seen *Buffer
	for i := 0; i < 5; i++ {
		b, err := e.Acquire(6)
		if err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
		seen = b
		if err := e.Release(b); err != nil {
			t.Fatalf("Release %d failed: %v", i, err)
		}
	}
	if err := scope.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	depthAfterClose, _ := e.BucketDepth(6)
	missesBefore := e.Stats().Misses

	// ...then a new scope reuses a previously released buffer: the depth
	// drops and no fresh allocation happens.
	scope = e.OpenScope()
	b, err := e.Acquire(6)
	if err != nil {
		t.Fatalf("Acquire after reopen failed: %v", err)
	}
	depthDuring, _ := e.BucketDepth(6)
	if depthDuring != depthAfterClose-1 {
		t.Errorf("Expected depth to drop from %d to %d, got %d", depthAfterClose, depthAfterClose-1, depthDuring)
	}
	if b != seen {
		t.Error("Expected the most recently released buffer to be reused")
	}
	if e.Stats().Misses != missesBefore {
		t.Errorf("Reuse should not count a miss: before %d, after %d", missesBefore, e.Stats().Misses)
	}
	if err := scope.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	depthAfter, _ := e.BucketDepth(6)
	if depthAfter != depthAfterClose {
		t.Errorf("Expected depth to rise back to %d, got %d", depthAfterClose, depthAfter)
	}
}

func TestEarlyManualReleaseCycles(t *testing.T) {
	e := newTestEngine()

	const length = 13
	scope := e.OpenScope()

	// Prime the bucket.
	b, err := e.Acquire(length)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := e.Release(b); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	missesBefore := e.Stats().Misses

	// k acquire-then-release cycles reuse the idle buffer every time.
	for i := 0; i < 4; i++ {
		c, err := e.Acquire(length)
		if err != nil {
			t.Fatalf("Cycle %d acquire failed: %v", i, err)
		}
		if err := e.Release(c); err != nil {
			t.Fatalf("Cycle %d release failed: %v", i, err)
		}
	}
	if e.Stats().Misses != missesBefore {
		t.Errorf("Cycles over an idle bucket should not miss: before %d, after %d", missesBefore, e.Stats().Misses)
	}

	// Close tolerates buffers the caller already released.
	if err := scope.Close(); err != nil {
		t.Fatalf("Close after manual releases failed: %v", err)
	}
}

func TestIdleBuffersTotals(t *testing.T) {
	e := NewEngine(Config{InitialBuckets: 3, InitialBucketCapacity: 2})
	if e.IdleBuffers() != 6 {
		t.Errorf("Expected 6 idle buffers from pre-bucketing, got %d", e.IdleBuffers())
	}
	stats := e.Stats()
	if stats.Allocated != 6 {
		t.Errorf("Expected 6 allocated, got %d", stats.Allocated)
	}
	if stats.Buckets != 3 {
		t.Errorf("Expected 3 buckets, got %d", stats.Buckets)
	}
}
