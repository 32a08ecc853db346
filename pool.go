// pool.go: Length-bucketed buffer pool for the Calliope engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// bucket is the free list of idle buffers for one exact length. Buffers are
// pushed and popped stack-wise so the most recently released storage is the
// first to be reused.
type bucket struct {
	free []*Buffer
}

// newBucket creates a bucket pre-seeded with seed idle buffers of the given
// length.
func newBucket(length, seed int, fill byte) *bucket {
	bk := &bucket{free: make([]*Buffer, 0, seed)}
	for i := 0; i < seed; i++ {
		b := newBuffer(length, fill)
		b.disposed = true
		bk.free = append(bk.free, b)
	}
	return bk
}

// pop removes and returns the top idle buffer, or nil when the bucket is
// empty.
func (bk *bucket) pop() *Buffer {
	n := len(bk.free)
	if n == 0 {
		return nil
	}
	b := bk.free[n-1]
	bk.free[n-1] = nil
	bk.free = bk.free[:n-1]
	return b
}

// push returns an idle buffer to the bucket.
func (bk *bucket) push(b *Buffer) {
	bk.free = append(bk.free, b)
}

// Acquire hands out a buffer of exactly the requested length, reusing an
// idle one when the bucket has any. The buffer is registered with the
// currently active scope and stays live until that scope closes.
//
// A first request for a never-seen length creates its bucket pre-seeded
// with Config.InitialBucketCapacity idle buffers. An existing but empty
// bucket allocates a fresh buffer instead of failing; that is the pool-miss
// event reported to the diagnostics sink.
func (e *Engine) Acquire(length int) (*Buffer, error) {
	if length <= 0 {
		return nil, fmt.Errorf("acquire length %d: %w", length, ErrInvalidLength)
	}
	scope := e.activeScope()
	if scope == nil {
		return nil, fmt.Errorf("acquire length %d: %w", length, ErrNoActiveScope)
	}

	bk, ok := e.buckets[length]
	if !ok {
		bk = newBucket(length, e.config.InitialBucketCapacity, e.config.FillByte)
		e.buckets[length] = bk
		e.stats.allocated += int64(e.config.InitialBucketCapacity)
		if e.logger != nil {
			e.logger.Debug("bucket created", "length", length, "seed", e.config.InitialBucketCapacity)
		}
	}

	b := bk.pop()
	if b == nil {
		b = newBuffer(length, e.config.FillByte)
		e.stats.allocated++
		e.stats.misses++
		if e.logger != nil {
			e.logger.Debug("pool miss", "length", length)
		}
	}

	b.disposed = false
	scope.record(b)
	e.stats.acquires++
	return b, nil
}

// Release scrubs a buffer back to the sentinel fill pattern and pushes it
// onto the bucket for its length. Guarded against double release; interned
// buffers are permanent and refuse release. Normally invoked by scope close
// rather than directly.
func (e *Engine) Release(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("release: %w", ErrNilArgument)
	}
	if b.interned {
		return fmt.Errorf("release of interned buffer: %w", ErrDoubleRelease)
	}
	if b.disposed {
		return fmt.Errorf("release of length %d: %w", b.Len(), ErrDoubleRelease)
	}

	b.disposed = true
	b.scrub(e.config.FillByte)

	bk, ok := e.buckets[b.Len()]
	if !ok {
		bk = newBucket(b.Len(), 0, e.config.FillByte)
		e.buckets[b.Len()] = bk
	}
	bk.push(b)
	e.stats.releases++
	if e.logger != nil {
		e.logger.Debug("buffer released", "length", b.Len(), "depth", len(bk.free))
	}
	return nil
}

// BucketDepth reports the current idle count for the given length, and
// whether a bucket for that length exists at all. Observability hook used
// by tests and the CLI.
func (e *Engine) BucketDepth(length int) (int, bool) {
	bk, ok := e.buckets[length]
	if !ok {
		return 0, false
	}
	return len(bk.free), true
}

// IdleBuffers returns the total number of idle buffers across all buckets.
func (e *Engine) IdleBuffers() int {
	total := 0
	for _, bk := range e.buckets {
		total += len(bk.free)
	}
	return total
}
