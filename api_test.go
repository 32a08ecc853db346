// api_test.go: Unit tests for the simplified API layer
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	e := New()
	if e == nil {
		t.Fatal("New should not return nil")
	}

	err := e.WithScope(func(*Scope) error {
		out, err := e.Format("{0}-{1}", "a", 1)
		if err != nil {
			return err
		}
		if out.String() != "a-1" {
			t.Errorf("Expected 'a-1', got %q", out.String())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithScope failed: %v", err)
	}
}

func TestNewWithConfig(t *testing.T) {
	e := NewWithConfig(Config{InitialBuckets: 3, InitialBucketCapacity: 5})
	if e.Config().InitialBuckets != 3 {
		t.Errorf("Expected 3 initial buckets, got %d", e.Config().InitialBuckets)
	}
	depth, ok := e.BucketDepth(2)
	if !ok || depth != 5 {
		t.Errorf("Expected pre-seeded depth 5 for length 2, got %d (exists %v)", depth, ok)
	}
}

func TestNewForUseCase(t *testing.T) {
	e := NewForUseCase("hot-loop")
	if e.Config().InitialBuckets != 64 {
		t.Errorf("Expected hot-loop pre-bucketing, got %d", e.Config().InitialBuckets)
	}

	dev := NewDevelopmentEngine()
	if dev.Config().InitialBuckets != 8 {
		t.Errorf("Expected development pre-bucketing, got %d", dev.Config().InitialBuckets)
	}

	hot := NewHotLoopEngine()
	if hot.Config().InitialBucketCapacity != 16 {
		t.Errorf("Expected hot-loop bucket capacity, got %d", hot.Config().InitialBucketCapacity)
	}
}

func TestGetConfigInfo(t *testing.T) {
	info := GetConfigInfo()
	if !strings.Contains(info, "Configuration Source:") {
		t.Errorf("Config info should name its source, got %q", info)
	}
	if !strings.Contains(info, "Decimal Accuracy:") {
		t.Errorf("Config info should include decimal accuracy, got %q", info)
	}
}

func TestEngineStatsString(t *testing.T) {
	e := newTestEngine()
	err := e.WithScope(func(*Scope) error {
		_, err := e.NewBuffer("stats")
		return err
	})
	if err != nil {
		t.Fatalf("WithScope failed: %v", err)
	}

	s := e.Stats()
	if s.Acquires != 1 || s.Releases != 1 {
		t.Errorf("Expected 1 acquire and 1 release, got %+v", s)
	}

	text := s.String()
	if !strings.Contains(text, "1 acquires") || !strings.Contains(text, "1 releases") {
		t.Errorf("Unexpected stats string: %q", text)
	}
}
