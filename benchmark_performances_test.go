// benchmark_performances_test.go: Performance benchmarks for Calliope
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import (
	"testing"
)

// BenchmarkPerformances tests the engine hot paths with a pre-seeded pool
func BenchmarkPerformances(b *testing.B) {
	b.Run("Calliope_AcquireRelease", func(b *testing.B) {
		e := NewWithConfig(Config{InitialBuckets: 64, InitialBucketCapacity: 16})

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			scope := e.OpenScope()
			if _, err := e.Acquire(32); err != nil {
				b.Fatal(err)
			}
			if err := scope.Close(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Calliope_Format", func(b *testing.B) {
		e := NewWithConfig(Config{InitialBuckets: 64, InitialBucketCapacity: 16})

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			err := e.WithScope(func(*Scope) error {
				_, err := e.Format("Player={0} Id={1}", "Jon", 10)
				return err
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Calliope_ConcatReplace", func(b *testing.B) {
		e := NewWithConfig(Config{InitialBuckets: 64, InitialBucketCapacity: 16})

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			err := e.WithScope(func(*Scope) error {
				hello, err := e.NewBuffer("Hello, ")
				if err != nil {
					return err
				}
				world, err := e.NewBuffer("World")
				if err != nil {
					return err
				}
				greeting, err := e.Concat(hello, world)
				if err != nil {
					return err
				}
				_, err = e.Replace(greeting, "World", "Alexander")
				return err
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Calliope_FormatInt", func(b *testing.B) {
		e := NewWithConfig(Config{InitialBuckets: 64, InitialBucketCapacity: 16})

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			scope := e.OpenScope()
			if _, err := e.FormatInt(int64(i)); err != nil {
				b.Fatal(err)
			}
			if err := scope.Close(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Calliope_Search", func(b *testing.B) {
		e := NewWithConfig(Config{InitialBuckets: 64, InitialBucketCapacity: 16})
		scope := e.OpenScope()
		defer func() { _ = scope.Close() }()

		hay, err := e.NewBuffer("the quick brown fox jumps over the lazy dog")
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			if hay.IndexOf("lazy") == -1 {
				b.Fatal("needle not found")
			}
		}
	})
}
