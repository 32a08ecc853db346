// main.go: Profiler for the Calliope text buffer engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/agilira/calliope"
)

// Configuration constants for the profiler
const (
	duration       = 5 * time.Second
	reportEvery    = 1_000_000 // Iterations between progress lines
	initialBuckets = 64
	bucketCapacity = 16
)

func main() {
	engine := calliope.NewWithConfig(calliope.Config{
		InitialBuckets:        initialBuckets,
		InitialBucketCapacity: bucketCapacity,
		InitialScopeCount:     8,
		InitialInternCapacity: 16,
		DecimalAccuracy:       3,
	})

	cpuFile, err := os.Create("cpu.prof")
	if err == nil {
		_ = pprof.StartCPUProfile(cpuFile)
		defer func() {
			pprof.StopCPUProfile()
			// Ignore close error for profiling tool
			_ = cpuFile.Close()
		}()
	}

	fmt.Println("[WARMUP] Seeding intern table and buckets...")
	host := engine.Intern("profiler-host")

	var before runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	fmt.Printf("[RUN] Formatting workload for %v...\n", duration)
	iterations := 0
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		err := engine.WithScope(func(*calliope.Scope) error {
			line, err := engine.Format("host={0} seq={1} load={2}", host, iterations, 3.148)
			if err != nil {
				return err
			}
			trimmed, err := engine.Remove(line, 0, 5)
			if err != nil {
				return err
			}
			if _, err := engine.Replace(trimmed, "seq", "sequence"); err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "workload error:", err)
			os.Exit(1)
		}
		iterations++
		if iterations%reportEvery == 0 {
			fmt.Printf("[RUN] %d iterations\n", iterations)
		}
	}

	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	stats := engine.Stats()
	fmt.Println(stats.String())
	fmt.Printf("Iterations: %d\n", iterations)
	fmt.Printf("Heap allocations during run: %d objects, %d bytes\n",
		after.Mallocs-before.Mallocs, after.TotalAlloc-before.TotalAlloc)
	if iterations > 0 {
		fmt.Printf("Allocations per iteration: %.3f\n",
			float64(after.Mallocs-before.Mallocs)/float64(iterations))
	}

	heapFile, err := os.Create("heap.prof")
	if err == nil {
		_ = pprof.WriteHeapProfile(heapFile)
		_ = heapFile.Close()
	}
}
