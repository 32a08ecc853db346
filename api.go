// api.go: Simplified API layer for the Calliope text buffer engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// New creates an engine with automatic configuration loading
// Priority: Go config > JSON config > defaults
func New() *Engine {
	return NewEngine(loadConfig())
}

// NewWithConfig creates an engine with custom configuration for advanced users
func NewWithConfig(config Config) *Engine {
	return NewEngine(config)
}

// NewForUseCase creates an engine optimized for a specific use case
func NewForUseCase(useCase string) *Engine {
	return NewEngine(GetConfigRecommendation(useCase))
}

// NewDevelopmentEngine creates an engine sized for development and tests
func NewDevelopmentEngine() *Engine {
	return NewForUseCase("development")
}

// NewHotLoopEngine creates an engine pre-seeded for latency-sensitive loops
func NewHotLoopEngine() *Engine {
	return NewForUseCase("hot-loop")
}

// GetConfigInfo returns information about the current configuration
func GetConfigInfo() string {
	config := LoadConfig()
	source := GetConfigSource()

	return fmt.Sprintf("Configuration Source: %s\nInitial Buckets: %d\nBucket Capacity: %d\nScope Count: %d\nIntern Capacity: %d\nDecimal Accuracy: %d",
		source, config.InitialBuckets, config.InitialBucketCapacity, config.InitialScopeCount,
		config.InitialInternCapacity, config.DecimalAccuracy)
}
