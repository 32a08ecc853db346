// config_validator.go: Smart configuration validation and optimization
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import "fmt"

// ConfigValidationResult contains validation results and suggestions
type ConfigValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Warnings        []string `json:"warnings"`
	Suggestions     []string `json:"suggestions"`
	OptimizedConfig *Config  `json:"optimized_config,omitempty"`
}

// ValidateConfig validates a configuration and provides optimization suggestions
func ValidateConfig(config Config) ConfigValidationResult {
	result := ConfigValidationResult{
		IsValid:     true,
		Warnings:    []string{},
		Suggestions: []string{},
	}

	// Memory usage estimation
	estimatedMemory := estimateMemoryUsage(config)

	// Validate pre-bucketing
	if config.InitialBuckets < 0 {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Initial bucket count must not be negative")
	} else if config.InitialBuckets > 4096 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Large pre-bucket range (%d lengths) seeds ~%.1f MB of idle buffers at startup",
			config.InitialBuckets, float64(estimatedMemory)/(1024*1024)))
	}

	if config.InitialBucketCapacity < 0 {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Initial bucket capacity must not be negative")
	} else if config.InitialBucketCapacity > 64 {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Bucket capacity %d is deep for a single-threaded engine; 4-16 idle buffers per length is usually enough", config.InitialBucketCapacity))
	}

	// Scope pool sizing: one idle scope per nesting level is plenty
	if config.InitialScopeCount > 64 {
		result.Suggestions = append(result.Suggestions, "Scope free lists deeper than the expected nesting depth are never drawn from")
	}

	// Decimal accuracy bounds for the uint64 scaler
	if config.DecimalAccuracy > 18 {
		result.IsValid = false
		result.Warnings = append(result.Warnings, "Decimal accuracy above 18 overflows the float scaler")
	}

	// A printable sentinel keeps stale-read diagnostics readable
	if config.FillByte != 0 && (config.FillByte < 0x20 || config.FillByte > 0x7e) {
		result.Suggestions = append(result.Suggestions, "Consider a printable fill byte so stale post-release reads are recognizable in logs")
	}

	// Generate optimized config
	if len(result.Suggestions) > 0 {
		result.OptimizedConfig = generateOptimizedConfig(config)
	}

	return result
}

// estimateMemoryUsage provides rough memory usage estimation for the
// pre-seeded buckets plus the intern table headroom.
func estimateMemoryUsage(config Config) int64 {
	buckets := int64(config.InitialBuckets)
	capacity := int64(config.InitialBucketCapacity)
	if capacity <= 0 {
		capacity = 4
	}
	// Pre-bucketed lengths are 1..InitialBuckets, so the seeded storage is
	// capacity * (1 + 2 + ... + buckets) bytes plus per-buffer overhead.
	storage := capacity * buckets * (buckets + 1) / 2
	overhead := capacity * buckets * 48
	return storage + overhead + int64(config.InitialInternCapacity)*64
}

// generateOptimizedConfig creates an optimized version of the config
func generateOptimizedConfig(config Config) *Config {
	optimized := config

	if optimized.InitialBucketCapacity > 64 {
		optimized.InitialBucketCapacity = 16
	}
	if optimized.InitialScopeCount > 64 {
		optimized.InitialScopeCount = 8
	}
	if optimized.FillByte != 0 && (optimized.FillByte < 0x20 || optimized.FillByte > 0x7e) {
		optimized.FillByte = '~'
	}

	return &optimized
}

// GetConfigRecommendation provides configuration recommendations based on use case
func GetConfigRecommendation(useCase string) Config {
	switch useCase {
	case "development":
		return Config{
			InitialBuckets:        8,
			InitialBucketCapacity: 2,
			InitialScopeCount:     2,
			InitialInternCapacity: 8,
			DecimalAccuracy:       3,
			FillByte:              '~',
		}
	case "hot-loop":
		return Config{
			InitialBuckets:        64,
			InitialBucketCapacity: 16,
			InitialScopeCount:     8,
			InitialInternCapacity: 32,
			DecimalAccuracy:       3,
			FillByte:              '~',
		}
	case "log-formatting":
		return Config{
			InitialBuckets:        128,
			InitialBucketCapacity: 8,
			InitialScopeCount:     4,
			InitialInternCapacity: 64,
			DecimalAccuracy:       6,
			FillByte:              '~',
		}
	case "memory-constrained":
		return Config{
			InitialBuckets:        0, // Lazy buckets only
			InitialBucketCapacity: 1,
			InitialScopeCount:     1,
			InitialInternCapacity: 0,
			DecimalAccuracy:       3,
			FillByte:              '~',
		}
	default:
		return getDefaultConfig()
	}
}
