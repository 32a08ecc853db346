// config.go: Configuration system for the Calliope text buffer engine
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package calliope

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config holds the engine's initialization parameters. They are applied
// once at engine construction and are not safely mutable mid-use.
type Config struct {
	// InitialBuckets is the number of distinct lengths (1..InitialBuckets)
	// pre-bucketed at engine start.
	InitialBuckets int

	// InitialBucketCapacity is the number of idle buffers seeded into each
	// bucket when it is created.
	InitialBucketCapacity int

	// InitialScopeCount is the number of idle scope objects pre-created on
	// the scope free list.
	InitialScopeCount int

	// InitialInternCapacity is the initial capacity of the intern table.
	InitialInternCapacity int

	// DecimalAccuracy is the fixed number of fractional digits written by
	// FormatFloat.
	DecimalAccuracy int

	// FillByte is the sentinel written into idle buffer storage so stale
	// reads after release are visibly invalid.
	FillByte byte
}

// SimpleConfig represents the complete configuration from calliope.json
type SimpleConfig struct {
	InitialBuckets        int    `json:"initial_buckets"`
	InitialBucketCapacity int    `json:"initial_bucket_capacity"`
	InitialScopeCount     int    `json:"initial_scope_count"`
	InitialInternCapacity int    `json:"initial_intern_capacity"`
	DecimalAccuracy       int    `json:"decimal_accuracy"`
	FillByte              string `json:"fill_byte"`
}

// Global configuration state
var (
	globalConfig *Config
	configMutex  sync.RWMutex
)

// SetGlobalConfig sets the global configuration for power users
// This should be called in init() function of a calliope_config.go file
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = &config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// withDefaults fills unset fields with the engine defaults.
func (c Config) withDefaults() Config {
	if c.InitialBuckets < 0 {
		c.InitialBuckets = 0
	}
	if c.InitialBucketCapacity <= 0 {
		c.InitialBucketCapacity = 4
	}
	if c.InitialScopeCount <= 0 {
		c.InitialScopeCount = 4
	}
	if c.InitialInternCapacity < 0 {
		c.InitialInternCapacity = 0
	}
	if c.DecimalAccuracy <= 0 {
		c.DecimalAccuracy = 3
	}
	if c.DecimalAccuracy > 18 {
		c.DecimalAccuracy = 18 // 10^19 overflows the uint64 scaler
	}
	if c.FillByte == 0 {
		c.FillByte = '~'
	}
	return c
}

// loadConfig loads configuration with priority: Go config > JSON config > defaults
func loadConfig() Config {
	// Check if power user has set global config via Go file
	if config := GetGlobalConfig(); config != nil {
		return *config
	}

	// Try to load from calliope.json
	if config, err := loadJSONConfig(); err == nil {
		return config
	}

	// Return sensible defaults
	return getDefaultConfig()
}

// loadJSONConfig loads configuration from calliope.json
func loadJSONConfig() (Config, error) {
	configPath := findConfigFile()
	if configPath == "" {
		return Config{}, fmt.Errorf("calliope.json not found")
	}

	if filepath.Base(configPath) != "calliope.json" || strings.Contains(configPath, "..") {
		return Config{}, fmt.Errorf("invalid config file path: %s", configPath)
	}
	// nosec G304 - configPath is validated above to prevent path traversal
	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %v", configPath, err)
	}

	var simpleConfig SimpleConfig
	if err := json.Unmarshal(data, &simpleConfig); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	// Convert simple config to full config
	config := getDefaultConfig()

	if simpleConfig.InitialBuckets > 0 {
		config.InitialBuckets = simpleConfig.InitialBuckets
	}
	if simpleConfig.InitialBucketCapacity > 0 {
		config.InitialBucketCapacity = simpleConfig.InitialBucketCapacity
	}
	if simpleConfig.InitialScopeCount > 0 {
		config.InitialScopeCount = simpleConfig.InitialScopeCount
	}
	if simpleConfig.InitialInternCapacity > 0 {
		config.InitialInternCapacity = simpleConfig.InitialInternCapacity
	}
	if simpleConfig.DecimalAccuracy > 0 {
		config.DecimalAccuracy = simpleConfig.DecimalAccuracy
	}
	if simpleConfig.FillByte != "" {
		if len(simpleConfig.FillByte) != 1 {
			return Config{}, fmt.Errorf("invalid fill_byte in %s: want a single character, got %q", configPath, simpleConfig.FillByte)
		}
		config.FillByte = simpleConfig.FillByte[0]
	}

	return config, nil
}

// findConfigFile searches for calliope.json in current and parent directories
func findConfigFile() string {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up to 5 parent directories
	for i := 0; i < 5; i++ {
		configPath := filepath.Join(dir, "calliope.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}

// getDefaultConfig returns the hot-loop oriented default configuration
func getDefaultConfig() Config {
	return Config{
		InitialBuckets:        16, // Pre-bucket the short lengths hot loops produce
		InitialBucketCapacity: 4,
		InitialScopeCount:     4,
		InitialInternCapacity: 16,
		DecimalAccuracy:       3,
		FillByte:              '~',
	}
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return getDefaultConfig()
}

// LoadConfig loads the current configuration (for debugging/inspection)
func LoadConfig() Config {
	return loadConfig()
}

// GetConfigSource returns information about the configuration source
func GetConfigSource() string {
	if GetGlobalConfig() != nil {
		return "Go configuration (calliope_config.go)"
	}

	if findConfigFile() != "" {
		return "JSON configuration (calliope.json)"
	}

	return "Default configuration"
}
