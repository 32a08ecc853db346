// /cmd/calliope-cli/main.go: CLI tool for Calliope configuration and inspection
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/agilira/calliope"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "calliope-cli",
		Short:         "Configuration generator and inspector for the Calliope text engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInitCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newDemoCommand())
	return root
}

// newInitCommand writes a calliope.json preset for a use case.
func newInitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "init [use-case]",
		Short: "Generate a calliope.json preset (development, hot-loop, log-formatting, memory-constrained)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useCase := "development"
			if len(args) == 1 {
				useCase = args[0]
			}
			config := calliope.GetConfigRecommendation(useCase)

			simple := calliope.SimpleConfig{
				InitialBuckets:        config.InitialBuckets,
				InitialBucketCapacity: config.InitialBucketCapacity,
				InitialScopeCount:     config.InitialScopeCount,
				InitialInternCapacity: config.InitialInternCapacity,
				DecimalAccuracy:       config.DecimalAccuracy,
				FillByte:              string(config.FillByte),
			}
			data, err := json.MarshalIndent(simple, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s preset to %s\n", useCase, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "calliope.json", "output path")
	return cmd
}

// newValidateCommand runs the config validator against a JSON file.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a calliope.json file and print warnings and suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "calliope.json"
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			var simple calliope.SimpleConfig
			if err := json.Unmarshal(data, &simple); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			config := calliope.Config{
				InitialBuckets:        simple.InitialBuckets,
				InitialBucketCapacity: simple.InitialBucketCapacity,
				InitialScopeCount:     simple.InitialScopeCount,
				InitialInternCapacity: simple.InitialInternCapacity,
				DecimalAccuracy:       simple.DecimalAccuracy,
			}
			if len(simple.FillByte) == 1 {
				config.FillByte = simple.FillByte[0]
			}

			result := calliope.ValidateConfig(config)
			out := cmd.OutOrStdout()
			if result.IsValid {
				fmt.Fprintln(out, "Configuration is valid")
			} else {
				fmt.Fprintln(out, "Configuration is INVALID")
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "  warning: %s\n", w)
			}
			for _, s := range result.Suggestions {
				fmt.Fprintf(out, "  suggestion: %s\n", s)
			}
			if !result.IsValid {
				return fmt.Errorf("%s failed validation", path)
			}
			return nil
		},
	}
}

// newDemoCommand exercises the engine and prints the resulting pool stats.
func newDemoCommand() *cobra.Command {
	var iterations int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a sample formatting workload and print engine statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := calliope.New()
			if verbose {
				logger := log15.New("module", "calliope")
				logger.SetHandler(log15.StreamHandler(cmd.ErrOrStderr(), log15.LogfmtFormat()))
				engine.SetLogger(logger)
			}

			player := engine.Intern("Player")
			for i := 0; i < iterations; i++ {
				err := engine.WithScope(func(*calliope.Scope) error {
					line, err := engine.Format("{0}={1} Score={2}", player, "Jon", i)
					if err != nil {
						return err
					}
					upper, err := engine.ToUpper(line)
					if err != nil {
						return err
					}
					if i == 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "sample: %s\n", upper.String())
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), engine.Stats().String())
			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "workload iterations")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit pool diagnostics to stderr")
	return cmd
}
