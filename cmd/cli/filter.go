// Copyright 2025 Agentic World, LLC (Sherin Thomas)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/agentberlin/frontier"
)

// filterFlags holds the flags for the filter command
type filterFlags struct {
	policyPath string
	verbose    bool
	invert     bool
}

// runFilter reads URLs from stdin, one per line, and writes the in-scope
// ones to stdout. With --invert it writes the rejected ones instead, with
// the failing stage and reason.
func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	var flags filterFlags
	fs.StringVar(&flags.policyPath, "policy", "", "Path to a YAML scope policy (default: built-in UCI policy)")
	fs.BoolVar(&flags.verbose, "verbose", false, "Log a structured diagnostic for every rejected URL")
	fs.BoolVar(&flags.invert, "invert", false, "Print rejected URLs with stage and reason instead of accepted ones")
	if err := fs.Parse(args); err != nil {
		return err
	}

	policy, err := loadPolicy(flags.policyPath)
	if err != nil {
		return err
	}

	filter, err := frontier.NewScopeFilter(policy, newLogger(flags.verbose))
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		rawURL := scanner.Text()
		if rawURL == "" {
			continue
		}
		ok, rejection := filter.Check(rawURL)
		switch {
		case ok && !flags.invert:
			fmt.Println(rawURL)
		case !ok && flags.invert:
			fmt.Printf("%s\t%s\t%s\n", rawURL, rejection.Stage, rejection.Reason)
		case !ok && flags.verbose:
			// Check bypasses InScope's logging; report here instead
			slog.Debug("url rejected", "url", rawURL, "stage", string(rejection.Stage), "reason", rejection.Reason)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read urls: %w", err)
	}
	return nil
}

// loadPolicy loads a YAML policy file, or the built-in default when path is
// empty. The FRONTIER_POLICY environment variable supplies the path when the
// flag does not.
func loadPolicy(path string) (frontier.ScopePolicy, error) {
	if path == "" {
		path = os.Getenv("FRONTIER_POLICY")
	}
	if path == "" {
		return frontier.DefaultPolicy(), nil
	}
	return frontier.LoadPolicy(path)
}

// newLogger builds the CLI logger. Verbose enables the per-URL debug
// diagnostics; otherwise only warnings and errors reach stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
