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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agentberlin/frontier"
	"github.com/agentberlin/frontier/storage"
)

// linksFlags holds the flags for the links command
type linksFlags struct {
	sourceURL  string
	bodyPath   string
	status     int
	policyPath string
	dedupDB    string
	threshold  int
	verbose    bool
}

// runLinks feeds one fetched page through the full admission pipeline and
// prints the in-scope outbound links. The body is read from --body or stdin.
// With --dedup-db, fingerprints persist across invocations so repeated runs
// over near-identical pages print nothing.
func runLinks(args []string) error {
	fs := flag.NewFlagSet("links", flag.ExitOnError)
	var flags linksFlags
	fs.StringVar(&flags.sourceURL, "url", "", "Source URL of the fetched page (required)")
	fs.StringVar(&flags.bodyPath, "body", "", "Path to the fetched body (default: stdin)")
	fs.IntVar(&flags.status, "status", 200, "HTTP status code of the fetch")
	fs.StringVar(&flags.policyPath, "policy", "", "Path to a YAML scope policy (default: built-in UCI policy)")
	fs.StringVar(&flags.dedupDB, "dedup-db", "", "SQLite file for persistent fingerprints (default: in-memory)")
	fs.IntVar(&flags.threshold, "threshold", frontier.DefaultHammingThreshold, "Hamming distance threshold for near-duplicate suppression")
	fs.BoolVar(&flags.verbose, "verbose", false, "Log structured diagnostics for rejections and suppression")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.sourceURL == "" {
		return fmt.Errorf("--url is required")
	}

	body, err := readBody(flags.bodyPath)
	if err != nil {
		return err
	}

	policy, err := loadPolicy(flags.policyPath)
	if err != nil {
		return err
	}

	var store storage.FingerprintStore
	if flags.dedupDB != "" {
		store = storage.NewSQLiteFingerprintStore(flags.dedupDB)
	}

	controller, err := frontier.NewController(&frontier.Config{
		Policy:    policy,
		Threshold: flags.threshold,
		Store:     store,
		Logger:    newLogger(flags.verbose),
	})
	if err != nil {
		return err
	}

	result := &frontier.FetchResult{
		URL:    flags.sourceURL,
		Status: flags.status,
		Body:   body,
	}
	for _, link := range controller.Process(flags.sourceURL, result) {
		fmt.Println(link)
	}
	return nil
}

func readBody(path string) ([]byte, error) {
	if path == "" {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
		return body, nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read body file: %w", err)
	}
	return body, nil
}
