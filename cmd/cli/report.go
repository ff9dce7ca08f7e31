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
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentberlin/frontier/report"
)

// reportFlags holds the flags for the report command
type reportFlags struct {
	logPath     string
	longest     bool
	parallelism int
	timeout     time.Duration
}

// runReport computes statistics over a crawl worker log: the number of
// unique pages downloaded, and optionally the longest page by word count
// (which re-fetches the status-200 pages).
func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var flags reportFlags
	fs.StringVar(&flags.logPath, "log", "", "Path to the worker log (required)")
	fs.BoolVar(&flags.longest, "longest", false, "Also find the longest page by word count (re-fetches pages)")
	fs.IntVar(&flags.parallelism, "parallelism", 5, "Concurrent fetches for --longest")
	fs.DurationVar(&flags.timeout, "timeout", 10*time.Second, "Per-request timeout for --longest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.logPath == "" {
		return fmt.Errorf("--log is required")
	}

	f, err := os.Open(flags.logPath)
	if err != nil {
		return fmt.Errorf("failed to open worker log: %w", err)
	}
	defer f.Close()

	downloads, err := report.ParseWorkerLog(f)
	if err != nil {
		return err
	}

	fmt.Printf("Downloads recorded: %d\n", len(downloads))
	fmt.Printf("Unique pages: %d\n", report.UniquePageCount(downloads))

	if !flags.longest {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: flags.timeout}
	fetch := func(ctx context.Context, url string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	longest, err := report.LongestPage(ctx, downloads, fetch, flags.parallelism)
	if err != nil {
		return err
	}
	if longest.URL == "" {
		fmt.Println("No page could be measured.")
		return nil
	}
	fmt.Printf("Longest page: %s (%d words)\n", longest.URL, longest.Words)
	return nil
}
