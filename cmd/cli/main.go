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

// Frontier CLI
//
// Command-line interface for the frontier crawl-scope controller. Provides
// programmatic access to scope filtering, per-page link admission, and crawl
// log reporting.
//
// Usage:
//
//	frontier <command> [flags]
//
// Commands:
//
//	filter    Filter a list of URLs against a scope policy
//	links     Extract and filter outbound links from a fetched page
//	report    Compute statistics over a crawl worker log
//	version   Show version information
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/agentberlin/frontier/internal/version"
)

func main() {
	// Optional .env for policy/database paths; absence is not an error
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "filter":
		if err := runFilter(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "links":
		if err := runLinks(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "report":
		if err := runReport(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version", "-v", "--version":
		fmt.Printf("Frontier CLI %s\n", version.CurrentVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Frontier CLI - Crawl scope and duplicate-content controller

Usage:
  frontier <command> [flags]

Commands:
  filter    Filter URLs (stdin, one per line) against a scope policy
  links     Extract in-scope outbound links from a fetched page body
  report    Compute statistics over a crawl worker log
  version   Show version information

Run 'frontier <command> -h' for command flags.`)
}
