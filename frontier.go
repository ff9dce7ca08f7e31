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

// Package frontier decides which outbound links of a fetched page are worth
// crawling. Per page it (a) suppresses near-duplicate content via 64-bit
// simhash fingerprints, (b) extracts candidate links from the HTML body and
// (c) filters each candidate through a fixed scope policy. Fetching, frontier
// scheduling and politeness are external collaborators.
package frontier

import (
	"log/slog"
	"net/http"

	"github.com/agentberlin/frontier/storage"
)

// Config holds the configuration for a Controller. The zero value of every
// field has a usable default except Policy, which must name at least one
// allowed domain.
type Config struct {
	// Policy is the crawl scope policy. Required.
	Policy ScopePolicy
	// Threshold is the Hamming-distance bound for near-duplicate detection.
	// Zero or negative means DefaultHammingThreshold.
	Threshold int
	// Store holds the content fingerprints for the crawl run. Nil means a
	// fresh in-memory store scoped to this controller.
	Store storage.FingerprintStore
	// Logger receives structured diagnostics for rejected URLs and suppressed
	// pages. Nil means slog.Default().
	Logger *slog.Logger
}

// Controller runs the per-page admission pipeline: duplicate suppression,
// link extraction, scope filtering. It is safe for concurrent use; the
// policy is immutable and the fingerprint store serializes its own access.
type Controller struct {
	filter   *ScopeFilter
	detector *Detector
	logger   *slog.Logger
}

// NewController validates the configuration and builds the pipeline.
// Misconfiguration (empty domain allowlist, bad glob pattern, unusable store)
// is fatal here; per-page anomalies never are.
func NewController(config *Config) (*Controller, error) {
	if config == nil {
		config = &Config{Policy: DefaultPolicy()}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filter, err := NewScopeFilter(config.Policy, logger)
	if err != nil {
		return nil, err
	}

	threshold := config.Threshold
	if threshold <= 0 {
		threshold = DefaultHammingThreshold
	}
	detector, err := NewDetector(config.Store, threshold, logger)
	if err != nil {
		return nil, err
	}

	return &Controller{
		filter:   filter,
		detector: detector,
		logger:   logger,
	}, nil
}

// Process runs one fetched page through the pipeline and returns the
// in-scope outbound URLs, in document order, for the frontier to schedule.
//
// Failed fetches and empty bodies yield nil. Pages whose visible text is a
// near-duplicate of previously accepted content also yield nil: their links
// contribute nothing new, since an equivalent page has already been explored.
// Cross-run URL-level dedup and queueing belong to the external frontier.
func (c *Controller) Process(sourceURL string, resp *FetchResult) []string {
	if resp == nil || resp.Status != http.StatusOK || len(resp.Body) == 0 {
		return nil
	}

	text := VisibleText(resp.Body)
	if c.detector.ShouldSuppress(text) {
		c.logger.Debug("page suppressed as near-duplicate", "url", sourceURL)
		return nil
	}

	var inScope []string
	for _, link := range ExtractLinks(sourceURL, resp) {
		if c.filter.InScope(link) {
			inScope = append(inScope, link)
		}
	}
	return inScope
}

// InScope exposes the scope predicate for callers that filter URLs from
// sources other than page bodies (sitemaps, seed lists).
func (c *Controller) InScope(rawURL string) bool {
	return c.filter.InScope(rawURL)
}

// StoreSize returns the number of content fingerprints accepted so far.
func (c *Controller) StoreSize() int {
	return c.detector.StoreSize()
}
