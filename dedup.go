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

package frontier

import (
	"log/slog"

	"github.com/agentberlin/frontier/storage"
)

// DefaultHammingThreshold is the default number of differing bits under which
// two fingerprints are considered the same content. An empirically tuned
// bound, exposed as a policy knob rather than a fixed behavior.
const DefaultHammingThreshold = 3

// Detector decides whether a page's content is a near-duplicate of something
// already seen in this crawl run. It owns the FingerprintStore exclusively;
// no other component reads or writes it.
type Detector struct {
	store     storage.FingerprintStore
	threshold int
	logger    *slog.Logger
}

// NewDetector creates a detector over the given store. A nil store gets a
// fresh in-memory store; a negative threshold falls back to
// DefaultHammingThreshold; a nil logger falls back to slog.Default().
func NewDetector(store storage.FingerprintStore, threshold int, logger *slog.Logger) (*Detector, error) {
	if store == nil {
		store = &storage.InMemoryFingerprintStore{}
	}
	if err := store.Init(); err != nil {
		return nil, err
	}
	if threshold < 0 {
		threshold = DefaultHammingThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		store:     store,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// ShouldSuppress reports whether the page text is a near-duplicate of content
// already seen. Novel content has its fingerprint added to the store as a
// side effect; duplicate content leaves the store unchanged, since an
// equivalent page is already represented.
//
// The scan is O(store size) per page. Each page is processed once and never
// re-scored, so this degrades linearly with crawl size.
func (d *Detector) ShouldSuppress(text string) bool {
	fp := Simhash(text)

	novel, err := d.store.AddIfNovel(uint64(fp), d.threshold)
	if err != nil {
		// A storage failure must not stall the crawl; treat the page as novel
		// and move on.
		d.logger.Error("fingerprint store failure", "error", err)
		return false
	}

	if !novel {
		d.logger.Debug("near-duplicate content suppressed",
			"fingerprint", uint64(fp),
			"threshold", d.threshold,
			"store_size", d.store.Len())
	}
	return !novel
}

// StoreSize returns the number of fingerprints accepted so far.
func (d *Detector) StoreSize() int {
	return d.store.Len()
}
