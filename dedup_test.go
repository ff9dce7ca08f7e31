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
	"sync"
	"testing"
)

func newTestDetector(t *testing.T, threshold int) *Detector {
	t.Helper()
	d, err := NewDetector(nil, threshold, nil)
	if err != nil {
		t.Fatalf("NewDetector failed: %v", err)
	}
	return d
}

func TestDetectorSuppressionIdempotence(t *testing.T) {
	d := newTestDetector(t, DefaultHammingThreshold)
	text := "graduate admissions frequently asked questions and answers"

	if d.ShouldSuppress(text) {
		t.Fatal("first sighting must be novel")
	}
	if !d.ShouldSuppress(text) {
		t.Fatal("second sighting of identical text must be suppressed")
	}
	if got := d.StoreSize(); got != 1 {
		t.Errorf("store size after both calls = %d, want 1", got)
	}
}

func TestDetectorDistinctContentIsNovel(t *testing.T) {
	d := newTestDetector(t, DefaultHammingThreshold)

	a := corpusText("alpha", 400)
	b := corpusText("beta", 400)

	if d.ShouldSuppress(a) {
		t.Fatal("first document must be novel")
	}
	if d.ShouldSuppress(b) {
		t.Fatal("unrelated document must not be suppressed")
	}
	if got := d.StoreSize(); got != 2 {
		t.Errorf("store size = %d, want 2", got)
	}
}

func TestDetectorNearDuplicateSuppressed(t *testing.T) {
	// Wide threshold: a single-word edit in a long document must land within
	// it (the statistical bound is exercised in simhash_test.go).
	d := newTestDetector(t, 16)

	base := corpusText("gamma", 400)
	if d.ShouldSuppress(base) {
		t.Fatal("first document must be novel")
	}
	if !d.ShouldSuppress(base + " postscript") {
		t.Error("near-identical document should be suppressed")
	}
	if got := d.StoreSize(); got != 1 {
		t.Errorf("suppressed duplicate must not grow the store, size = %d", got)
	}
}

// Check-then-insert must be atomic: concurrent sightings of the same text
// must produce exactly one novel classification.
func TestDetectorConcurrentCheckInsert(t *testing.T) {
	d := newTestDetector(t, DefaultHammingThreshold)
	text := "concurrent crawl workers racing on one page body"

	const workers = 32
	var wg sync.WaitGroup
	novel := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			novel <- !d.ShouldSuppress(text)
		}()
	}
	wg.Wait()
	close(novel)

	count := 0
	for n := range novel {
		if n {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one novel classification, got %d", count)
	}
	if got := d.StoreSize(); got != 1 {
		t.Errorf("store size = %d, want 1", got)
	}
}

func TestDetectorNegativeThresholdDefaults(t *testing.T) {
	d, err := NewDetector(nil, -1, nil)
	if err != nil {
		t.Fatalf("NewDetector failed: %v", err)
	}
	if d.threshold != DefaultHammingThreshold {
		t.Errorf("threshold = %d, want %d", d.threshold, DefaultHammingThreshold)
	}
}
