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

package storage

import (
	"math/bits"
	"sync"
)

// FingerprintStore holds the content fingerprints accepted so far in a crawl
// run. The store only ever grows; there is no removal or invalidation path.
// The default store of the detector is the InMemoryFingerprintStore.
type FingerprintStore interface {
	// Init initializes the store
	Init() error
	// AddIfNovel atomically scans the store for any fingerprint within
	// threshold Hamming distance of fp. If none is found the fingerprint is
	// added and AddIfNovel returns true; otherwise the store is unchanged and
	// it returns false. The scan and the insert are a single atomic step so
	// that two pages processed concurrently are never both judged novel
	// against each other.
	AddIfNovel(fp uint64, threshold int) (bool, error)
	// Len returns the number of stored fingerprints
	Len() int
}

// InMemoryFingerprintStore keeps fingerprints in memory without persisting
// data on the disk. The store is discarded with the crawl process.
type InMemoryFingerprintStore struct {
	fingerprints []uint64
	lock         *sync.Mutex
}

// Init implements FingerprintStore.Init()
func (s *InMemoryFingerprintStore) Init() error {
	if s.lock == nil {
		s.lock = &sync.Mutex{}
	}
	return nil
}

// AddIfNovel implements FingerprintStore.AddIfNovel()
func (s *InMemoryFingerprintStore) AddIfNovel(fp uint64, threshold int) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, seen := range s.fingerprints {
		if bits.OnesCount64(fp^seen) <= threshold {
			return false, nil
		}
	}

	s.fingerprints = append(s.fingerprints, fp)
	return true, nil
}

// Len implements FingerprintStore.Len()
func (s *InMemoryFingerprintStore) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.fingerprints)
}
