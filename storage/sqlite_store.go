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
	"fmt"
	"math/bits"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// FingerprintRow is the persisted form of a content fingerprint.
// The uint64 value is bit-cast to int64 because SQLite has no unsigned
// 64-bit integer type.
type FingerprintRow struct {
	ID        uint  `gorm:"primaryKey"`
	Value     int64 `gorm:"not null;uniqueIndex"`
	CreatedAt int64 `gorm:"autoCreateTime"`
}

// TableName overrides gorm's default table naming
func (FingerprintRow) TableName() string {
	return "fingerprints"
}

// SQLiteFingerprintStore persists fingerprints to a SQLite database so a
// dedup baseline can survive the process. The Hamming scan is served from an
// in-memory mirror of the table, loaded once at Init; inserts append to both.
type SQLiteFingerprintStore struct {
	path string
	db   *gorm.DB
	mem  []uint64
	lock sync.Mutex
}

// NewSQLiteFingerprintStore creates a store backed by the database file at
// path. Init must be called before use.
func NewSQLiteFingerprintStore(path string) *SQLiteFingerprintStore {
	return &SQLiteFingerprintStore{path: path}
}

// Init opens the database, migrates the schema and loads the existing
// fingerprints into the in-memory mirror.
func (s *SQLiteFingerprintStore) Init() error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open fingerprint database: %w", err)
	}
	if err := db.AutoMigrate(&FingerprintRow{}); err != nil {
		return fmt.Errorf("failed to migrate fingerprint schema: %w", err)
	}

	var rows []FingerprintRow
	if err := db.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load fingerprints: %w", err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.db = db
	s.mem = make([]uint64, 0, len(rows))
	for _, row := range rows {
		s.mem = append(s.mem, uint64(row.Value))
	}
	return nil
}

// AddIfNovel implements FingerprintStore.AddIfNovel()
func (s *SQLiteFingerprintStore) AddIfNovel(fp uint64, threshold int) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, seen := range s.mem {
		if bits.OnesCount64(fp^seen) <= threshold {
			return false, nil
		}
	}

	if err := s.db.Create(&FingerprintRow{Value: int64(fp)}).Error; err != nil {
		return false, fmt.Errorf("failed to persist fingerprint: %w", err)
	}
	s.mem = append(s.mem, fp)
	return true, nil
}

// Len implements FingerprintStore.Len()
func (s *SQLiteFingerprintStore) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.mem)
}
