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
	"math/bits"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// fingerprintBits is the width of a content fingerprint.
const fingerprintBits = 64

// Fingerprint is a 64-bit locality-sensitive summary of a document's token
// stream. Similar documents yield fingerprints within a few bits of each
// other; unrelated documents differ in roughly half their bits. It is not a
// cryptographic digest: rare collisions across dissimilar pages are expected.
type Fingerprint uint64

// Simhash computes the fingerprint of a text. Each token contributes its
// 64-bit hash to a per-bit vote, weighted by how often the token occurs;
// the majority of each bit position forms the final fingerprint.
func Simhash(text string) Fingerprint {
	var votes [fingerprintBits]int

	for token, weight := range tokenWeights(text) {
		h := xxhash.Sum64String(token)
		for i := 0; i < fingerprintBits; i++ {
			if h&(1<<uint(i)) != 0 {
				votes[i] += weight
			} else {
				votes[i] -= weight
			}
		}
	}

	var fp uint64
	for i, v := range votes {
		if v > 0 {
			fp |= 1 << uint(i)
		}
	}
	return Fingerprint(fp)
}

// Distance returns the Hamming distance between two fingerprints: the number
// of bit positions in which they differ.
func Distance(a, b Fingerprint) int {
	return bits.OnesCount64(uint64(a ^ b))
}

// tokenWeights tokenizes text into lowercase alphanumeric words and counts
// occurrences. Everything else is treated as a separator.
func tokenWeights(text string) map[string]int {
	weights := make(map[string]int)
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, token := range tokens {
		weights[token]++
	}
	return weights
}
