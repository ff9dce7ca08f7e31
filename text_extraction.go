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
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VisibleText extracts all visible text from HTML, removing tags, scripts and
// styles. Whitespace is normalized so that markup layout does not affect the
// fingerprint. Unparseable content yields the empty string: one page's broken
// markup is absorbed here, never propagated.
func VisibleText(htmlBody []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBody))
	if err != nil {
		return ""
	}

	// Script and style bodies are not visible text
	doc.Find("script, style, noscript").Remove()

	return normalizeWhitespace(doc.Text())
}

// normalizeWhitespace collapses runs of whitespace (spaces, tabs, newlines)
// into single spaces and trims the ends.
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
