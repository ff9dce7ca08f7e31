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
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FetchResult is the outcome of fetching a single page, produced by the
// external fetch layer. Body is nil when the fetch failed or returned no
// content.
type FetchResult struct {
	// URL is the URL that was requested.
	URL string
	// Status is the HTTP status code of the response.
	Status int
	// Body is the raw response body, nil if unavailable.
	Body []byte
}

// ExtractLinks parses the fetched page body as HTML and returns every anchor
// href resolved against the source URL, in document order. Duplicates are not
// removed here; URL-level dedup belongs to the frontier.
//
// A non-200 status or an empty body yields no links: that is the expected
// "nothing to extract" case, not a failure. Malformed hrefs are skipped
// silently so one bad anchor never discards the rest of the page.
func ExtractLinks(sourceURL string, resp *FetchResult) []string {
	if resp == nil || resp.Status != http.StatusOK || len(resp.Body) == 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil
	}

	// Honor <base href> when present; hrefs resolve against it instead of
	// the source URL.
	base := sourceURL
	if href, found := doc.Find("base[href]").Attr("href"); found {
		if u, err := urlParser.ParseRef(sourceURL, href); err == nil {
			base = u.Href(false)
		}
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		u, err := urlParser.ParseRef(base, href)
		if err != nil {
			return
		}
		links = append(links, u.Href(false))
	})

	return links
}
