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

// Package report computes batch statistics over a crawl worker log: unique
// page counts and page length rankings. It is pure post-processing of
// already-fetched data; it shares no state with the frontier pipeline.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/kennygrant/sanitize"
	"golang.org/x/sync/errgroup"
)

// downloadPattern matches the "Downloaded <url>, status <code>" lines the
// crawl worker writes for every completed fetch.
var downloadPattern = regexp.MustCompile(`Downloaded (https?://[^\s,]+), status <(\d+)>`)

// Download is one fetch recorded in a worker log.
type Download struct {
	URL    string
	Status int
}

// ParseWorkerLog extracts the downloads recorded in a worker log. Lines that
// do not match the download format are skipped.
func ParseWorkerLog(r io.Reader) ([]Download, error) {
	var downloads []Download

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := downloadPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		status, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		downloads = append(downloads, Download{URL: m[1], Status: status})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read worker log: %w", err)
	}

	return downloads, nil
}

// UniquePageCount counts distinct pages by URL, ignoring fragments: a page
// and page#section are the same resource.
func UniquePageCount(downloads []Download) int {
	unique := make(map[string]struct{}, len(downloads))
	for _, d := range downloads {
		unique[defragment(d.URL)] = struct{}{}
	}
	return len(unique)
}

// defragment strips the fragment from a URL. Unparseable URLs are counted
// as-is rather than dropped.
func defragment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	return u.String()
}

// WordCount counts the words in an HTML document, excluding markup.
func WordCount(html []byte) int {
	text := sanitize.HTML(string(html))
	return len(strings.Fields(text))
}

// FetchFunc retrieves the body of a URL. Used by LongestPage so the report
// stays decoupled from any particular HTTP client.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// PageLength is a page ranked by its visible word count.
type PageLength struct {
	URL   string
	Words int
}

// LongestPage finds the successfully downloaded page with the highest word
// count, fetching bodies with up to parallelism concurrent requests. Pages
// that fail to fetch are skipped, not fatal. Returns the zero PageLength when
// no page could be measured.
func LongestPage(ctx context.Context, downloads []Download, fetch FetchFunc, parallelism int) (PageLength, error) {
	if parallelism <= 0 {
		parallelism = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	var mu sync.Mutex
	var longest PageLength

	for _, d := range downloads {
		if d.Status != 200 {
			continue
		}
		pageURL := d.URL
		g.Go(func() error {
			body, err := fetch(ctx, pageURL)
			if err != nil {
				// One unreachable page must not abort the report
				return nil
			}
			words := WordCount(body)

			mu.Lock()
			if words > longest.Words {
				longest = PageLength{URL: pageURL, Words: words}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return PageLength{}, err
	}
	return longest, nil
}
