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
	"reflect"
	"testing"
)

func TestExtractLinksResolvesAgainstSource(t *testing.T) {
	body := []byte(`
		<html><body>
			<a href="/about">About</a>
			<a href="research/labs">Labs</a>
			<a href="https://stat.uci.edu/seminars">Seminars</a>
		</body></html>
	`)
	resp := &FetchResult{URL: "https://ics.uci.edu/dept/home", Status: 200, Body: body}

	got := ExtractLinks("https://ics.uci.edu/dept/home", resp)
	want := []string{
		"https://ics.uci.edu/about",
		"https://ics.uci.edu/dept/research/labs",
		"https://stat.uci.edu/seminars",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks = %v, want %v", got, want)
	}
}

func TestExtractLinksKeepsDocumentOrderAndDuplicates(t *testing.T) {
	body := []byte(`
		<html><body>
			<a href="/a">first</a>
			<a href="/b">second</a>
			<a href="/a">first again</a>
		</body></html>
	`)
	resp := &FetchResult{URL: "https://ics.uci.edu/", Status: 200, Body: body}

	got := ExtractLinks("https://ics.uci.edu/", resp)
	want := []string{
		"https://ics.uci.edu/a",
		"https://ics.uci.edu/b",
		"https://ics.uci.edu/a",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks = %v, want %v (dedup belongs downstream, not here)", got, want)
	}
}

func TestExtractLinksSkipsMalformedHrefs(t *testing.T) {
	body := []byte(`
		<html><body>
			<a href="http://[oops">broken</a>
			<a href="/fine">fine</a>
			<a href="">empty</a>
		</body></html>
	`)
	resp := &FetchResult{URL: "https://ics.uci.edu/", Status: 200, Body: body}

	got := ExtractLinks("https://ics.uci.edu/", resp)
	want := []string{"https://ics.uci.edu/fine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks = %v, want %v", got, want)
	}
}

func TestExtractLinksHonorsBaseTag(t *testing.T) {
	body := []byte(`
		<html><head><base href="https://ics.uci.edu/sub/"></head>
		<body><a href="z">z</a></body></html>
	`)
	resp := &FetchResult{URL: "https://ics.uci.edu/other", Status: 200, Body: body}

	got := ExtractLinks("https://ics.uci.edu/other", resp)
	want := []string{"https://ics.uci.edu/sub/z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks = %v, want %v", got, want)
	}
}

func TestExtractLinksEmptyOnFailure(t *testing.T) {
	body := []byte(`<html><body><a href="/x">x</a></body></html>`)

	tests := []struct {
		name string
		resp *FetchResult
	}{
		{"nil response", nil},
		{"status 404", &FetchResult{URL: "https://ics.uci.edu/", Status: 404, Body: body}},
		{"status 301", &FetchResult{URL: "https://ics.uci.edu/", Status: 301, Body: body}},
		{"empty body", &FetchResult{URL: "https://ics.uci.edu/", Status: 200, Body: nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLinks("https://ics.uci.edu/", tt.resp); len(got) != 0 {
				t.Errorf("expected no links, got %v", got)
			}
		})
	}
}

func TestExtractLinksNonHTMLBody(t *testing.T) {
	resp := &FetchResult{URL: "https://ics.uci.edu/data", Status: 200, Body: []byte("just plain text, no anchors")}
	if got := ExtractLinks("https://ics.uci.edu/data", resp); len(got) != 0 {
		t.Errorf("expected no links from non-HTML body, got %v", got)
	}
}
