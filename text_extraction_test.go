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
	"strings"
	"testing"
)

func TestVisibleTextStripsTagsAndScripts(t *testing.T) {
	html := []byte(`
		<html>
			<head>
				<title>Dept Home</title>
				<style>body { color: red; }</style>
			</head>
			<body>
				<script>console.log("tracking");</script>
				<h1>Welcome</h1>
				<p>Research   and
				teaching.</p>
				<noscript>Enable JS</noscript>
			</body>
		</html>
	`)

	text := VisibleText(html)

	if strings.Contains(text, "console.log") {
		t.Error("script bodies must not appear in visible text")
	}
	if strings.Contains(text, "color: red") {
		t.Error("style bodies must not appear in visible text")
	}
	if strings.Contains(text, "Enable JS") {
		t.Error("noscript bodies must not appear in visible text")
	}
	if !strings.Contains(text, "Welcome") || !strings.Contains(text, "Research and teaching.") {
		t.Errorf("expected visible text with normalized whitespace, got %q", text)
	}
}

func TestVisibleTextMarkupInsensitive(t *testing.T) {
	a := VisibleText([]byte(`<html><body><p>same words here</p></body></html>`))
	b := VisibleText([]byte(`<html><body><div><span>same</span>
		<span>words</span> <em>here</em></div></body></html>`))
	if a != b {
		t.Errorf("layout changes should not affect extracted text: %q != %q", a, b)
	}
}

func TestVisibleTextEmptyInput(t *testing.T) {
	if got := VisibleText(nil); got != "" {
		t.Errorf("VisibleText(nil) = %q, want empty", got)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a  b", "a b"},
		{"\n\ta \n b\t", "a b"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalizeWhitespace(tt.input); got != tt.want {
			t.Errorf("normalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
