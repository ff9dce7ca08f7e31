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

	whatwgUrl "github.com/nlnwa/whatwg-url/url"
)

var urlParser = whatwgUrl.NewParser(whatwgUrl.WithPercentEncodeSinglePercentSign())

// hostMatchesDomain reports whether host equals domain or is a subdomain of it.
// The match is anchored at a domain-label boundary, so "evil-ics.uci.edu.attacker.com"
// does not match "ics.uci.edu".
func hostMatchesDomain(host, domain string) bool {
	host = strings.ToLower(host)
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))
	if domain == "" {
		return false
	}
	if host == domain {
		return true
	}
	return strings.HasSuffix(host, "."+domain)
}

// pathDepth counts the non-empty segments of a URL path.
// "/a/b/c" and "/a/b/c/" both have depth 3.
func pathDepth(path string) int {
	depth := 0
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			depth++
		}
	}
	return depth
}

// lastPathSegment returns the final segment of a URL path, lowercased.
func lastPathSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return strings.ToLower(path)
}
