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
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// RejectStage identifies which scope check rejected a URL.
type RejectStage string

const (
	StageParse      RejectStage = "parse"
	StageScheme     RejectStage = "scheme"
	StageFragment   RejectStage = "fragment"
	StageExtension  RejectStage = "extension"
	StageDomain     RejectStage = "domain"
	StagePathPrefix RejectStage = "path_prefix"
	StageTrapQuery  RejectStage = "trap_query"
	StageLimits     RejectStage = "limits"
	StagePattern    RejectStage = "pattern"
)

// Rejection describes why a URL was judged out of scope.
type Rejection struct {
	Stage  RejectStage
	Reason string
}

// ScopeFilter is a pure predicate over URL strings: it decides whether a URL
// is admissible for crawling under an immutable ScopePolicy. A ScopeFilter is
// safe for concurrent use; it holds no mutable state.
type ScopeFilter struct {
	policy   ScopePolicy
	patterns []glob.Glob
	logger   *slog.Logger
}

// NewScopeFilter validates the policy, compiles its URL patterns and returns
// a filter ready for use. A nil logger falls back to slog.Default().
func NewScopeFilter(policy ScopePolicy, logger *slog.Logger) (*ScopeFilter, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	patterns := make([]glob.Glob, 0, len(policy.DisallowedURLPatterns))
	for _, pattern := range policy.DisallowedURLPatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid URL pattern %q: %w", pattern, err)
		}
		patterns = append(patterns, g)
	}

	return &ScopeFilter{
		policy:   policy,
		patterns: patterns,
		logger:   logger,
	}, nil
}

// InScope reports whether the URL is admissible for crawling. Rejections are
// logged as structured diagnostics but never change the deterministic outcome.
func (f *ScopeFilter) InScope(rawURL string) bool {
	ok, rejection := f.Check(rawURL)
	if !ok {
		f.logger.Debug("url rejected",
			"url", rawURL,
			"stage", string(rejection.Stage),
			"reason", rejection.Reason)
	}
	return ok
}

// Check evaluates the scope checks in order and returns the first failure.
// The order does not affect the final boolean, only which diagnostic is
// reported. Unparseable URLs are rejected, never propagated as errors.
func (f *ScopeFilter) Check(rawURL string) (bool, Rejection) {
	normalized, err := urlParser.Parse(rawURL)
	if err != nil {
		return false, Rejection{StageParse, err.Error()}
	}
	u, err := url.Parse(normalized.Href(false))
	if err != nil {
		return false, Rejection{StageParse, err.Error()}
	}

	// 1. Scheme: only http and https denote crawlable resources.
	if u.Scheme != "http" && u.Scheme != "https" {
		return false, Rejection{StageScheme, fmt.Sprintf("scheme %q is not http(s)", u.Scheme)}
	}

	// 2. Fragment: a page and page#section are the same resource.
	if u.Fragment != "" {
		return false, Rejection{StageFragment, "url carries a fragment"}
	}

	// 3. Extension: binary and media assets cannot be parsed for links.
	segment := lastPathSegment(u.Path)
	for _, ext := range f.policy.BlockedExtensions {
		if strings.HasSuffix(segment, "."+strings.ToLower(ext)) {
			return false, Rejection{StageExtension, fmt.Sprintf("blocked extension .%s", ext)}
		}
	}

	// 4. Domain: host must be equal to, or a subdomain of, an allowed domain.
	host := u.Hostname()
	matched := false
	for _, domain := range f.policy.AllowedDomains {
		if hostMatchesDomain(host, domain) {
			matched = true
			break
		}
	}
	if !matched {
		return false, Rejection{StageDomain, fmt.Sprintf("host %q outside allowed domains", host)}
	}

	// 5. Path restriction: a matching domain may still be narrowed to a prefix.
	if prefix, ok := f.policy.PathRestrictions[strings.ToLower(host)]; ok {
		if !strings.HasPrefix(u.Path, prefix) {
			return false, Rejection{StagePathPrefix, fmt.Sprintf("path must start with %q", prefix)}
		}
	}

	// 6. Trap query: calendar/pagination/session-id patterns generate
	// unbounded URL spaces.
	query := strings.ToLower(u.RawQuery)
	for _, key := range f.policy.TrapQueryKeys {
		if strings.Contains(query, strings.ToLower(key)) {
			return false, Rejection{StageTrapQuery, fmt.Sprintf("query contains trap key %q", key)}
		}
	}

	// 7. Size and depth ceilings guard against runaway generated paths.
	if f.policy.MaxPathLength > 0 && len(u.Path) > f.policy.MaxPathLength {
		return false, Rejection{StageLimits, fmt.Sprintf("path length %d exceeds %d", len(u.Path), f.policy.MaxPathLength)}
	}
	if f.policy.MaxQueryLength > 0 && len(u.RawQuery) > f.policy.MaxQueryLength {
		return false, Rejection{StageLimits, fmt.Sprintf("query length %d exceeds %d", len(u.RawQuery), f.policy.MaxQueryLength)}
	}
	if f.policy.MaxPathDepth > 0 && pathDepth(u.Path) > f.policy.MaxPathDepth {
		return false, Rejection{StageLimits, fmt.Sprintf("path depth %d exceeds %d", pathDepth(u.Path), f.policy.MaxPathDepth)}
	}

	// 8. Disallowed URL patterns, matched against the full URL.
	for i, pattern := range f.patterns {
		if pattern.Match(rawURL) {
			return false, Rejection{StagePattern, fmt.Sprintf("url matches disallowed pattern %q", f.policy.DisallowedURLPatterns[i])}
		}
	}

	return true, Rejection{}
}
