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
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ScopePolicy describes the crawl boundary. It is constructed once at startup,
// validated, and shared read-only by all filter evaluations.
type ScopePolicy struct {
	// AllowedDomains is the set of domain suffixes a URL host must end with.
	// Matching is anchored at a label boundary: "ics.uci.edu" matches
	// "cs.ics.uci.edu" but never "evil-ics.uci.edu.attacker.com".
	AllowedDomains []string `yaml:"allowed_domains" validate:"required,min=1,dive,required"`

	// PathRestrictions narrows a broad domain to a sub-section: when the URL
	// host equals a key exactly, the URL path must start with the mapped prefix.
	PathRestrictions map[string]string `yaml:"path_restrictions"`

	// BlockedExtensions lists file suffixes (without the leading dot) that are
	// never crawled. Matched case-insensitively against the final path segment.
	BlockedExtensions []string `yaml:"blocked_extensions"`

	// TrapQueryKeys are substrings whose presence in a query string marks the
	// URL as a likely infinite-parameter trap (calendars, pagination, session
	// ids). Matched case-insensitively.
	TrapQueryKeys []string `yaml:"trap_query_keys"`

	// DisallowedURLPatterns are glob patterns matched against the full URL.
	// Any match rejects the URL. Optional.
	DisallowedURLPatterns []string `yaml:"disallowed_url_patterns"`

	// MaxPathLength rejects URLs whose path exceeds this many characters.
	// Zero disables the check.
	MaxPathLength int `yaml:"max_path_length" validate:"gte=0"`

	// MaxQueryLength rejects URLs whose raw query exceeds this many characters.
	// Zero disables the check.
	MaxQueryLength int `yaml:"max_query_length" validate:"gte=0"`

	// MaxPathDepth rejects URLs with more than this many path segments.
	// Zero disables the check.
	MaxPathDepth int `yaml:"max_path_depth" validate:"gte=0"`
}

var policyValidator = validator.New()

// DefaultPolicy returns the scope policy used for the UCI ICS crawl.
// The numeric ceilings are empirically tuned bounds, not derived constants;
// override them per deployment as needed.
func DefaultPolicy() ScopePolicy {
	return ScopePolicy{
		AllowedDomains: []string{
			"ics.uci.edu",
			"cs.uci.edu",
			"informatics.uci.edu",
			"stat.uci.edu",
			"today.uci.edu",
		},
		PathRestrictions: map[string]string{
			"today.uci.edu": "/department/information_computer_sciences",
		},
		BlockedExtensions: []string{
			"css", "js", "bmp", "gif", "jpg", "jpeg", "ico",
			"png", "tif", "tiff", "mid", "mp2", "mp3", "mp4",
			"wav", "avi", "mov", "mpeg", "ram", "m4v", "mkv", "ogg", "ogv", "pdf",
			"ps", "eps", "tex", "ppt", "pptx", "doc", "docx", "xls", "xlsx", "names",
			"data", "dat", "exe", "bz2", "tar", "msi", "bin", "7z", "psd", "dmg", "iso",
			"epub", "dll", "cnf", "tgz", "sha1",
			"thmx", "mso", "arff", "rtf", "jar", "csv",
			"rm", "smil", "wmv", "swf", "wma", "zip", "rar", "gz",
		},
		TrapQueryKeys: []string{
			"calendar", "wp-content", "replytocom", "php?id=", "sort=",
			"session=", "ref=", "page=", "start=", "dir=", "date=", "filter=",
			"id=", "sid=", "query=", "view=", "tag=", "highlight=", "theme=",
		},
		MaxPathLength:  100,
		MaxQueryLength: 50,
		MaxPathDepth:   0,
	}
}

// Validate checks the policy for misconfiguration. A policy that fails
// validation must abort startup; it is never a per-page condition.
func (p ScopePolicy) Validate() error {
	if err := policyValidator.Struct(p); err != nil {
		return fmt.Errorf("invalid scope policy: %w", err)
	}
	return nil
}

// LoadPolicy reads a ScopePolicy from a YAML file and validates it.
func LoadPolicy(path string) (ScopePolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScopePolicy{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy parses and validates a YAML-encoded ScopePolicy.
func ParsePolicy(data []byte) (ScopePolicy, error) {
	var p ScopePolicy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ScopePolicy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return ScopePolicy{}, err
	}
	return p, nil
}
