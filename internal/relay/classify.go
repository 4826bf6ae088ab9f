package relay

import (
	"regexp"
	"strings"
)

// Strings at or below this length are never treated as bare base64 payloads;
// short alphanumeric tokens (ids, hashes) would otherwise qualify.
const minBase64Length = 64

var (
	remoteURLPattern = regexp.MustCompile(`(?i)^https?://`)
	base64Pattern    = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// NormalizeCandidate classifies a string found in the upstream response and
// returns its normalized form, or "" when the string does not look like an
// image reference. The decision order is fixed, first match wins:
//
//  1. data URLs pass through unchanged,
//  2. http(s) URLs pass through unchanged,
//  3. absolute local paths pass through unchanged (materialized later),
//  4. long base64 blobs are wrapped as synthesized PNG data URLs,
//  5. everything else is rejected.
//
// The classification is pure: it depends only on the input string, never on
// where in the response tree the string was found.
func NormalizeCandidate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "data:image") {
		return trimmed
	}
	if remoteURLPattern.MatchString(trimmed) {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	compact := whitespaceRuns.ReplaceAllString(trimmed, "")
	if len(compact) > minBase64Length && base64Pattern.MatchString(compact) {
		return "data:image/png;base64," + compact
	}
	return ""
}
