package review

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer coerces a stored token into the canonical answer domain.
// Only the exact token "Yes" (after NFKC normalization and trimming) maps
// to Yes; every other value, including "yes", empty or garbage, maps to No.
// This is the single place invalid input is tolerated by design.
func NormalizeAnswer(token string) Answer {
	token = strings.TrimSpace(norm.NFKC.String(token))
	if token == string(Yes) {
		return Yes
	}
	return No
}

// cleanCell trims surrounding whitespace and a leading BOM from a header
// cell. Data cells are kept verbatim so round-trips preserve them.
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
