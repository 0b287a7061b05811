package params

import (
	"net/url"
	"strconv"
	"strings"
)

// URL: /recent-reviews?limit=5
// → ParseLimit(q, 10, 50) → 5
// Missing, malformed or non-positive values fall back to def; values above
// max are clamped. Keys are case sensitive.
func ParseLimit(q url.Values, def, max int) int {
	limit := def

	if limitStr := strings.TrimSpace(q.Get("limit")); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if max > 0 && limit > max {
		limit = max
	}
	return limit
}
