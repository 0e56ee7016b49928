// Package rules matches raw merchant strings against user-defined aliasing
// rules.
package rules

import (
	"strings"

	"github.com/dhruvm/spendwise/internal/model"
)

// Match returns the first rule whose OriginalName and the merchant contain
// one another, case-insensitively. Substring containment is checked in both
// directions, so a rule for "DMart" matches "DMart Benz Circle" and a rule
// for "DMart Benz Circle" matches "DMart". When several rules match, the
// first in slice order wins; callers that care about precedence order their
// rules accordingly. Returns nil when nothing matches.
func Match(merchant string, rs []model.MerchantRule) *model.MerchantRule {
	needle := strings.ToLower(strings.TrimSpace(merchant))
	if needle == "" {
		return nil
	}
	for i := range rs {
		pattern := strings.ToLower(strings.TrimSpace(rs[i].OriginalName))
		if pattern == "" {
			// violates the rule invariant; skip rather than match everything
			continue
		}
		if strings.Contains(needle, pattern) || strings.Contains(pattern, needle) {
			return &rs[i]
		}
	}
	return nil
}
