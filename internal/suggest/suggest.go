// Package suggest ranks subcategory guesses for free-text input by keyword
// containment against the static lookup tables.
package suggest

import (
	"strings"

	"github.com/dhruvm/spendwise/internal/lookup"
	"github.com/dhruvm/spendwise/internal/model"
)

// DefaultLimit caps how many suggestions Suggest returns.
const DefaultLimit = 5

// matchConfidence is assigned uniformly to every hit. There is no real
// ranking signal beyond table order; see the keyword tables for the tie-break.
const matchConfidence = 0.9

// Suggest returns up to DefaultLimit subcategory suggestions for the input.
func Suggest(input string) []model.SubcategorySuggestion {
	return SuggestN(input, DefaultLimit)
}

// SuggestN is Suggest with an explicit result cap. A keyword entry matches
// when the keyword is contained in the input or the input is contained in
// the keyword, after lowercasing and trimming. Results keep table order, so
// ties are stable across calls.
func SuggestN(input string, limit int) []model.SubcategorySuggestion {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" || limit <= 0 {
		return nil
	}
	var out []model.SubcategorySuggestion
	for _, kr := range lookup.SubcategoryKeywords {
		if !strings.Contains(query, kr.Keyword) && !strings.Contains(kr.Keyword, query) {
			continue
		}
		out = append(out, model.SubcategorySuggestion{
			Subcategory: kr.Subcategory,
			Category:    kr.Category,
			Emoji:       kr.Emoji,
			Confidence:  matchConfidence,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}
