package model

import "strings"

// ParseCategory maps a free-form string onto the closed Category set,
// ignoring case and surrounding whitespace. Unknown or empty input falls
// back to CategoryOther. Call it at every external boundary.
func ParseCategory(s string) Category {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return CategoryOther
	}
	for _, c := range AllCategories {
		if strings.ToLower(string(c)) == needle {
			return c
		}
	}
	return CategoryOther
}

// ParseTransactionType maps a free-form string onto expense/income.
// Anything that is not recognisably income is treated as an expense.
func ParseTransactionType(s string) TransactionType {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeIncome)) {
		return TypeIncome
	}
	return TypeExpense
}
