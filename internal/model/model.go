// Package model defines the domain types shared by the projection pipeline,
// the analytics reducers and the live store.
package model

// Category is the closed set of spending categories. Anything arriving from
// an external boundary (imports, AI extraction, legacy records) goes through
// ParseCategory so unknown values collapse to CategoryOther instead of
// leaking free-form strings into the core.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryGroceries     Category = "Groceries"
	CategoryIncome        Category = "Income"
	CategoryEducation     Category = "Education"
	CategoryPersonalCare  Category = "Personal Care"
	CategoryGovernment    Category = "Government"
	CategoryBanking       Category = "Banking"
	CategoryOther         Category = "Other"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryGroceries,
	CategoryIncome,
	CategoryEducation,
	CategoryPersonalCare,
	CategoryGovernment,
	CategoryBanking,
	CategoryOther,
}

// TransactionType says which side of the ledger a transaction sits on.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// LineItem is one receipt line on a transaction. Brand, Weight, MRP and
// Discount are optional extras from receipt extraction; zero values mean
// "not present".
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Brand    string  `json:"brand,omitempty"`
	Weight   string  `json:"weight,omitempty"`
	MRP      float64 `json:"mrp,omitempty"`
	Discount float64 `json:"discount,omitempty"`
}

// Transaction is a raw persisted record. The core never mutates one; the
// projector only derives a display view from it.
type Transaction struct {
	ID            string          `json:"id"`
	Merchant      string          `json:"merchant"`
	Amount        float64         `json:"amount"`
	Category      Category        `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Type          TransactionType `json:"type"`
	Date          string          `json:"date"` // ISO YYYY-MM-DD
	Time          string          `json:"time,omitempty"`
	Items         []LineItem      `json:"items,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	WalletID      string          `json:"walletId,omitempty"`
	MerchantEmoji string          `json:"merchantEmoji,omitempty"`
}

// MerchantRule is a user-authored aliasing rule: when OriginalName matches a
// transaction's merchant, the display fields are rewritten. OriginalName must
// be non-empty; ForcedCategory and ForcedSubcategory are overrides only when
// set, and an empty Emoji means "fall back to the lookup tables".
type MerchantRule struct {
	ID                string    `json:"id"`
	OriginalName      string    `json:"originalName"`
	RenamedTo         string    `json:"renamedTo"`
	ForcedCategory    *Category `json:"forcedCategory,omitempty"`
	ForcedSubcategory *string   `json:"forcedSubcategory,omitempty"`
	Emoji             string    `json:"emoji,omitempty"`
}

// ProcessedTransaction is the display projection of a Transaction after rule
// and lookup-table application. It is ephemeral: recomputed from the current
// transactions and rules on every pass, never persisted.
type ProcessedTransaction struct {
	Transaction

	DisplayMerchant    string   `json:"displayMerchant"`
	DisplayCategory    Category `json:"displayCategory"`
	DisplaySubcategory string   `json:"displaySubcategory"`
	DisplayEmoji       string   `json:"displayEmoji"`
	IsAliased          bool     `json:"isAliased"`
}

// SubcategorySuggestion is a ranked guess produced by the suggestion engine.
// Confidence is in (0,1] and is used only for display ordering.
type SubcategorySuggestion struct {
	Subcategory string   `json:"subcategory"`
	Category    Category `json:"category"`
	Emoji       string   `json:"emoji"`
	Confidence  float64  `json:"confidence"`
}

// BudgetPeriod is the reset cadence of a budget.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodWeekly  BudgetPeriod = "weekly"
)

// Budget caps spending for one category over a rolling period.
type Budget struct {
	ID       string       `json:"id"`
	Category Category     `json:"category"`
	Amount   float64      `json:"amount"`
	Period   BudgetPeriod `json:"period"`
}
