package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is money in or money out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// IsValid reports whether k is one of the two known kinds.
func (k TransactionKind) IsValid() bool {
	return k == Income || k == Expense
}

// Category is one of the closed set of spending/earning categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryBusiness      Category = "Business"
	CategoryInvestment    Category = "Investment"
	CategoryOther         Category = "Other"
)

// KnownCategories lists every valid category in display order.
func KnownCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategorySalary,
		CategoryBusiness,
		CategoryInvestment,
		CategoryOther,
	}
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range KnownCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction represents a single income or expense entry in a user's ledger.
// Transactions are append-only: once recorded they are never edited or removed.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Kind          TransactionKind `json:"kind"`
	Date          time.Time       `json:"date"`    // Calendar date; no time-of-day semantics
	Account       string          `json:"account"` // Free-text simulated account label
	AuditFields
}

// Ledger is the full transaction history for one user, newest entry first,
// plus the opening balance the account started with.
type Ledger struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Transactions   []Transaction   `json:"transactions"`
}

// TransactionSortKey selects the ordering applied to a ledger view.
type TransactionSortKey string

const (
	SortByDate        TransactionSortKey = "date"        // date descending (default)
	SortByAmount      TransactionSortKey = "amount"      // amount descending
	SortByDescription TransactionSortKey = "description" // description ascending
)

// TransactionFilter selects which kinds are visible in a ledger view.
type TransactionFilter string

const (
	FilterAll     TransactionFilter = "all"
	FilterIncome  TransactionFilter = "income"
	FilterExpense TransactionFilter = "expense"
)

// TransactionPage is a tier-limited view over the filtered and sorted ledger.
// HiddenCount reports how many additional matching transactions exist beyond
// the plan's history window.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	HiddenCount  int           `json:"hiddenCount"`
	WindowSize   int           `json:"windowSize"`
}
