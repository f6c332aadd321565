package finmath

import (
	"math"
	"sort"
	"time"

	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Qualitative bands for the financial health score.
const (
	HealthBandExcellent        = "Excellent"
	HealthBandGood             = "Good"
	HealthBandFair             = "Fair"
	HealthBandNeedsImprovement = "Needs Improvement"
)

// Overall budget utilization status bands. The 75% caution cutoff here is
// distinct from the 80% per-category caution cutoff below; the two are not
// interchangeable.
const (
	BudgetStatusNearLimit = "near limit"
	BudgetStatusWatch     = "watch spending"
	BudgetStatusOnTrack   = "on track"
)

// Per-category budget progress bands.
const (
	CategoryBandOverBudget = "over-budget"
	CategoryBandCaution    = "caution"
	CategoryBandOnTrack    = "on-track"
)

var oneHundred = decimal.NewFromInt(100)

// Summarize folds a ledger into its income total, expense total and
// per-category totals. Income transactions only ever add to income sums and
// expense transactions only to expense sums; no transaction contributes to
// both. The totals cover the entire ledger, not a calendar month.
func Summarize(transactions []domain.Transaction) (income, expense decimal.Decimal, totals map[domain.Category]domain.KindTotals) {
	income = decimal.Zero
	expense = decimal.Zero
	totals = make(map[domain.Category]domain.KindTotals)

	for _, txn := range transactions {
		entry := totals[txn.Category]
		switch txn.Kind {
		case domain.Income:
			income = income.Add(txn.Amount)
			entry.Income = entry.Income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
			entry.Expense = entry.Expense.Add(txn.Amount)
		}
		totals[txn.Category] = entry
	}
	return income, expense, totals
}

// TopExpenseCategories ranks expense totals per category, highest first,
// truncated to n entries. Exact ties keep the first-seen category ahead.
func TopExpenseCategories(transactions []domain.Transaction, n int) []domain.CategoryExpense {
	if n <= 0 {
		return []domain.CategoryExpense{}
	}

	// Accumulate in first-seen order so the stable sort breaks ties that way.
	index := make(map[domain.Category]int)
	ranked := []domain.CategoryExpense{}
	for _, txn := range transactions {
		if txn.Kind != domain.Expense {
			continue
		}
		i, seen := index[txn.Category]
		if !seen {
			index[txn.Category] = len(ranked)
			ranked = append(ranked, domain.CategoryExpense{Category: txn.Category, Amount: txn.Amount})
			continue
		}
		ranked[i].Amount = ranked[i].Amount.Add(txn.Amount)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SavingsRate returns (income-expense)/income as a percentage, 0 when income
// is zero. The zero guard is a hard invariant; the rate is never NaN.
func SavingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(oneHundred)
}

// HealthScore maps a ledger's totals to a 0..100 score. A break-even user
// scores 50; positive savings rate raises the score linearly and the result
// clamps at both boundaries before rounding to the nearest integer.
func HealthScore(income, expense decimal.Decimal) int {
	score := decimal.NewFromInt(50).Add(SavingsRate(income, expense))
	if score.LessThan(decimal.Zero) {
		return 0
	}
	if score.GreaterThan(oneHundred) {
		return 100
	}
	return int(score.Round(0).IntPart())
}

// HealthBand maps a score to its qualitative band. The thresholds are exact
// cutoffs: 80, 60 and 40 belong to the higher band.
func HealthBand(score int) string {
	switch {
	case score >= 80:
		return HealthBandExcellent
	case score >= 60:
		return HealthBandGood
	case score >= 40:
		return HealthBandFair
	default:
		return HealthBandNeedsImprovement
	}
}

// Utilization returns spent/budgeted as a percentage, 0 when budgeted is zero.
func Utilization(spent, budgeted decimal.Decimal) decimal.Decimal {
	if budgeted.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return spent.Div(budgeted).Mul(oneHundred)
}

// OverallBudgetStatus bands total budget utilization: above 90% is near limit,
// above 75% warrants watching, anything else is on track.
func OverallBudgetStatus(utilization decimal.Decimal) string {
	switch {
	case utilization.GreaterThan(decimal.NewFromInt(90)):
		return BudgetStatusNearLimit
	case utilization.GreaterThan(decimal.NewFromInt(75)):
		return BudgetStatusWatch
	default:
		return BudgetStatusOnTrack
	}
}

// CategoryBudgetBand bands a single category's utilization: above 100% is
// over budget, above 80% is caution.
func CategoryBudgetBand(utilization decimal.Decimal) string {
	switch {
	case utilization.GreaterThan(oneHundred):
		return CategoryBandOverBudget
	case utilization.GreaterThan(decimal.NewFromInt(80)):
		return CategoryBandCaution
	default:
		return CategoryBandOnTrack
	}
}

// GoalProgress returns current/target as a percentage, 0 when target is zero.
// The value is not clamped; overfunded goals exceed 100.
func GoalProgress(current, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return current.Div(target).Mul(oneHundred)
}

// DaysLeft returns the whole days remaining until the deadline, rounding
// fractional days up. Zero or negative means the deadline has passed.
func DaysLeft(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// ShouldRemindDeadline reports whether a deadline-approaching reminder is due:
// ultra plan only, and only inside the 0 < daysLeft <= 30 window. A passed
// deadline is never a reminder.
func ShouldRemindDeadline(plan domain.SubscriptionPlan, daysLeft int) bool {
	return plan == domain.PlanUltra && daysLeft > 0 && daysLeft <= 30
}
