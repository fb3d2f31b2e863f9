package operations

import (
	"sort"

	"github.com/AndresNazzari/budgetApp/internal/expense"
	"github.com/AndresNazzari/budgetApp/internal/income"
)

// RecentLimit caps the recent-operations feed.
const RecentLimit = 10

// Operation is a unified income or expense entry for the feed.
type Operation struct {
	Type       string `json:"type"` // "income" | "expense"
	ID         int64  `json:"id"`
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"` // YYYY-MM-DD
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
}

// Merge flattens already-fetched incomes and expenses into one sequence,
// incomes first. The order matters: Recent sorts stably, so equal dates keep
// this ordering.
func Merge(incomes []income.Income, expenses []expense.Expense) []Operation {
	out := make([]Operation, 0, len(incomes)+len(expenses))
	for _, inc := range incomes {
		out = append(out, Operation{
			Type:       "income",
			ID:         inc.IncomeID,
			Concept:    inc.Concept,
			Amount:     inc.Amount,
			Date:       inc.Date,
			CategoryID: inc.CategoryID,
			UserID:     inc.UserID,
		})
	}
	for _, exp := range expenses {
		out = append(out, Operation{
			Type:       "expense",
			ID:         exp.ExpenseID,
			Concept:    exp.Concept,
			Amount:     exp.Amount,
			Date:       exp.Date,
			CategoryID: exp.CategoryID,
			UserID:     exp.UserID,
		})
	}
	return out
}

// Balance sums every amount additively. Expenses are persisted negative, so
// no subtraction happens here.
func Balance(ops []Operation) int64 {
	var total int64
	for _, op := range ops {
		total += op.Amount
	}
	return total
}

// Recent returns up to limit operations sorted by date descending. The sort
// is stable: ties on date keep the input ordering.
func Recent(ops []Operation, limit int) []Operation {
	sorted := make([]Operation, len(ops))
	copy(sorted, ops)

	// YYYY-MM-DD compares chronologically as a string.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
