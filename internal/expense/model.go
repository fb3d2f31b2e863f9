package expense

import (
	"errors"
	"strings"
	"time"
)

// Expense is a single dated, categorized entry. Amount is in signed minor
// units and is always negative for expenses, so the aggregator can sum
// incomes and expenses additively.
type Expense struct {
	ExpenseID  int64  `json:"expense_id"`
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"` // YYYY-MM-DD
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
}

type CreateExpenseRequest struct {
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
}

// Validate checks the write-boundary rules: all five fields present, date in
// YYYY-MM-DD, amount strictly negative.
func (r CreateExpenseRequest) Validate() error {
	if strings.TrimSpace(r.Concept) == "" {
		return errors.New("concept required")
	}
	if r.Amount >= 0 {
		return errors.New("amount must be less than zero")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.CategoryID <= 0 {
		return errors.New("category_id required")
	}
	if r.UserID <= 0 {
		return errors.New("user_id required")
	}
	return nil
}

type UpdateExpenseRequest struct {
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
	CategoryID int64  `json:"category_id"`
}

func (r UpdateExpenseRequest) Validate() error {
	if strings.TrimSpace(r.Concept) == "" {
		return errors.New("concept required")
	}
	if r.Amount >= 0 {
		return errors.New("amount must be less than zero")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.CategoryID <= 0 {
		return errors.New("category_id required")
	}
	return nil
}
