package income

import (
	"errors"
	"strings"
	"time"
)

// Income is a single dated, categorized entry. Amount is in signed minor
// units and is always positive for incomes.
type Income struct {
	IncomeID   int64  `json:"income_id"`
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"` // YYYY-MM-DD
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
}

type CreateIncomeRequest struct {
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
	CategoryID int64  `json:"category_id"`
	UserID     int64  `json:"user_id"`
}

// Validate checks the write-boundary rules: all five fields present, date in
// YYYY-MM-DD, amount strictly positive.
func (r CreateIncomeRequest) Validate() error {
	if strings.TrimSpace(r.Concept) == "" {
		return errors.New("concept required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
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

type UpdateIncomeRequest struct {
	Concept    string `json:"concept"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
	CategoryID int64  `json:"category_id"`
}

func (r UpdateIncomeRequest) Validate() error {
	if strings.TrimSpace(r.Concept) == "" {
		return errors.New("concept required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.CategoryID <= 0 {
		return errors.New("category_id required")
	}
	return nil
}
