package operations

import (
	"fmt"
	"testing"

	"github.com/AndresNazzari/budgetApp/internal/expense"
	"github.com/AndresNazzari/budgetApp/internal/income"
)

func TestBalanceAdditive(t *testing.T) {
	ops := Merge(
		[]income.Income{{IncomeID: 1, Concept: "Pay", Amount: 100, Date: "2023-01-01", CategoryID: 1, UserID: 7}},
		[]expense.Expense{{ExpenseID: 1, Concept: "Lunch", Amount: -50, Date: "2023-01-02", CategoryID: 2, UserID: 7}},
	)

	if got := Balance(ops); got != 50 {
		t.Errorf("Balance = %d, want 50", got)
	}
}

func TestBalanceEmpty(t *testing.T) {
	if got := Balance(nil); got != 0 {
		t.Errorf("Balance(nil) = %d, want 0", got)
	}
}

func TestRecentSortsDateDescending(t *testing.T) {
	ops := Merge(
		[]income.Income{{IncomeID: 1, Concept: "Salary", Amount: 1000, Date: "2023-01-01", CategoryID: 1, UserID: 7}},
		[]expense.Expense{{ExpenseID: 1, Concept: "Rent", Amount: -400, Date: "2023-01-02", CategoryID: 2, UserID: 7}},
	)

	if got := Balance(ops); got != 600 {
		t.Errorf("Balance = %d, want 600", got)
	}

	recent := Recent(ops, RecentLimit)
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].Concept != "Rent" || recent[1].Concept != "Salary" {
		t.Errorf("recent order = [%s, %s], want [Rent, Salary]", recent[0].Concept, recent[1].Concept)
	}
}

func TestRecentCapsAtLimit(t *testing.T) {
	var incomes []income.Income
	for i := 0; i < 15; i++ {
		incomes = append(incomes, income.Income{
			IncomeID: int64(i + 1),
			Concept:  fmt.Sprintf("Entry %d", i+1),
			Amount:   100,
			Date:     fmt.Sprintf("2023-01-%02d", i+1),
			UserID:   7,
		})
	}

	recent := Recent(Merge(incomes, nil), RecentLimit)
	if len(recent) != RecentLimit {
		t.Fatalf("len(recent) = %d, want %d", len(recent), RecentLimit)
	}
	if recent[0].Date != "2023-01-15" {
		t.Errorf("newest entry = %s, want 2023-01-15", recent[0].Date)
	}
	if recent[len(recent)-1].Date != "2023-01-06" {
		t.Errorf("oldest kept entry = %s, want 2023-01-06", recent[len(recent)-1].Date)
	}
}

func TestRecentTiesAreDeterministic(t *testing.T) {
	incomes := []income.Income{
		{IncomeID: 1, Concept: "First", Amount: 10, Date: "2023-03-01", UserID: 7},
		{IncomeID: 2, Concept: "Second", Amount: 20, Date: "2023-03-01", UserID: 7},
	}
	expenses := []expense.Expense{
		{ExpenseID: 1, Concept: "Third", Amount: -5, Date: "2023-03-01", UserID: 7},
	}

	// Stable sort: equal dates keep merge order, incomes before expenses.
	want := []string{"First", "Second", "Third"}
	for run := 0; run < 5; run++ {
		recent := Recent(Merge(incomes, expenses), RecentLimit)
		for i, w := range want {
			if recent[i].Concept != w {
				t.Fatalf("run %d: recent[%d] = %s, want %s", run, i, recent[i].Concept, w)
			}
		}
	}
}

func TestRecentDoesNotMutateInput(t *testing.T) {
	ops := []Operation{
		{Concept: "Old", Date: "2022-01-01"},
		{Concept: "New", Date: "2023-01-01"},
	}

	_ = Recent(ops, RecentLimit)

	if ops[0].Concept != "Old" || ops[1].Concept != "New" {
		t.Error("Recent reordered its input slice")
	}
}
