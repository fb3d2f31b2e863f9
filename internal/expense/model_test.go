package expense

import "testing"

func TestCreateExpenseRequestValidate(t *testing.T) {
	valid := CreateExpenseRequest{
		Concept:    "Rent",
		Amount:     -400,
		Date:       "2023-01-02",
		CategoryID: 2,
		UserID:     7,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	positive := valid
	positive.Amount = 400
	if err := positive.Validate(); err == nil {
		t.Error("positive expense amount accepted, sign convention unenforced")
	}

	zero := valid
	zero.Amount = 0
	if err := zero.Validate(); err == nil {
		t.Error("zero expense amount accepted")
	}

	badDate := valid
	badDate.Date = "2023-13-99"
	if err := badDate.Validate(); err == nil {
		t.Error("invalid date accepted")
	}
}

func TestUpdateExpenseRequestValidate(t *testing.T) {
	req := UpdateExpenseRequest{Concept: "Rent", Amount: -500, Date: "2023-02-01", CategoryID: 2}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.Amount = 500
	if err := req.Validate(); err == nil {
		t.Error("positive expense amount accepted on update")
	}
}
