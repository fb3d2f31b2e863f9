package income

import "testing"

func validCreate() CreateIncomeRequest {
	return CreateIncomeRequest{
		Concept:    "Salary",
		Amount:     1000,
		Date:       "2023-01-01",
		CategoryID: 1,
		UserID:     7,
	}
}

func TestCreateIncomeRequestValidate(t *testing.T) {
	if err := validCreate().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CreateIncomeRequest)
	}{
		{"empty concept", func(r *CreateIncomeRequest) { r.Concept = "" }},
		{"zero amount", func(r *CreateIncomeRequest) { r.Amount = 0 }},
		{"negative amount", func(r *CreateIncomeRequest) { r.Amount = -100 }},
		{"bad date", func(r *CreateIncomeRequest) { r.Date = "01/01/2023" }},
		{"missing category", func(r *CreateIncomeRequest) { r.CategoryID = 0 }},
		{"missing user", func(r *CreateIncomeRequest) { r.UserID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestUpdateIncomeRequestValidate(t *testing.T) {
	req := UpdateIncomeRequest{Concept: "Salary", Amount: 999, Date: "2021-09-22", CategoryID: 2}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.Amount = -1
	if err := req.Validate(); err == nil {
		t.Error("negative income amount accepted on update")
	}
}
