package reports

import (
	"bytes"
	"testing"
)

func TestBuildStatementPDF(t *testing.T) {
	rows := []StatementRow{
		{Date: "2023-01-02", Type: "expense", Concept: "Rent", Amount: -400},
		{Date: "2023-01-01", Type: "income", Concept: "Salary", Amount: 1000},
	}

	pdf, err := BuildStatementPDF(7, 600, rows)
	if err != nil {
		t.Fatalf("BuildStatementPDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", pdf[:8])
	}
}

func TestBuildStatementPDFNoRows(t *testing.T) {
	pdf, err := BuildStatementPDF(7, 0, nil)
	if err != nil {
		t.Fatalf("BuildStatementPDF with no rows: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not start with %PDF header")
	}
}
