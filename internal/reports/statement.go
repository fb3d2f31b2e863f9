package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/AndresNazzari/budgetApp/internal/money"
)

// StatementRow is one line of the operations statement.
type StatementRow struct {
	Date    string
	Type    string // "income" | "expense"
	Concept string
	Amount  int64 // signed minor units
}

// BuildStatementPDF renders the recent-operations feed and the all-time
// balance as a PDF statement.
func BuildStatementPDF(userID int64, balance int64, rows []StatementRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Budget App Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Budget App")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("User: %d", userID))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("All time balance: $ %s", money.FormatAmount(balance)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Last Operations")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(30, 7, "Date")
	pdf.Cell(25, 7, "Type")
	pdf.Cell(80, 7, "Concept")
	pdf.Cell(35, 7, "Amount")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, r := range rows {
		pdf.Cell(30, 7, r.Date)
		pdf.Cell(25, 7, r.Type)
		pdf.Cell(80, 7, r.Concept)
		pdf.Cell(35, 7, "$ "+money.FormatAmount(r.Amount))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
