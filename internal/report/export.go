package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// exportHeader is the column layout of a transaction export.
var exportHeader = []string{"Date", "Type", "Amount", "Category", "Description", "Matched", "Bank Reference"}

// ExportCSV writes transactions as a spreadsheet-friendly CSV, one row per
// transaction in slice order.
func ExportCSV(w io.Writer, txns []model.Transaction, currencySymbol string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		matched := "No"
		if t.IsMatched {
			matched = "Yes"
		}
		row := []string{
			t.Date.Format(dateFormat),
			string(t.Type),
			currencySymbol + t.Amount.StringFixed(2),
			t.Category,
			t.Description,
			matched,
			t.BankReference,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
