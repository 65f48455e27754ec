// Package report renders reconciliation results and transaction exports as
// plain text suitable for direct file download.
package report

import (
	"fmt"
	"strings"

	"github.com/tallybook-dev/tallybook/internal/model"
)

const dateFormat = "2006-01-02"

// Reconciliation renders a match result as a fixed-structure text report:
// a header, three count lines, and a numbered detail block per discrepancy
// in slice order. The detail block is omitted when there are none.
func Reconciliation(result model.MatchResult, currencySymbol string) string {
	var b strings.Builder

	b.WriteString("Bank Matching Report\n")
	b.WriteString("==================\n\n")

	fmt.Fprintf(&b, "Matched Transactions: %d\n", len(result.Matched))
	fmt.Fprintf(&b, "Unmatched Transactions: %d\n", len(result.Unmatched))
	fmt.Fprintf(&b, "Discrepancies Found: %d\n\n", len(result.Discrepancies))

	if len(result.Discrepancies) > 0 {
		b.WriteString("Discrepancy Details:\n")
		b.WriteString("-------------------\n")

		for i, d := range result.Discrepancies {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d.Transaction.Description)
			fmt.Fprintf(&b, "   Amount: %s%s\n", currencySymbol, d.Transaction.Amount.StringFixed(2))
			fmt.Fprintf(&b, "   Date: %s\n", d.Transaction.Date.Format(dateFormat))
			fmt.Fprintf(&b, "   Issue: %s\n\n", d.Issue.Message())
		}
	}

	return b.String()
}
