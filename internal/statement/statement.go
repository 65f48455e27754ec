package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/id"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// RowNote records a data-quality event for one statement line: a dropped
// row or a field that could not be parsed and was defaulted. Notes are
// informational; the parse itself never fails.
type RowNote struct {
	Line   int // 1-based line number in the uploaded file
	Reason string
}

// minFields is the smallest row that still maps to a bank transaction:
// date, description, amount, balance. A fifth reference column is optional.
const minFields = 4

// dateLayouts are tried in order for the general date parse. US-style
// month-first slashes come before the day-first fallback in parseDate.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// Parse turns a raw bank statement CSV into bank transactions. The first
// line is always treated as a header and skipped; blank lines are ignored;
// rows with fewer than four fields are dropped. Unparseable dates default
// to today and unparseable amounts to zero, each recorded as a RowNote so
// callers can warn instead of silently accepting substituted data.
func Parse(csvText string) ([]model.BankTransaction, []RowNote) {
	lines := strings.Split(csvText, "\n")

	var txns []model.BankTransaction
	var notes []RowNote

	for i := 1; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		fields := ScanLine(line)
		if len(fields) < minFields {
			notes = append(notes, RowNote{
				Line:   lineNo,
				Reason: fmt.Sprintf("dropped: %d of %d required fields", len(fields), minFields),
			})
			continue
		}

		date, ok := parseDate(fields[0])
		if !ok {
			notes = append(notes, RowNote{
				Line:   lineNo,
				Reason: fmt.Sprintf("date %q unparseable, defaulted to today", fields[0]),
			})
		}

		amount, ok := parseAmount(fields[2])
		if !ok {
			notes = append(notes, RowNote{
				Line:   lineNo,
				Reason: fmt.Sprintf("amount %q unparseable, defaulted to 0", fields[2]),
			})
		}

		balance, ok := parseAmount(fields[3])
		if !ok {
			notes = append(notes, RowNote{
				Line:   lineNo,
				Reason: fmt.Sprintf("balance %q unparseable, defaulted to 0", fields[3]),
			})
		}

		reference := ""
		if len(fields) > 4 {
			reference = strings.TrimSpace(fields[4])
		}

		txns = append(txns, model.BankTransaction{
			ID:          id.New(),
			Date:        date,
			Description: strings.TrimSpace(fields[1]),
			Amount:      amount,
			Balance:     balance,
			Reference:   reference,
		})
	}

	return txns, notes
}

// parseDate normalizes a statement date to midnight UTC. It tries the
// general layouts first, then a day-first D/M/YYYY split. When nothing
// parses it returns today's date and ok=false.
func parseDate(raw string) (time.Time, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, `"`, ""), "'", ""))

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return model.DateOnly(t), true
		}
	}

	if parts := strings.Split(clean, "/"); len(parts) == 3 {
		day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errD == nil && errM == nil && errY == nil {
			return model.Date(year, time.Month(month), day), true
		}
	}

	return model.DateOnly(time.Now()), false
}

// parseAmount strips quotes, currency symbols and thousands separators, then
// parses the remainder as a decimal. Returns zero and ok=false on failure.
func parseAmount(raw string) (decimal.Decimal, bool) {
	clean := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '$', ',':
			return -1
		}
		return r
	}, raw))

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
