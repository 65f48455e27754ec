package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one line parsed from an uploaded bank statement.
// IDs are generated at parse time; nothing in the source data is trusted
// to be an identity.
type BankTransaction struct {
	ID          string
	Date        time.Time       // calendar date, midnight UTC
	Description string
	Amount      decimal.Decimal // signed: positive = credit, negative = debit
	Balance     decimal.Decimal // balance after this line; informational only
	Reference   string
}
