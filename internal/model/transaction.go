package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a user-entered transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a manually recorded income or expense.
type Transaction struct {
	ID            string
	Type          TransactionType
	Amount        decimal.Decimal // always positive; Type carries the direction
	Description   string
	Category      string
	Date          time.Time // calendar date, midnight UTC
	IsMatched     bool
	BankReference string // set once matched against a bank line
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SignedAmount returns the amount as it would appear on a bank statement:
// negative for expenses, positive for income.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// Date returns a calendar date normalized to midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates a time to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return Date(y, m, d)
}
