// Package match pairs user-recorded transactions against parsed bank
// statement lines. Matching is a pure computation over in-memory slices:
// collections in, MatchResult out. Callers own persistence of the result.
package match

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// tolerance is the absolute amount tolerance for a qualifying match.
// Assumes two-decimal-place currencies.
var tolerance = decimal.New(1, -2) // 0.01

// Match runs one matching pass. For each user transaction, in input order:
// exactly one bank line with the same calendar date and a signed amount
// within tolerance is a match; more than one is recorded as a
// multiple-matches discrepancy; zero triggers an amount-only search across
// all dates, yielding either a date-mismatch discrepancy with the first
// candidate found or a no-match discrepancy. A transaction leaves the
// unmatched set only on an exact match, so
// len(Matched)+len(Unmatched) == len(users) always holds.
//
// Deterministic for identical ordered inputs; bank lines are scanned in
// slice order with no tie-break beyond the one/many/zero split.
func Match(users []model.Transaction, bank []model.BankTransaction) model.MatchResult {
	result := model.MatchResult{
		Matched:   []model.Transaction{},
		Unmatched: make([]model.Transaction, len(users)),
	}
	copy(result.Unmatched, users)

	for _, user := range users {
		var candidates []model.BankTransaction
		for _, b := range bank {
			if sameDate(user.Date, b.Date) && amountMatches(user, b) {
				candidates = append(candidates, b)
			}
		}

		switch {
		case len(candidates) == 1:
			matched := user
			matched.IsMatched = true
			matched.BankReference = candidates[0].Reference
			result.Matched = append(result.Matched, matched)
			result.Unmatched = remove(result.Unmatched, user.ID)

		case len(candidates) > 1:
			result.Discrepancies = append(result.Discrepancies, model.Discrepancy{
				Transaction: user,
				Issue:       model.IssueMultipleMatches,
			})

		default:
			if similar, ok := findByAmount(user, bank); ok {
				result.Discrepancies = append(result.Discrepancies, model.Discrepancy{
					Transaction:     user,
					BankTransaction: &similar,
					Issue:           model.IssueDateMismatch,
				})
			} else {
				result.Discrepancies = append(result.Discrepancies, model.Discrepancy{
					Transaction: user,
					Issue:       model.IssueNoMatch,
				})
			}
		}
	}

	return result
}

// findByAmount returns the first bank line whose signed amount matches,
// irrespective of date.
func findByAmount(user model.Transaction, bank []model.BankTransaction) (model.BankTransaction, bool) {
	for _, b := range bank {
		if amountMatches(user, b) {
			return b, true
		}
	}
	return model.BankTransaction{}, false
}

func sameDate(a, b time.Time) bool {
	return model.DateOnly(a).Equal(model.DateOnly(b))
}

// amountMatches applies the signed-amount rule: expenses are expected as
// negative bank amounts, income as positive, within the fixed tolerance.
func amountMatches(user model.Transaction, b model.BankTransaction) bool {
	return user.SignedAmount().Sub(b.Amount).Abs().LessThan(tolerance)
}

func remove(txns []model.Transaction, id string) []model.Transaction {
	for i, t := range txns {
		if t.ID == id {
			return append(txns[:i], txns[i+1:]...)
		}
	}
	return txns
}
