package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// ValidationError describes a single rule violation on a transaction.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateTransaction enforces the rules every stored transaction must
// satisfy.
func ValidateTransaction(t model.Transaction) []ValidationError {
	var errs []ValidationError

	if t.Type != model.TypeIncome && t.Type != model.TypeExpense {
		errs = append(errs, ValidationError{
			Field:       "type",
			Description: fmt.Sprintf("must be %q or %q, got %q", model.TypeIncome, model.TypeExpense, t.Type),
		})
	}

	if !t.Amount.IsPositive() {
		errs = append(errs, ValidationError{
			Field:       "amount",
			Description: fmt.Sprintf("must be positive, got %s", t.Amount),
		})
	}

	// Amounts are currency units with at most 2 decimal places.
	hundred := decimal.NewFromInt(100)
	if !t.Amount.Mul(hundred).Equal(t.Amount.Mul(hundred).Floor()) {
		errs = append(errs, ValidationError{
			Field:       "amount",
			Description: fmt.Sprintf("%s has more than 2 decimal places", t.Amount),
		})
	}

	if t.Description == "" {
		errs = append(errs, ValidationError{
			Field:       "description",
			Description: "must not be empty",
		})
	}

	if t.Date.IsZero() {
		errs = append(errs, ValidationError{
			Field:       "date",
			Description: "must be set",
		})
	}

	return errs
}
