package model

// IssueCode identifies why a match attempt did not resolve cleanly.
type IssueCode string

const (
	IssueMultipleMatches IssueCode = "multiple-matches"
	IssueDateMismatch    IssueCode = "date-mismatch"
	IssueNoMatch         IssueCode = "no-match"
)

// Message returns the human-readable issue text used in reports.
func (c IssueCode) Message() string {
	switch c {
	case IssueMultipleMatches:
		return "Multiple potential matches found"
	case IssueDateMismatch:
		return "Amount matches but date differs"
	case IssueNoMatch:
		return "No matching bank transaction found"
	}
	return string(c)
}

// Discrepancy records a match attempt that did not resolve to exactly one
// same-date, same-amount bank line. BankTransaction is set only for
// IssueDateMismatch, pointing at the amount-only candidate.
type Discrepancy struct {
	Transaction     Transaction
	BankTransaction *BankTransaction
	Issue           IssueCode
}

// MatchResult is the outcome of one matching pass. Every input transaction
// lands in exactly one of Matched or Unmatched; Discrepancies records every
// non-one-to-one case independently.
type MatchResult struct {
	Matched       []Transaction
	Unmatched     []Transaction
	Discrepancies []Discrepancy
}
