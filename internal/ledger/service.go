package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/id"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// fileName is the ledger file under the data directory.
const fileName = "transactions.csv"

// ErrNotFound is returned when a transaction ID does not exist.
var ErrNotFound = errors.New("transaction not found")

// Service provides CRUD over the user's recorded transactions.
type Service struct {
	dataDir string
}

// NewService creates a ledger Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// AddParams holds the user-supplied fields of a new transaction.
type AddParams struct {
	Type        model.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// List returns all recorded transactions in file order.
func (s *Service) List() ([]model.Transaction, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return txns, nil
}

// Get returns a transaction by ID.
func (s *Service) Get(txID string) (model.Transaction, error) {
	txns, err := s.List()
	if err != nil {
		return model.Transaction{}, err
	}
	for _, t := range txns {
		if t.ID == txID {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, txID)
}

// Add validates and appends a new transaction, assigning its identity and
// timestamps. Returns the stored transaction.
func (s *Service) Add(params AddParams) (model.Transaction, error) {
	now := time.Now().UTC()
	txn := model.Transaction{
		ID:          id.New(),
		Type:        params.Type,
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Date:        model.DateOnly(params.Date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if verrs := ValidateTransaction(txn); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Transaction{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	txns, err := s.List()
	if err != nil {
		return model.Transaction{}, err
	}
	txns = append(txns, txn)

	if err := s.save(txns); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// UpdateParams holds the mutable fields of an existing transaction. Nil
// pointers leave the stored value unchanged.
type UpdateParams struct {
	Type        *model.TransactionType
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
}

// Update applies params to the transaction with the given ID.
func (s *Service) Update(txID string, params UpdateParams) (model.Transaction, error) {
	txns, err := s.List()
	if err != nil {
		return model.Transaction{}, err
	}

	idx := -1
	for i, t := range txns {
		if t.ID == txID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, txID)
	}

	txn := txns[idx]
	if params.Type != nil {
		txn.Type = *params.Type
	}
	if params.Amount != nil {
		txn.Amount = *params.Amount
	}
	if params.Description != nil {
		txn.Description = *params.Description
	}
	if params.Category != nil {
		txn.Category = *params.Category
	}
	if params.Date != nil {
		txn.Date = model.DateOnly(*params.Date)
	}
	txn.UpdatedAt = time.Now().UTC()

	if verrs := ValidateTransaction(txn); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Transaction{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	txns[idx] = txn
	if err := s.save(txns); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// Delete removes a transaction by ID.
func (s *Service) Delete(txID string) error {
	txns, err := s.List()
	if err != nil {
		return err
	}

	kept := txns[:0]
	found := false
	for _, t := range txns {
		if t.ID == txID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, txID)
	}

	return s.save(kept)
}

// ApplyMatches persists the reconciliation fields of every matched
// transaction in result. Unmatched transactions are left untouched.
func (s *Service) ApplyMatches(result model.MatchResult) error {
	if len(result.Matched) == 0 {
		return nil
	}

	txns, err := s.List()
	if err != nil {
		return err
	}

	byID := make(map[string]model.Transaction, len(result.Matched))
	for _, m := range result.Matched {
		byID[m.ID] = m
	}

	updated := time.Now().UTC()
	for i, t := range txns {
		m, ok := byID[t.ID]
		if !ok {
			continue
		}
		txns[i].IsMatched = true
		txns[i].BankReference = m.BankReference
		txns[i].UpdatedAt = updated
	}

	return s.save(txns)
}

func (s *Service) save(txns []model.Transaction) error {
	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, fileName)
}
