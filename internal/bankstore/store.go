// Package bankstore persists the parsed bank statement set. The whole set
// is replaced on every upload; nothing is merged.
package bankstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Header is the CSV header for bank-statement.csv.
const Header = "id,date,description,amount,balance,reference"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	fileName   = "bank-statement.csv"
	colID      = 0
	colDate    = 1
	colDesc    = 2
	colAmount  = 3
	colBalance = 4
	colRef     = 5
)

// Store reads and replaces the stored bank transaction set.
type Store struct {
	dataDir string
}

// NewStore creates a Store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// List returns the stored bank transactions, or nil if none were uploaded.
func (s *Store) List() ([]model.BankTransaction, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening bank statement: %w", err)
	}
	defer f.Close()

	txns, err := readBankTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading bank statement: %w", err)
	}
	return txns, nil
}

// Replace overwrites the stored set with txns.
func (s *Store) Replace(txns []model.BankTransaction) error {
	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("creating bank statement: %w", err)
	}
	defer f.Close()

	if err := writeBankTransactions(f, txns); err != nil {
		return fmt.Errorf("writing bank statement: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, fileName)
}

func readBankTransactions(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		t, err := UnmarshalBankTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func writeBankTransactions(w io.Writer, txns []model.BankTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalBankTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBankTransaction converts a BankTransaction to a CSV row.
func MarshalBankTransaction(t model.BankTransaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colDate] = t.Date.Format(dateFormat)
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colBalance] = t.Balance.StringFixed(2)
	row[colRef] = t.Reference
	return row
}

// UnmarshalBankTransaction converts a CSV row to a BankTransaction.
func UnmarshalBankTransaction(record []string) (model.BankTransaction, error) {
	if len(record) != numFields {
		return model.BankTransaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.BankTransaction{
		ID:          record[colID],
		Date:        model.DateOnly(date),
		Description: record[colDesc],
		Amount:      amount,
		Balance:     balance,
		Reference:   record[colRef],
	}, nil
}
