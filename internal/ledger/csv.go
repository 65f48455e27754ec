package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,type,amount,description,category,date,matched,bank_reference,created_at,updated_at"

const (
	numFields  = 10
	dateFormat = "2006-01-02"
	colID      = 0
	colType    = 1
	colAmount  = 2
	colDesc    = 3
	colCat     = 4
	colDate    = 5
	colMatched = 6
	colBankRef = 7
	colCreated = 8
	colUpdated = 9
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colType] = string(t.Type)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colDesc] = t.Description
	row[colCat] = t.Category
	row[colDate] = t.Date.Format(dateFormat)
	if t.IsMatched {
		row[colMatched] = "true"
	}
	row[colBankRef] = t.BankReference
	row[colCreated] = t.CreatedAt.Format(time.RFC3339)
	row[colUpdated] = t.UpdatedAt.Format(time.RFC3339)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var created, updated time.Time
	if record[colCreated] != "" {
		created, err = time.Parse(time.RFC3339, record[colCreated])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing created_at %q: %w", record[colCreated], err)
		}
	}
	if record[colUpdated] != "" {
		updated, err = time.Parse(time.RFC3339, record[colUpdated])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing updated_at %q: %w", record[colUpdated], err)
		}
	}

	return model.Transaction{
		ID:            record[colID],
		Type:          model.TransactionType(record[colType]),
		Amount:        amount,
		Description:   record[colDesc],
		Category:      record[colCat],
		Date:          model.DateOnly(date),
		IsMatched:     record[colMatched] == "true",
		BankReference: record[colBankRef],
		CreatedAt:     created,
		UpdatedAt:     updated,
	}, nil
}
