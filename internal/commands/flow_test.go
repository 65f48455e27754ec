package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/auditlog"
	"github.com/tallybook-dev/tallybook/internal/ledger"
)

// initDir initializes a fresh data directory for a flow test.
func initDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runTallybook(t, "init", dir, "--name", "Priya")
	require.NoError(t, err, out)
	return dir
}

const statementCSV = `Date,Description,Amount,Balance,Reference
01/15/2024,"Grocery Store",-850.50,12345.50,REF123
01/16/2024,"Salary Deposit",25000.00,37345.50,SAL456
`

func TestFlow_AddListDelete(t *testing.T) {
	dir := initDir(t)

	out, err := runTallybook(t, "add", "--dir", dir,
		"--type", "expense", "--amount", "850.50",
		"--description", "Grocery Store", "--category", "Food",
		"--date", "2024-01-15")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Added expense $850.50")

	out, err = runTallybook(t, "list", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Grocery Store")
	assert.Contains(t, out, "2024-01-15")

	txns, err := ledger.NewService(dir).List()
	require.NoError(t, err)
	require.Len(t, txns, 1)

	out, err = runTallybook(t, "delete", txns[0].ID, "--dir", dir)
	require.NoError(t, err, out)

	txns, err = ledger.NewService(dir).List()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestFlow_AddRejectsInvalid(t *testing.T) {
	dir := initDir(t)

	out, err := runTallybook(t, "add", "--dir", dir,
		"--type", "expense", "--amount", "-5",
		"--description", "bad")
	require.Error(t, err)
	assert.Contains(t, out, "validation failed")
}

func TestFlow_ImportAndReconcile(t *testing.T) {
	dir := initDir(t)

	out, err := runTallybook(t, "add", "--dir", dir,
		"--type", "expense", "--amount", "850.50",
		"--description", "Grocery Store", "--category", "Food",
		"--date", "2024-01-15")
	require.NoError(t, err, out)

	stmt := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(stmt, []byte(statementCSV), 0o644))

	out, err = runTallybook(t, "import", stmt, "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 2 bank transactions")

	out, err = runTallybook(t, "reconcile", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Matched Transactions: 1")
	assert.Contains(t, out, "Unmatched Transactions: 0")
	assert.Contains(t, out, "Discrepancies Found: 0")

	// Match fields persisted.
	txns, err := ledger.NewService(dir).List()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].IsMatched)
	assert.Equal(t, "REF123", txns[0].BankReference)

	// Activity log recorded the runs.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	actions := make([]string, len(entries))
	for i, e := range entries {
		actions[i] = e.Action
	}
	assert.Contains(t, actions, "import")
	assert.Contains(t, actions, "reconcile")
}

func TestFlow_ImportFromImportDir(t *testing.T) {
	dir := initDir(t)

	path := filepath.Join(dir, "import", "jan.csv")
	require.NoError(t, os.WriteFile(path, []byte(statementCSV), 0o644))

	out, err := runTallybook(t, "import", "--dir", dir)
	require.NoError(t, err, out)

	// File moved to processed.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	assert.NoError(t, err)
}

func TestFlow_ImportEmptyStatementFails(t *testing.T) {
	dir := initDir(t)

	stmt := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(stmt, []byte("Date,Description,Amount,Balance\n"), 0o644))

	out, err := runTallybook(t, "import", stmt, "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "no valid transactions found")
}

func TestFlow_ReportDoesNotPersist(t *testing.T) {
	dir := initDir(t)

	out, err := runTallybook(t, "add", "--dir", dir,
		"--type", "expense", "--amount", "850.50",
		"--description", "Grocery Store", "--date", "2024-01-15")
	require.NoError(t, err, out)

	stmt := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(stmt, []byte(statementCSV), 0o644))
	out, err = runTallybook(t, "import", stmt, "--dir", dir)
	require.NoError(t, err, out)

	out, err = runTallybook(t, "report", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Matched Transactions: 1")

	txns, err := ledger.NewService(dir).List()
	require.NoError(t, err)
	assert.False(t, txns[0].IsMatched, "report must not persist match fields")
}

func TestFlow_ReconcileWithoutStatement(t *testing.T) {
	dir := initDir(t)
	out, err := runTallybook(t, "reconcile", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "no bank statement uploaded")
}

func TestFlow_SummaryAndExport(t *testing.T) {
	dir := initDir(t)

	out, err := runTallybook(t, "add", "--dir", dir,
		"--type", "income", "--amount", "25000",
		"--description", "Salary", "--category", "Salary")
	require.NoError(t, err, out)
	out, err = runTallybook(t, "add", "--dir", dir,
		"--type", "expense", "--amount", "850.50",
		"--description", "Grocery Store", "--category", "Food")
	require.NoError(t, err, out)

	out, err = runTallybook(t, "summary", "--dir", dir, "--period", "yearly")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Income:       $25000.00")
	assert.Contains(t, out, "Expenses:     $850.50")
	assert.Contains(t, out, "Transactions: 2")

	out, err = runTallybook(t, "categories", "--dir", dir, "--period", "yearly")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Food")

	exportPath := filepath.Join(dir, "exports", "txns.csv")
	out, err = runTallybook(t, "export", "--dir", dir, "--output", exportPath)
	require.NoError(t, err, out)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Bank Reference")
}

func TestFlow_SummaryBadPeriod(t *testing.T) {
	dir := initDir(t)
	out, err := runTallybook(t, "summary", "--dir", dir, "--period", "fortnightly")
	require.Error(t, err)
	assert.Contains(t, out, "unknown period")
}
