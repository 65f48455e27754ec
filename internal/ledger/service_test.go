package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func addParams(desc string) AddParams {
	return AddParams{
		Type:        model.TypeExpense,
		Amount:      decimal.RequireFromString("850.50"),
		Description: desc,
		Category:    "Food",
		Date:        model.Date(2024, time.January, 15),
	}
}

func TestService_AddAndList(t *testing.T) {
	svc := NewService(t.TempDir())

	txn, err := svc.Add(addParams("Grocery Store"))
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())

	txns, err := svc.List()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.ID, txns[0].ID)
	assert.Equal(t, "Grocery Store", txns[0].Description)
}

func TestService_ListEmptyDir(t *testing.T) {
	txns, err := NewService(t.TempDir()).List()
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestService_AddValidates(t *testing.T) {
	svc := NewService(t.TempDir())

	params := addParams("bad")
	params.Amount = decimal.RequireFromString("-5")
	_, err := svc.Add(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// Nothing persisted.
	txns, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestService_Get(t *testing.T) {
	svc := NewService(t.TempDir())
	txn, err := svc.Add(addParams("findme"))
	require.NoError(t, err)

	got, err := svc.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "findme", got.Description)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	svc := NewService(t.TempDir())
	txn, err := svc.Add(addParams("before"))
	require.NoError(t, err)

	desc := "after"
	amt := decimal.RequireFromString("12.00")
	got, err := svc.Update(txn.ID, UpdateParams{Description: &desc, Amount: &amt})
	require.NoError(t, err)
	assert.Equal(t, "after", got.Description)
	assert.True(t, got.Amount.Equal(amt))
	assert.Equal(t, "Food", got.Category, "unset fields unchanged")

	_, err = svc.Update("nope", UpdateParams{Description: &desc})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateValidates(t *testing.T) {
	svc := NewService(t.TempDir())
	txn, err := svc.Add(addParams("keep"))
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(txn.ID, UpdateParams{Description: &empty})
	require.Error(t, err)

	got, err := svc.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Description)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(t.TempDir())
	first, err := svc.Add(addParams("one"))
	require.NoError(t, err)
	_, err = svc.Add(addParams("two"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(first.ID))

	txns, err := svc.List()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "two", txns[0].Description)

	assert.ErrorIs(t, svc.Delete(first.ID), ErrNotFound)
}

func TestService_ApplyMatches(t *testing.T) {
	svc := NewService(t.TempDir())
	matchedTx, err := svc.Add(addParams("matched"))
	require.NoError(t, err)
	otherTx, err := svc.Add(addParams("untouched"))
	require.NoError(t, err)

	matched := matchedTx
	matched.IsMatched = true
	matched.BankReference = "REF123"

	err = svc.ApplyMatches(model.MatchResult{
		Matched:   []model.Transaction{matched},
		Unmatched: []model.Transaction{otherTx},
	})
	require.NoError(t, err)

	got, err := svc.Get(matchedTx.ID)
	require.NoError(t, err)
	assert.True(t, got.IsMatched)
	assert.Equal(t, "REF123", got.BankReference)

	other, err := svc.Get(otherTx.ID)
	require.NoError(t, err)
	assert.False(t, other.IsMatched)
	assert.Empty(t, other.BankReference)
}

func TestService_ApplyMatchesNoMatched(t *testing.T) {
	svc := NewService(t.TempDir())
	// No ledger file exists; nothing to do and nothing created.
	require.NoError(t, svc.ApplyMatches(model.MatchResult{}))

	txns, err := svc.List()
	require.NoError(t, err)
	assert.Nil(t, txns)
}
