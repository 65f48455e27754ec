package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Action:     "reconcile",
		Details:    "3 matched, 1 unmatched, 2 discrepancies",
		CommitHash: "abc1234",
	}
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	orig := sampleEntry()

	row := MarshalEntry(orig)
	require.Len(t, row, numFields)

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.True(t, orig.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, orig.Action, got.Action)
	assert.Equal(t, orig.Details, got.Details)
	assert.Equal(t, orig.CommitHash, got.CommitHash)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	row := MarshalEntry(sampleEntry())
	row[colTimestamp] = "yesterday"
	_, err := UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, []Entry{sampleEntry()}))

	second := sampleEntry()
	second.Action = "import"
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "reconcile", entries[0].Action)
	assert.Equal(t, "import", entries[1].Action)

	// Header written exactly once.
	data, err := os.ReadFile(filepath.Join(dir, logFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Record(dir, "add", "expense 850.50", ""))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "add", entries[0].Action)
	assert.WithinDuration(t, time.Now(), entries[0].Timestamp, time.Minute)
}
