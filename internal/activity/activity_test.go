package activity

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Action:    ActionAdd,
		Client:    "Ana",
		Service:   "barba",
		Quantity:  1,
		Artifact:  "balanco_diario_17102026.xlsx",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0].Client)

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Action = ActionRemove
	e2.Client = "Bruno"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionAdd, entries[0].Action)
	assert.Equal(t, ActionRemove, entries[1].Action)
	assert.Equal(t, "Bruno", entries[1].Client)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := testEntry()
	orig.Client = `Zé "Barbudo", Jr`
	require.NoError(t, Append(dir, []Entry{orig}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got := entries[0]
	assert.True(t, orig.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, orig.Action, got.Action)
	assert.Equal(t, orig.Client, got.Client)
	assert.Equal(t, orig.Service, got.Service)
	assert.Equal(t, orig.Quantity, got.Quantity)
	assert.Equal(t, orig.Artifact, got.Artifact)
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"a"})
	assert.Error(t, err)

	row := MarshalEntry(testEntry())
	row[colTime] = "yesterday"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing timestamp")

	row = MarshalEntry(testEntry())
	row[colQuantity] = "many"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing quantity")
}
