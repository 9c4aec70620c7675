package cashbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cashbook/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "expenses.json"))
	require.NoError(t, err)
	return s
}

func TestStorePersistsEveryMutation(t *testing.T) {
	s := openTestStore(t)

	reload := func() *Ledger {
		t.Helper()
		l, err := LoadLedger(s.File())
		require.NoError(t, err)
		return l
	}

	_, err := s.Create("01-03-2025", Income, M(100), "Salary")
	require.NoError(t, err)
	_, err = s.Create("02-03-2025", Expense, M(30), "Rent")
	require.NoError(t, err)
	_, err = s.Create("03-03-2025", Expense, M(5), "Coffee")
	require.NoError(t, err)
	assert.Equal(t, 3, reload().Len())

	_, err = s.Update(3, "04-03-2025", Expense, M(6), "Tea")
	require.NoError(t, err)
	r, err := reload().Record(3)
	require.NoError(t, err)
	assert.Equal(t, "Tea", r.Description)
	assert.True(t, M(-6).Equal(r.Amount))

	_, err = s.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Salary", "Tea"}, descriptions(reload().Records()))
	assert.True(t, M(94).Equal(reload().Balance()))
}

func TestStoreRejectsWithoutSaving(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Create("01-03-2025", "Gift", M(1), "x")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.Delete(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = os.Stat(s.File())
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing should have been written")
}

func TestStoreSaveFailure(t *testing.T) {
	s, err := OpenStore(filepath.Join(t.TempDir(), "missing-dir", "expenses.json"))
	require.NoError(t, err)

	_, err = s.Create("01-03-2025", Income, M(1), "x")
	assert.Error(t, err)
	assert.Equal(t, 1, s.Ledger().Len(), "the mutation is kept in memory")
}

func TestOpenStoreCorruptFileIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	file := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(file, []byte("{{{"), 0644))

	s, err := OpenStore(file)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Ledger().Len())
	assert.Equal(t, 1, logs.FilterMessage("ledger file is corrupt, starting an empty ledger").Len())

	// The next mutation overwrites the corrupt content.
	_, err = s.Create("01-03-2025", Income, M(1), "x")
	require.NoError(t, err)
	l, err := LoadLedger(file)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
}
