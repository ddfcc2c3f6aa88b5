package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMigrateFreshCreatesFullSchema(t *testing.T) {
	store := openTestStore(t)

	var version int
	require.NoError(t, store.DB().Raw("PRAGMA user_version").Scan(&version).Error)
	require.Equal(t, SchemaVersion, version)

	for _, table := range Tables() {
		var n int
		err := store.DB().
			Raw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).
			Scan(&n).Error
		require.NoError(t, err)
		require.Equal(t, 1, n, "table %s should exist", table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, Migrate(store.DB()))
	require.NoError(t, Migrate(store.DB()))

	var version int
	require.NoError(t, store.DB().Raw("PRAGMA user_version").Scan(&version).Error)
	require.Equal(t, SchemaVersion, version)
}

func TestMigrateReplaysFinanceRebuild(t *testing.T) {
	store := openTestStore(t)

	// Rewind to version 6 and migrate again: the finance rebuild step must
	// drop and recreate income/expenses with the denomination columns.
	require.NoError(t, store.DB().Exec("INSERT INTO income(description, notes, coins, total, created_at) VALUES('stale', 1, 0, 1, CURRENT_TIMESTAMP)").Error)
	require.NoError(t, store.DB().Exec("PRAGMA user_version = 6").Error)
	require.NoError(t, Migrate(store.DB()))

	var version int
	require.NoError(t, store.DB().Raw("PRAGMA user_version").Scan(&version).Error)
	require.Equal(t, SchemaVersion, version)

	var rows int
	require.NoError(t, store.DB().Raw("SELECT COUNT(*) FROM income").Scan(&rows).Error)
	require.Equal(t, 0, rows, "rebuild should start income empty")

	var hasDenoms int
	require.NoError(t, store.DB().
		Raw("SELECT COUNT(*) FROM pragma_table_info('income') WHERE name = 'amount_r5'").
		Scan(&hasDenoms).Error)
	require.Equal(t, 1, hasDenoms)
}

func TestMigrateRefusesDowngrade(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.DB().Exec("PRAGMA user_version = 99").Error)
	err := Migrate(store.DB())
	require.Error(t, err)
	require.Contains(t, err.Error(), "newer than supported")
}

func TestQueryTableValidatesName(t *testing.T) {
	store := openTestStore(t)

	_, err := store.QueryTable("sqlite_master")
	require.Error(t, err)

	rows, err := store.QueryTable("employees")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestReopenAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Close())
	require.NoError(t, store.Reopen())
	defer store.Close()

	rows, err := store.QueryTable("users")
	require.NoError(t, err)
	require.Empty(t, rows)
}
