package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/reset/store"
)

func TestStore_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()

	for _, table := range []string{"cash_count_details", "cash_deliveries", "cash_counts", "stock_reports", "low_stock_items"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 3))
	}

	mock.ExpectCommit()

	require.NoError(t, store.New(db).DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteAll_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cash_count_details").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM cash_deliveries").WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err = store.New(db).DeleteAll(context.Background())
	assert.ErrorContains(t, err, "deleting from cash_deliveries")
	assert.NoError(t, mock.ExpectationsWereMet())
}
