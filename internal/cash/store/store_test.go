package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/cash/store"
)

var countColumns = []string{
	"id", "timestamp", "banknote_total", "coin_total", "grand_total", "previous_amount", "difference",
	"note", "owner_id", "status", "created_at",
}

var deliveryColumns = []string{
	"id", "timestamp", "amount", "recipient", "note", "owner_id", "status", "created_at",
}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateCount(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	owner := uuid.New()
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	c := &cash.Count{
		Timestamp:      now,
		BanknoteTotal:  decimal.NewFromInt(700),
		CoinTotal:      decimal.NewFromInt(5),
		GrandTotal:     decimal.NewFromInt(705),
		PreviousAmount: decimal.NewFromInt(500),
		Difference:     decimal.NewFromInt(205),
		OwnerID:        owner,
		Status:         cash.StatusCompleted,
	}

	mock.ExpectQuery("INSERT INTO cash_counts").
		WithArgs(
			decimal.NewFromInt(700), decimal.NewFromInt(5), decimal.NewFromInt(705),
			decimal.NewFromInt(500), decimal.NewFromInt(205),
			nil, now, owner, "completed",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	require.NoError(t, s.CreateCount(context.Background(), c))
	assert.Equal(t, id, c.ID)
	assert.Equal(t, now, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateCount_Error(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("INSERT INTO cash_counts").WillReturnError(errors.New("connection reset"))

	err := s.CreateCount(context.Background(), &cash.Count{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating cash count")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateDetails(t *testing.T) {
	countID := uuid.New()

	details := []*cash.Detail{
		{CountID: countID, Kind: cash.KindBanknote, Value: decimal.NewFromInt(200), Count: 3, LineTotal: decimal.NewFromInt(600)},
		{CountID: countID, Kind: cash.KindBanknote, Value: decimal.NewFromInt(100), Count: 1, LineTotal: decimal.NewFromInt(100)},
	}

	t.Run("commits all rows", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectBegin()

		for _, d := range details {
			mock.ExpectQuery("INSERT INTO cash_count_details").
				WithArgs(countID, "banknote", d.Value, d.Count, d.LineTotal).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		}

		mock.ExpectCommit()

		require.NoError(t, s.CreateDetails(context.Background(), details))
		assert.NotEqual(t, uuid.Nil, details[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO cash_count_details").WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		err := s.CreateDetails(context.Background(), details)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating cash count detail")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_CreateDelivery(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	owner := uuid.New()
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	d := &cash.Delivery{
		Timestamp: now,
		Amount:    decimal.RequireFromString("300.50"),
		Recipient: "Finans Departmanı",
		Note:      "günlük hasılat",
		OwnerID:   owner,
		Status:    cash.StatusCompleted,
	}

	mock.ExpectQuery("INSERT INTO cash_deliveries").
		WithArgs(decimal.RequireFromString("300.50"), "Finans Departmanı", "günlük hasılat", now, owner, "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	require.NoError(t, s.CreateDelivery(context.Background(), d))
	assert.Equal(t, id, d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LatestCount(t *testing.T) {
	t.Run("returns newest row", func(t *testing.T) {
		s, mock := newStore(t)

		id := uuid.New()
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM cash_counts\s+ORDER BY "timestamp" DESC, created_at DESC\s+LIMIT 1`).
			WillReturnRows(sqlmock.NewRows(countColumns).AddRow(
				id.String(), now, "700.00", "5.00", "705.00", "500.00", "205.00",
				nil, uuid.Nil.String(), "completed", now,
			))

		c, err := s.LatestCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, id, c.ID)
		assert.True(t, c.GrandTotal.Equal(decimal.NewFromInt(705)))
		assert.Empty(t, c.Note)
		assert.Equal(t, cash.StatusCompleted, c.Status)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectQuery("FROM cash_counts").WillReturnRows(sqlmock.NewRows(countColumns))

		_, err := s.LatestCount(context.Background())
		assert.ErrorIs(t, err, cash.ErrNotFound)
	})
}

func TestStore_RecentDeliveries(t *testing.T) {
	s, mock := newStore(t)

	now := time.Now().UTC()

	mock.ExpectQuery(`FROM cash_deliveries\s+ORDER BY "timestamp" DESC, created_at DESC\s+LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(deliveryColumns).
			AddRow(uuid.NewString(), now, "300.00", "Ali", "akşam", uuid.Nil.String(), "completed", now).
			AddRow(uuid.NewString(), now.Add(-time.Hour), "150.00", "Ayşe", nil, uuid.Nil.String(), "completed", now))

	ds, err := s.RecentDeliveries(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Ali", ds[0].Recipient)
	assert.Equal(t, "akşam", ds[0].Note)
	assert.True(t, ds[1].Amount.Equal(decimal.NewFromInt(150)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListCounts(t *testing.T) {
	s, mock := newStore(t)

	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM cash_counts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(countColumns).AddRow(
			uuid.NewString(), now, "10.00", "0.50", "10.50", "0.00", "10.50",
			"ikinci sayfa", uuid.Nil.String(), "completed", now,
		))

	counts, total, err := s.ListCounts(context.Background(), cash.Page{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, counts, 1)
	assert.Equal(t, "ikinci sayfa", counts[0].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListDetails(t *testing.T) {
	s, mock := newStore(t)

	countID := uuid.New()

	mock.ExpectQuery("FROM cash_count_details").
		WithArgs(countID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cash_count_id", "denomination_kind", "value", "count", "line_total"}).
			AddRow(uuid.NewString(), countID.String(), "banknote", "200.00", 3, "600.00").
			AddRow(uuid.NewString(), countID.String(), "coin", "1.00", 5, "5.00"))

	details, err := s.ListDetails(context.Background(), countID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, cash.KindBanknote, details[0].Kind)
	assert.Equal(t, 3, details[0].Count)
	assert.Equal(t, cash.KindCoin, details[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CountsInRange(t *testing.T) {
	s, mock := newStore(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`WHERE TRUE AND "timestamp" >= \$1 AND "timestamp" <= \$2`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(countColumns))

	counts, err := s.CountsInRange(context.Background(), cash.Range{Start: &start, End: &end})
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
