package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/report"
	"github.com/MrJamesThe3rd/tillbook/internal/report/store"
)

var reportColumns = []string{
	"id", "name", "report_date", "file_path", "file_name", "item_count", "total_value", "category", "status", "owner_id", "created_at",
}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateReport(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	now := time.Now().UTC()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	r := &report.Report{
		Name:       "Mart Sayımı",
		Date:       date,
		FilePath:   "reports/Mart-Sayımı-1.xlsx",
		FileName:   "mart.xlsx",
		ItemCount:  120,
		TotalValue: decimal.NewFromInt(45000),
		Category:   report.DefaultCategory,
		Status:     report.StatusCompleted,
	}

	mock.ExpectQuery("INSERT INTO stock_reports").
		WithArgs("Mart Sayımı", date, "reports/Mart-Sayımı-1.xlsx", "mart.xlsx", 120, decimal.NewFromInt(45000), "monthly", "completed", uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), now))

	require.NoError(t, s.CreateReport(context.Background(), r))
	assert.Equal(t, id, r.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetReport(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectQuery("FROM stock_reports WHERE id = \\$1").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(reportColumns).AddRow(
				id.String(), "Mart", time.Now(), nil, nil, 10, "99.90", "monthly", "completed", uuid.Nil.String(), time.Now(),
			))

		r, err := s.GetReport(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Mart", r.Name)
		assert.Empty(t, r.FilePath)
		assert.True(t, r.TotalValue.Equal(decimal.RequireFromString("99.9")))
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newStore(t)

		mock.ExpectQuery("FROM stock_reports").WillReturnError(sql.ErrNoRows)

		_, err := s.GetReport(context.Background(), id)
		assert.ErrorIs(t, err, report.ErrNotFound)
	})
}

func TestStore_ListReports_NoLimit(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`ORDER BY report_date DESC, created_at DESC\s+LIMIT \$1`).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows(reportColumns))

	reports, err := s.ListReports(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpsertLowStock(t *testing.T) {
	s, mock := newStore(t)

	item := &report.LowStockItem{
		ProductName:  "Süt 1L",
		CurrentStock: 2,
		MinimumStock: 10,
		Category:     "Gıda",
		Status:       report.StockCritical,
	}

	mock.ExpectQuery(`ON CONFLICT \(product_name\) DO UPDATE`).
		WithArgs("Süt 1L", 2, 10, "Gıda", "critical").
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(uuid.NewString(), time.Now()))

	require.NoError(t, s.UpsertLowStock(context.Background(), item))
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListLowStock(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery(`ORDER BY current_stock ASC`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "current_stock", "minimum_stock", "category", "status", "updated_at"}).
			AddRow(uuid.NewString(), "Süt 1L", 2, 10, "Gıda", "critical", time.Now()).
			AddRow(uuid.NewString(), "Şampuan", 4, 6, "Kozmetik", "low", time.Now()))

	items, err := s.ListLowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, report.StockCritical, items[0].Status)
	assert.Equal(t, 4, items[1].CurrentStock)
}

func TestStore_ListLowStock_Error(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectQuery("FROM low_stock_items").WillReturnError(errors.New("timeout"))

	_, err := s.ListLowStock(context.Background(), 5)
	assert.ErrorContains(t, err, "listing low stock items")
}
