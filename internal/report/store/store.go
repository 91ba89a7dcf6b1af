package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectReportColumns = `
	id, name, report_date, file_path, file_name, item_count, total_value, category, status, owner_id, created_at
`

func scanReport(s scanner) (*report.Report, error) {
	var r report.Report

	var filePath, fileName sql.NullString

	var status string

	if err := s.Scan(
		&r.ID, &r.Name, &r.Date, &filePath, &fileName, &r.ItemCount, &r.TotalValue, &r.Category, &status, &r.OwnerID, &r.CreatedAt,
	); err != nil {
		return nil, err
	}

	r.FilePath = filePath.String
	r.FileName = fileName.String
	r.Status = report.Status(status)

	return &r, nil
}

func (s *Store) CreateReport(ctx context.Context, r *report.Report) error {
	query := `
		INSERT INTO stock_reports (name, report_date, file_path, file_name, item_count, total_value, category, status, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Name,
		r.Date,
		r.FilePath,
		r.FileName,
		r.ItemCount,
		r.TotalValue,
		r.Category,
		r.Status,
		r.OwnerID,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating stock report: %w", err)
	}

	return nil
}

func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	query := `SELECT ` + selectReportColumns + ` FROM stock_reports WHERE id = $1`

	r, err := scanReport(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, report.ErrNotFound
		}

		return nil, fmt.Errorf("getting stock report: %w", err)
	}

	return r, nil
}

// ListReports returns the newest reports first. limit <= 0 returns all of them.
func (s *Store) ListReports(ctx context.Context, limit int) ([]*report.Report, error) {
	query := `SELECT ` + selectReportColumns + `
		FROM stock_reports
		ORDER BY report_date DESC, created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("listing stock reports: %w", err)
	}
	defer rows.Close()

	var reports []*report.Report

	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stock report: %w", err)
		}

		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock reports: %w", err)
	}

	return reports, nil
}

func (s *Store) UpsertLowStock(ctx context.Context, item *report.LowStockItem) error {
	query := `
		INSERT INTO low_stock_items (product_name, current_stock, minimum_stock, category, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (product_name) DO UPDATE SET
			current_stock = EXCLUDED.current_stock,
			minimum_stock = EXCLUDED.minimum_stock,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		item.ProductName,
		item.CurrentStock,
		item.MinimumStock,
		item.Category,
		item.Status,
	).Scan(&item.ID, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting low stock item: %w", err)
	}

	return nil
}

func (s *Store) ListLowStock(ctx context.Context, limit int) ([]*report.LowStockItem, error) {
	query := `
		SELECT id, product_name, current_stock, minimum_stock, category, status, updated_at
		FROM low_stock_items
		ORDER BY current_stock ASC, product_name ASC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("listing low stock items: %w", err)
	}
	defer rows.Close()

	var items []*report.LowStockItem

	for rows.Next() {
		var it report.LowStockItem

		var status string

		if err := rows.Scan(&it.ID, &it.ProductName, &it.CurrentStock, &it.MinimumStock, &it.Category, &status, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning low stock item: %w", err)
		}

		it.Status = report.StockStatus(status)
		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating low stock items: %w", err)
	}

	return items, nil
}

// limitArg maps a non-positive limit to NULL, which Postgres reads as no limit.
func limitArg(limit int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(limit), Valid: limit > 0}
}
