package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCountColumns = `
	id, "timestamp", banknote_total, coin_total, grand_total, previous_amount, difference,
	note, owner_id, status, created_at
`

// scanCount expects the column order of selectCountColumns.
func scanCount(s scanner) (*cash.Count, error) {
	var c cash.Count

	var note sql.NullString

	var status string

	if err := s.Scan(
		&c.ID, &c.Timestamp, &c.BanknoteTotal, &c.CoinTotal, &c.GrandTotal, &c.PreviousAmount, &c.Difference,
		&note, &c.OwnerID, &status, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Note = note.String
	c.Status = cash.Status(status)

	return &c, nil
}

const selectDeliveryColumns = `
	id, "timestamp", amount, recipient, note, owner_id, status, created_at
`

func scanDelivery(s scanner) (*cash.Delivery, error) {
	var d cash.Delivery

	var note sql.NullString

	var status string

	if err := s.Scan(
		&d.ID, &d.Timestamp, &d.Amount, &d.Recipient, &note, &d.OwnerID, &status, &d.CreatedAt,
	); err != nil {
		return nil, err
	}

	d.Note = note.String
	d.Status = cash.Status(status)

	return &d, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) CreateCount(ctx context.Context, c *cash.Count) error {
	query := `
		INSERT INTO cash_counts (banknote_total, coin_total, grand_total, previous_amount, difference, note, "timestamp", owner_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.BanknoteTotal,
		c.CoinTotal,
		c.GrandTotal,
		c.PreviousAmount,
		c.Difference,
		nullString(c.Note),
		c.Timestamp,
		c.OwnerID,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating cash count: %w", err)
	}

	return nil
}

// CreateDetails writes all detail rows of one count in a single transaction.
func (s *Store) CreateDetails(ctx context.Context, details []*cash.Detail) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO cash_count_details (cash_count_id, denomination_kind, value, "count", line_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, d := range details {
		err := dbTx.QueryRowContext(ctx, query,
			d.CountID,
			d.Kind,
			d.Value,
			d.Count,
			d.LineTotal,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("creating cash count detail: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) CreateDelivery(ctx context.Context, d *cash.Delivery) error {
	query := `
		INSERT INTO cash_deliveries (amount, recipient, note, "timestamp", owner_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Amount,
		d.Recipient,
		nullString(d.Note),
		d.Timestamp,
		d.OwnerID,
		d.Status,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating cash delivery: %w", err)
	}

	return nil
}

func (s *Store) LatestCount(ctx context.Context) (*cash.Count, error) {
	query := `SELECT ` + selectCountColumns + `
		FROM cash_counts
		ORDER BY "timestamp" DESC, created_at DESC
		LIMIT 1`

	c, err := scanCount(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cash.ErrNotFound
		}

		return nil, fmt.Errorf("getting latest cash count: %w", err)
	}

	return c, nil
}

func (s *Store) RecentDeliveries(ctx context.Context, limit int) ([]*cash.Delivery, error) {
	query := `SELECT ` + selectDeliveryColumns + `
		FROM cash_deliveries
		ORDER BY "timestamp" DESC, created_at DESC
		LIMIT $1`

	return s.queryDeliveries(ctx, query, limit)
}

func (s *Store) GetCount(ctx context.Context, id uuid.UUID) (*cash.Count, error) {
	query := `SELECT ` + selectCountColumns + `
		FROM cash_counts
		WHERE id = $1`

	c, err := scanCount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cash.ErrNotFound
		}

		return nil, fmt.Errorf("getting cash count: %w", err)
	}

	return c, nil
}

func (s *Store) ListDetails(ctx context.Context, countID uuid.UUID) ([]*cash.Detail, error) {
	query := `
		SELECT id, cash_count_id, denomination_kind, value, "count", line_total
		FROM cash_count_details
		WHERE cash_count_id = $1
		ORDER BY value DESC`

	rows, err := s.db.QueryContext(ctx, query, countID)
	if err != nil {
		return nil, fmt.Errorf("listing cash count details: %w", err)
	}
	defer rows.Close()

	var details []*cash.Detail

	for rows.Next() {
		var d cash.Detail

		var kind string

		if err := rows.Scan(&d.ID, &d.CountID, &kind, &d.Value, &d.Count, &d.LineTotal); err != nil {
			return nil, fmt.Errorf("scanning cash count detail: %w", err)
		}

		d.Kind = cash.Kind(kind)
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash count details: %w", err)
	}

	return details, nil
}

func (s *Store) ListCounts(ctx context.Context, page cash.Page) ([]*cash.Count, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cash_counts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting cash counts: %w", err)
	}

	query := `SELECT ` + selectCountColumns + `
		FROM cash_counts
		ORDER BY "timestamp" DESC, created_at DESC
		LIMIT $1 OFFSET $2`

	counts, err := s.queryCounts(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	return counts, total, nil
}

func (s *Store) ListDeliveries(ctx context.Context, page cash.Page) ([]*cash.Delivery, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cash_deliveries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting cash deliveries: %w", err)
	}

	query := `SELECT ` + selectDeliveryColumns + `
		FROM cash_deliveries
		ORDER BY "timestamp" DESC, created_at DESC
		LIMIT $1 OFFSET $2`

	deliveries, err := s.queryDeliveries(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	return deliveries, total, nil
}

func (s *Store) CountsInRange(ctx context.Context, r cash.Range) ([]*cash.Count, error) {
	where, args := rangeClause(r)

	query := `SELECT ` + selectCountColumns + `
		FROM cash_counts` + where + `
		ORDER BY "timestamp" DESC, created_at DESC`

	return s.queryCounts(ctx, query, args...)
}

func (s *Store) DeliveriesInRange(ctx context.Context, r cash.Range) ([]*cash.Delivery, error) {
	where, args := rangeClause(r)

	query := `SELECT ` + selectDeliveryColumns + `
		FROM cash_deliveries` + where + `
		ORDER BY "timestamp" DESC, created_at DESC`

	return s.queryDeliveries(ctx, query, args...)
}

func rangeClause(r cash.Range) (string, []any) {
	where := ` WHERE TRUE`

	var args []any

	argIdx := 1

	if r.Start != nil {
		where += fmt.Sprintf(` AND "timestamp" >= $%d`, argIdx)

		args = append(args, *r.Start)
		argIdx++
	}

	if r.End != nil {
		where += fmt.Sprintf(` AND "timestamp" <= $%d`, argIdx)

		args = append(args, *r.End)
	}

	return where, args
}

func (s *Store) queryCounts(ctx context.Context, query string, args ...any) ([]*cash.Count, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cash counts: %w", err)
	}
	defer rows.Close()

	var counts []*cash.Count

	for rows.Next() {
		c, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cash count: %w", err)
		}

		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash counts: %w", err)
	}

	return counts, nil
}

func (s *Store) queryDeliveries(ctx context.Context, query string, args ...any) ([]*cash.Delivery, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cash deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*cash.Delivery

	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cash delivery: %w", err)
		}

		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cash deliveries: %w", err)
	}

	return deliveries, nil
}
