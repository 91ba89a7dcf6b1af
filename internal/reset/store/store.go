package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// resetOrder lists tables children first.
var resetOrder = []string{
	"cash_count_details",
	"cash_deliveries",
	"cash_counts",
	"stock_reports",
	"low_stock_items",
}

// DeleteAll empties every data table in one transaction.
func (s *Store) DeleteAll(ctx context.Context) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, table := range resetOrder {
		if _, err := dbTx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("deleting from %s: %w", table, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
