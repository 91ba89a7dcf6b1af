package export

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

// Item is one exported cash record. Exactly one of Count and Delivery is set.
type Item struct {
	Count    *cash.Count
	Delivery *cash.Delivery
}

func (i Item) Timestamp() time.Time {
	if i.Count != nil {
		return i.Count.Timestamp
	}

	return i.Delivery.Timestamp
}

type RangeLister interface {
	ListRange(ctx context.Context, r cash.Range) ([]*cash.Count, []*cash.Delivery, error)
}

// Service handles the export of counts and deliveries.
type Service struct {
	cash RangeLister
}

func NewService(cashSvc RangeLister) *Service {
	return &Service{cash: cashSvc}
}

// Export lists the counts and deliveries inside r, merged newest first.
func (s *Service) Export(ctx context.Context, r cash.Range) ([]Item, error) {
	counts, deliveries, err := s.cash.ListRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("listing cash records: %w", err)
	}

	items := make([]Item, 0, len(counts)+len(deliveries))

	for _, c := range counts {
		items = append(items, Item{Count: c})
	}

	for _, d := range deliveries {
		items = append(items, Item{Delivery: d})
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.Timestamp().UnixNano(), a.Timestamp().UnixNano())
	})

	return items, nil
}

const (
	countsSheet     = "Counts"
	deliveriesSheet = "Deliveries"
)

var (
	countHeaders    = []string{"timestamp", "banknote_total", "coin_total", "grand_total", "previous_amount", "difference", "note", "status"}
	deliveryHeaders = []string{"timestamp", "amount", "recipient", "note", "status"}
)

// WriteWorkbook renders items as an XLSX workbook with one sheet per record type.
func (s *Service) WriteWorkbook(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", countsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	if _, err := f.NewSheet(deliveriesSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeRow(f, countsSheet, 1, toAny(countHeaders)); err != nil {
		return err
	}

	if err := writeRow(f, deliveriesSheet, 1, toAny(deliveryHeaders)); err != nil {
		return err
	}

	countRow, deliveryRow := 2, 2

	for _, item := range items {
		switch {
		case item.Count != nil:
			c := item.Count
			if err := writeRow(f, countsSheet, countRow, []any{
				c.Timestamp,
				c.BanknoteTotal.InexactFloat64(),
				c.CoinTotal.InexactFloat64(),
				c.GrandTotal.InexactFloat64(),
				c.PreviousAmount.InexactFloat64(),
				c.Difference.InexactFloat64(),
				c.Note,
				string(c.Status),
			}); err != nil {
				return err
			}

			countRow++
		case item.Delivery != nil:
			d := item.Delivery
			if err := writeRow(f, deliveriesSheet, deliveryRow, []any{
				d.Timestamp,
				d.Amount.InexactFloat64(),
				d.Recipient,
				d.Note,
				string(d.Status),
			}); err != nil {
				return err
			}

			deliveryRow++
		}
	}

	for _, sheet := range []string{countsSheet, deliveriesSheet} {
		if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolving cell: %w", err)
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}

	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}

// SaveWorkbook writes the workbook to outputDir and returns its path.
func (s *Service) SaveWorkbook(items []Item, outputDir string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("tillbook_%s.xlsx", now.Format("20060102_150405")))

	err := writeFile(path, func(w io.Writer) error {
		return s.WriteWorkbook(w, items)
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

// writeFile removes path again when write or close fails so no partial file is left.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	err = write(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing file: %w", closeErr)
	}

	if err != nil {
		os.Remove(path)
		return err
	}

	return nil
}

// GenerateSummary creates a plain-text summary with one line per record.
func (s *Service) GenerateSummary(p *locale.Printer, items []Item) string {
	var sb strings.Builder

	for _, item := range items {
		switch {
		case item.Count != nil:
			c := item.Count
			sb.WriteString(fmt.Sprintf("* %s | %s | %s | %s %s\n",
				c.Timestamp.Format("2006-01-02 15:04"),
				p.Text(locale.CashCountLabel),
				p.Amount(c.GrandTotal),
				p.Text(locale.DifferenceLabel),
				p.Signed(c.Difference),
			))
		case item.Delivery != nil:
			d := item.Delivery
			sb.WriteString(fmt.Sprintf("* %s | %s | %s | %s\n",
				d.Timestamp.Format("2006-01-02 15:04"),
				p.Text(locale.CashDeliveryLabel),
				p.Amount(d.Amount.Neg()),
				d.Recipient,
			))
		}
	}

	return sb.String()
}
