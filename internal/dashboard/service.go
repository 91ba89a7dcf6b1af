package dashboard

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/cache"
	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

// DefaultLimit is the list size used when a caller passes no limit.
const DefaultLimit = 5

type CashReader interface {
	ListRange(ctx context.Context, r cash.Range) ([]*cash.Count, []*cash.Delivery, error)
	CountHistory(ctx context.Context, page cash.Page) (*cash.CountPage, error)
	DeliveryHistory(ctx context.Context, page cash.Page) (*cash.DeliveryPage, error)
}

type ReportReader interface {
	List(ctx context.Context, limit int) ([]*report.Report, error)
	LowStock(ctx context.Context, limit int) ([]*report.LowStockItem, error)
}

type Service struct {
	cash    CashReader
	reports ReportReader
	cache   *cache.Cache
}

// NewService builds the dashboard. c may be nil to disable caching.
func NewService(cashReader CashReader, reports ReportReader, c *cache.Cache) *Service {
	return &Service{cash: cashReader, reports: reports, cache: c}
}

type TodayStats struct {
	TotalCash  decimal.Decimal `json:"total_cash"`
	CashIn     decimal.Decimal `json:"cash_in"`
	CashOut    decimal.Decimal `json:"cash_out"`
	Difference decimal.Decimal `json:"difference"`
}

const todayKeyPrefix = "dashboard:today:"

// TodayStats reports the latest count of the day against the day's deliveries.
func (s *Service) TodayStats(ctx context.Context, now time.Time) (*TodayStats, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	key := todayKeyPrefix + start.Format(time.DateOnly)

	var cached TodayStats

	err := s.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		slog.Error("failed to read dashboard cache", "key", key, "error", err)
	}

	counts, deliveries, err := s.cash.ListRange(ctx, cash.Range{Start: &start})
	if err != nil {
		return nil, fmt.Errorf("loading today's cash records: %w", err)
	}

	cashIn := decimal.Zero
	if len(counts) > 0 {
		cashIn = counts[0].GrandTotal
	}

	cashOut := decimal.Zero
	for _, d := range deliveries {
		cashOut = cashOut.Add(d.Amount)
	}

	stats := &TodayStats{
		TotalCash:  cashIn.Sub(cashOut),
		CashIn:     cashIn,
		CashOut:    cashOut,
		Difference: cashIn.Sub(cashOut),
	}

	if err := s.cache.SetJSON(ctx, key, stats); err != nil {
		slog.Error("failed to write dashboard cache", "key", key, "error", err)
	}

	return stats, nil
}

// InvalidateToday drops cached day stats. It is registered as a cash write hook.
func (s *Service) InvalidateToday(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, todayKeyPrefix); err != nil {
		slog.Error("failed to invalidate dashboard cache", "error", err)
	}
}

type ActivityKind string

const (
	ActivityCount    ActivityKind = "count"
	ActivityDelivery ActivityKind = "delivery"
)

// Activity is one row of the merged count/delivery feed. Deliveries carry a
// negative amount.
type Activity struct {
	ID        uuid.UUID
	Kind      ActivityKind
	Amount    decimal.Decimal
	Timestamp time.Time
	Status    cash.Status
	Detail    string
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	page := cash.Page{Number: 1, Size: limit}

	counts, err := s.cash.CountHistory(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("loading recent counts: %w", err)
	}

	deliveries, err := s.cash.DeliveryHistory(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("loading recent deliveries: %w", err)
	}

	out := make([]Activity, 0, len(counts.Items)+len(deliveries.Items))

	for _, c := range counts.Items {
		out = append(out, Activity{
			ID:        c.ID,
			Kind:      ActivityCount,
			Amount:    c.GrandTotal,
			Timestamp: c.Timestamp,
			Status:    c.Status,
			Detail:    c.Note,
		})
	}

	for _, d := range deliveries.Items {
		out = append(out, Activity{
			ID:        d.ID,
			Kind:      ActivityDelivery,
			Amount:    d.Amount.Neg(),
			Timestamp: d.Timestamp,
			Status:    d.Status,
			Detail:    d.Recipient,
		})
	}

	slices.SortStableFunc(out, func(a, b Activity) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Service) RecentReports(ctx context.Context, limit int) ([]*report.Report, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return s.reports.List(ctx, limit)
}

func (s *Service) LowStock(ctx context.Context, limit int) ([]*report.LowStockItem, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return s.reports.LowStock(ctx, limit)
}
