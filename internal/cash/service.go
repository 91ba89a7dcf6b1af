package cash

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentDeliveriesLimit is the size of the recent deliveries window.
const RecentDeliveriesLimit = 5

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cash
type Repository interface {
	CreateCount(ctx context.Context, c *Count) error
	CreateDetails(ctx context.Context, details []*Detail) error
	CreateDelivery(ctx context.Context, d *Delivery) error

	LatestCount(ctx context.Context) (*Count, error)
	RecentDeliveries(ctx context.Context, limit int) ([]*Delivery, error)

	GetCount(ctx context.Context, id uuid.UUID) (*Count, error)
	ListDetails(ctx context.Context, countID uuid.UUID) ([]*Detail, error)

	ListCounts(ctx context.Context, page Page) ([]*Count, int, error)
	ListDeliveries(ctx context.Context, page Page) ([]*Delivery, int, error)

	CountsInRange(ctx context.Context, r Range) ([]*Count, error)
	DeliveriesInRange(ctx context.Context, r Range) ([]*Delivery, error)
}

type Service struct {
	repo    Repository
	onWrite []func(ctx context.Context)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// OnWrite registers hook to run after every stored count or delivery.
// Register hooks before the service is shared.
func (s *Service) OnWrite(hook func(ctx context.Context)) {
	s.onWrite = append(s.onWrite, hook)
}

func (s *Service) written(ctx context.Context) {
	for _, hook := range s.onWrite {
		hook(ctx)
	}
}

type ReconcileParams struct {
	OwnerID        uuid.UUID
	Entries        []Denomination
	PreviousAmount decimal.Decimal
	Note           string
	Timestamp      time.Time
}

// ReconcileResult reports what was persisted. A non-nil DetailErr means the
// count row exists but its denomination rows do not.
type ReconcileResult struct {
	Count     *Count
	Details   []*Detail
	DetailErr error
}

// Complete reports whether the count and all of its detail rows were written.
func (r *ReconcileResult) Complete() bool {
	return r.DetailErr == nil
}

// SubmitReconciliation persists a count and then its non-zero denomination lines.
func (s *Service) SubmitReconciliation(ctx context.Context, params ReconcileParams) (*ReconcileResult, error) {
	ledger := NewLedger(params.Entries)

	ts := params.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	grand := ledger.GrandTotal()

	c := &Count{
		Timestamp:      ts,
		BanknoteTotal:  ledger.Subtotal(KindBanknote),
		CoinTotal:      ledger.Subtotal(KindCoin),
		GrandTotal:     grand,
		PreviousAmount: params.PreviousAmount,
		Difference:     grand.Sub(params.PreviousAmount),
		Note:           strings.TrimSpace(params.Note),
		OwnerID:        params.OwnerID,
		Status:         StatusCompleted,
	}

	if err := s.repo.CreateCount(ctx, c); err != nil {
		return nil, persistence("create cash count", err)
	}

	s.written(ctx)

	result := &ReconcileResult{Count: c}

	details := detailsFor(c.ID, ledger.Entries())
	if len(details) == 0 {
		return result, nil
	}

	if err := s.repo.CreateDetails(ctx, details); err != nil {
		slog.Error("failed to save cash count details", "count_id", c.ID, "error", err)

		result.DetailErr = persistence("create cash count details", err)

		return result, nil
	}

	result.Details = details

	return result, nil
}

func detailsFor(countID uuid.UUID, entries []Denomination) []*Detail {
	var details []*Detail

	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}

		details = append(details, &Detail{
			CountID:   countID,
			Kind:      Classify(e.Value),
			Value:     e.Value,
			Count:     e.Count,
			LineTotal: e.LineTotal(),
		})
	}

	return details
}

type DeliveryParams struct {
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	Recipient string
	Note      string
	Timestamp time.Time
	// Available is the live till total the hand-off is checked against.
	Available decimal.Decimal
}

// ValidateDelivery applies the hand-off rules in order without touching storage.
func ValidateDelivery(amount, available decimal.Decimal, recipient string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(available) {
		return ErrExceedsAvailableCash
	}

	if strings.TrimSpace(recipient) == "" {
		return ErrMissingRecipient
	}

	return nil
}

func (s *Service) SubmitDelivery(ctx context.Context, params DeliveryParams) (*Delivery, error) {
	if err := ValidateDelivery(params.Amount, params.Available, params.Recipient); err != nil {
		return nil, err
	}

	ts := params.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	d := &Delivery{
		Timestamp: ts,
		Amount:    params.Amount,
		Recipient: strings.TrimSpace(params.Recipient),
		Note:      strings.TrimSpace(params.Note),
		OwnerID:   params.OwnerID,
		Status:    StatusCompleted,
	}

	if err := s.repo.CreateDelivery(ctx, d); err != nil {
		return nil, persistence("create cash delivery", err)
	}

	s.written(ctx)

	return d, nil
}

// LoadPreviousBalance returns the grand total of the latest count, or zero when
// nothing has been counted yet.
func (s *Service) LoadPreviousBalance(ctx context.Context) (decimal.Decimal, error) {
	c, err := s.repo.LatestCount(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Zero, loadFailure("load latest cash count", err)
	}

	return c.GrandTotal, nil
}

func (s *Service) LoadRecentDeliveries(ctx context.Context, limit int) ([]*Delivery, error) {
	if limit <= 0 {
		limit = RecentDeliveriesLimit
	}

	ds, err := s.repo.RecentDeliveries(ctx, limit)
	if err != nil {
		return nil, loadFailure("load recent deliveries", err)
	}

	return ds, nil
}

func (s *Service) CountHistory(ctx context.Context, page Page) (*CountPage, error) {
	page = page.normalize()

	items, total, err := s.repo.ListCounts(ctx, page)
	if err != nil {
		return nil, loadFailure("list cash counts", err)
	}

	return &CountPage{Items: items, Total: total}, nil
}

func (s *Service) DeliveryHistory(ctx context.Context, page Page) (*DeliveryPage, error) {
	page = page.normalize()

	items, total, err := s.repo.ListDeliveries(ctx, page)
	if err != nil {
		return nil, loadFailure("list cash deliveries", err)
	}

	return &DeliveryPage{Items: items, Total: total}, nil
}

// CountDetails loads a count with its denomination rows. A count without rows
// is returned with an empty slice.
func (s *Service) CountDetails(ctx context.Context, id uuid.UUID) (*Count, []*Detail, error) {
	c, err := s.repo.GetCount(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrNotFound
		}

		return nil, nil, loadFailure("get cash count", err)
	}

	details, err := s.repo.ListDetails(ctx, id)
	if err != nil {
		return nil, nil, loadFailure("list cash count details", err)
	}

	if details == nil {
		details = []*Detail{}
	}

	return c, details, nil
}

// ListRange returns counts and deliveries inside r, newest first.
func (s *Service) ListRange(ctx context.Context, r Range) ([]*Count, []*Delivery, error) {
	counts, err := s.repo.CountsInRange(ctx, r)
	if err != nil {
		return nil, nil, loadFailure("list cash counts in range", err)
	}

	deliveries, err := s.repo.DeliveriesInRange(ctx, r)
	if err != nil {
		return nil, nil, loadFailure("list cash deliveries in range", err)
	}

	return counts, deliveries, nil
}
