package cash

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is the state of one user's counting workflow: the ledger being
// edited, the carry-forward balance and a small window of recent deliveries.
// Saves run off the UI goroutine, so the carry-forward state sits behind mu.
type Session struct {
	svc     *Service
	ownerID uuid.UUID

	Ledger *Ledger

	mu         sync.RWMutex
	previous   decimal.Decimal
	deliveries []*Delivery
}

func NewSession(svc *Service, ownerID uuid.UUID, ledger *Ledger) *Session {
	return &Session{
		svc:     svc,
		ownerID: ownerID,
		Ledger:  ledger,
	}
}

// Start seeds the previous balance and the recent deliveries window.
func (s *Session) Start(ctx context.Context) error {
	prev, err := s.svc.LoadPreviousBalance(ctx)
	if err != nil {
		return err
	}

	ds, err := s.svc.LoadRecentDeliveries(ctx, RecentDeliveriesLimit)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.previous = prev
	s.deliveries = ds
	s.mu.Unlock()

	return nil
}

func (s *Session) PreviousBalance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.previous
}

// Difference is the live grand total minus the carry-forward balance.
func (s *Session) Difference() decimal.Decimal {
	return s.Ledger.GrandTotal().Sub(s.PreviousBalance())
}

func (s *Session) RecentDeliveries() []*Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Delivery, len(s.deliveries))
	copy(out, s.deliveries)

	return out
}

// Reconcile persists the current ledger. On success the new grand total
// becomes the carry-forward balance, even when detail rows failed.
func (s *Session) Reconcile(ctx context.Context, note string, ts time.Time) (*ReconcileResult, error) {
	result, err := s.svc.SubmitReconciliation(ctx, ReconcileParams{
		OwnerID:        s.ownerID,
		Entries:        s.Ledger.Entries(),
		PreviousAmount: s.PreviousBalance(),
		Note:           note,
		Timestamp:      ts,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.previous = result.Count.GrandTotal
	s.mu.Unlock()

	return result, nil
}

// Deliver records a hand-off checked against the live ledger total.
func (s *Session) Deliver(ctx context.Context, amount decimal.Decimal, recipient, note string, ts time.Time) (*Delivery, error) {
	d, err := s.svc.SubmitDelivery(ctx, DeliveryParams{
		OwnerID:   s.ownerID,
		Amount:    amount,
		Recipient: recipient,
		Note:      note,
		Timestamp: ts,
		Available: s.Ledger.GrandTotal(),
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.deliveries = append([]*Delivery{d}, s.deliveries...)
	if len(s.deliveries) > RecentDeliveriesLimit {
		s.deliveries = s.deliveries[:RecentDeliveriesLimit]
	}
	s.mu.Unlock()

	return d, nil
}
