package cash

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Kind separates banknotes from coins.
type Kind string

const (
	KindBanknote Kind = "banknote"
	KindCoin     Kind = "coin"
)

// banknoteThreshold is the smallest face value printed as a banknote.
var banknoteThreshold = decimal.NewFromInt(5)

var ErrUnknownDenomination = errors.New("unknown denomination")

// Classify returns the kind of a face value.
func Classify(value decimal.Decimal) Kind {
	if value.GreaterThanOrEqual(banknoteThreshold) {
		return KindBanknote
	}

	return KindCoin
}

// Denomination is one recognised face value and how many of it were counted.
type Denomination struct {
	ID    string
	Value decimal.Decimal
	Label string
	Kind  Kind
	Count int
}

// LineTotal is value * count, unrounded.
func (d Denomination) LineTotal() decimal.Decimal {
	return d.Value.Mul(decimal.NewFromInt(int64(d.Count)))
}

func newDenomination(value, label string) Denomination {
	v := decimal.RequireFromString(value)

	return Denomination{
		ID:    v.String(),
		Value: v,
		Label: label,
		Kind:  Classify(v),
	}
}

// Ledger holds the counts for one reconciliation cycle. It is owned by a
// single session and is not safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries []Denomination
	index   map[string]int
}

// NewLedger builds a ledger over the given denominations, keeping their order.
func NewLedger(denominations []Denomination) *Ledger {
	l := &Ledger{
		entries: make([]Denomination, len(denominations)),
		index:   make(map[string]int, len(denominations)),
	}

	copy(l.entries, denominations)

	for i, d := range l.entries {
		if d.ID == "" {
			l.entries[i].ID = d.Value.String()
		}

		l.entries[i].Kind = Classify(d.Value)

		if d.Count < 0 {
			l.entries[i].Count = 0
		}

		l.index[l.entries[i].ID] = i
	}

	return l
}

// TurkishLira returns an empty ledger over the Turkish lira notes and coins.
func TurkishLira() *Ledger {
	return NewLedger([]Denomination{
		newDenomination("200", "₺200"),
		newDenomination("100", "₺100"),
		newDenomination("50", "₺50"),
		newDenomination("20", "₺20"),
		newDenomination("10", "₺10"),
		newDenomination("5", "₺5"),
		newDenomination("1", "₺1"),
		newDenomination("0.50", "50 kuruş"),
		newDenomination("0.25", "25 kuruş"),
		newDenomination("0.10", "10 kuruş"),
		newDenomination("0.05", "5 kuruş"),
		newDenomination("0.01", "1 kuruş"),
	})
}

// SetCount replaces the count of one denomination. Negative counts are stored as zero.
func (l *Ledger) SetCount(id string, count int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return ErrUnknownDenomination
	}

	l.entries[i].Count = max(count, 0)

	return nil
}

// Count returns the current count of a denomination.
func (l *Ledger) Count(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return 0
	}

	return l.entries[i].Count
}

// Subtotal sums value * count over the entries of one kind.
func (l *Ledger) Subtotal(kind Kind) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sum := decimal.Zero

	for _, d := range l.entries {
		if d.Kind != kind {
			continue
		}

		sum = sum.Add(d.LineTotal())
	}

	return sum
}

// GrandTotal is the only place totals are rounded, to two decimal places.
func (l *Ledger) GrandTotal() decimal.Decimal {
	return l.Subtotal(KindBanknote).Add(l.Subtotal(KindCoin)).Round(2)
}

// Entries returns a copy of the ledger rows in their fixed order.
func (l *Ledger) Entries() []Denomination {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Denomination, len(l.entries))
	copy(out, l.entries)

	return out
}

// Reset zeroes every count.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		l.entries[i].Count = 0
	}
}

// ParseCount turns raw user input into a count. Anything that is not a
// non-negative integer becomes 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}

	return n
}
