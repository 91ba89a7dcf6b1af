package cash

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state stored with every cash record.
type Status string

const (
	StatusCompleted Status = "completed"
)

// Count is a persisted reconciliation. It is never updated after creation.
type Count struct {
	ID             uuid.UUID
	Timestamp      time.Time
	BanknoteTotal  decimal.Decimal
	CoinTotal      decimal.Decimal
	GrandTotal     decimal.Decimal
	PreviousAmount decimal.Decimal // snapshot of the prior count's grand total
	Difference     decimal.Decimal
	Note           string
	OwnerID        uuid.UUID
	Status         Status
	CreatedAt      time.Time
}

// Detail is one denomination line of a Count.
type Detail struct {
	ID        uuid.UUID
	CountID   uuid.UUID
	Kind      Kind
	Value     decimal.Decimal
	Count     int
	LineTotal decimal.Decimal
}

// Delivery is cash handed off from the till to a recipient.
type Delivery struct {
	ID        uuid.UUID
	Timestamp time.Time
	Amount    decimal.Decimal
	Recipient string
	Note      string
	OwnerID   uuid.UUID
	Status    Status
	CreatedAt time.Time
}

// Page selects one page of a newest-first listing. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}

	if p.Size < 1 {
		p.Size = defaultPageSize
	}

	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}

	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Range filters records by timestamp. Nil bounds are open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

type CountPage struct {
	Items []*Count
	Total int
}

type DeliveryPage struct {
	Items []*Delivery
	Total int
}
