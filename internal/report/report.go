package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompleted Status = "completed"
)

// DefaultCategory is used when an upload names no category.
const DefaultCategory = "monthly"

// Report is the metadata of one uploaded inventory file.
type Report struct {
	ID         uuid.UUID
	Name       string
	Date       time.Time
	FilePath   string
	FileName   string
	ItemCount  int
	TotalValue decimal.Decimal
	Category   string
	Status     Status
	OwnerID    uuid.UUID
	CreatedAt  time.Time
}

type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
)

// StockStatusFor is critical when stock has fallen to half the minimum or below.
func StockStatusFor(current, minimum int) StockStatus {
	if current*2 <= minimum {
		return StockCritical
	}

	return StockLow
}

// LowStockItem is a product whose stock is tracked against a minimum. The
// product name is unique.
type LowStockItem struct {
	ID           uuid.UUID
	ProductName  string
	CurrentStock int
	MinimumStock int
	Category     string
	Status       StockStatus
	UpdatedAt    time.Time
}

// Shortfall is how many units are missing to reach the minimum.
func (i *LowStockItem) Shortfall() int {
	return max(i.MinimumStock-i.CurrentStock, 0)
}

type CategorySummary struct {
	Category  string
	Count     int
	Shortfall int
}

type Analysis struct {
	Report     *Report
	TotalItems int
	TotalValue decimal.Decimal
	LowStock   []*LowStockItem
	Categories []CategorySummary
}
