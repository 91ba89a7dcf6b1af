package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

type reportResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Date       string          `json:"date"`
	FileName   string          `json:"file_name,omitempty"`
	ItemCount  int             `json:"item_count"`
	TotalValue decimal.Decimal `json:"total_value"`
	Category   string          `json:"category"`
	Status     report.Status   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toReportResponse(r *report.Report) reportResponse {
	return reportResponse{
		ID:         r.ID,
		Name:       r.Name,
		Date:       r.Date.Format(time.DateOnly),
		FileName:   r.FileName,
		ItemCount:  r.ItemCount,
		TotalValue: r.TotalValue,
		Category:   r.Category,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}

func toReportResponses(rs []*report.Report) []reportResponse {
	resp := make([]reportResponse, len(rs))
	for i, r := range rs {
		resp[i] = toReportResponse(r)
	}

	return resp
}

type lowStockResponse struct {
	ID           uuid.UUID          `json:"id"`
	ProductName  string             `json:"product_name"`
	CurrentStock int                `json:"current_stock"`
	MinimumStock int                `json:"minimum_stock"`
	Category     string             `json:"category"`
	Status       report.StockStatus `json:"status"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func toLowStockResponse(it *report.LowStockItem) lowStockResponse {
	return lowStockResponse{
		ID:           it.ID,
		ProductName:  it.ProductName,
		CurrentStock: it.CurrentStock,
		MinimumStock: it.MinimumStock,
		Category:     it.Category,
		Status:       it.Status,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toLowStockResponses(items []*report.LowStockItem) []lowStockResponse {
	resp := make([]lowStockResponse, len(items))
	for i, it := range items {
		resp[i] = toLowStockResponse(it)
	}

	return resp
}

type categoryResponse struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	Shortfall int    `json:"shortfall"`
}

type analysisResponse struct {
	Report     reportResponse     `json:"report"`
	TotalItems int                `json:"total_items"`
	TotalValue decimal.Decimal    `json:"total_value"`
	LowStock   []lowStockResponse `json:"low_stock_items"`
	Categories []categoryResponse `json:"category_breakdown"`
}

func toAnalysisResponse(a *report.Analysis) analysisResponse {
	cats := make([]categoryResponse, len(a.Categories))
	for i, c := range a.Categories {
		cats[i] = categoryResponse{Category: c.Category, Count: c.Count, Shortfall: c.Shortfall}
	}

	return analysisResponse{
		Report:     toReportResponse(a.Report),
		TotalItems: a.TotalItems,
		TotalValue: a.TotalValue,
		LowStock:   toLowStockResponses(a.LowStock),
		Categories: cats,
	}
}
