package cash

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
)

type denominationResponse struct {
	ID    string          `json:"id"`
	Value decimal.Decimal `json:"value"`
	Label string          `json:"label"`
	Kind  cash.Kind       `json:"kind"`
	Count int             `json:"count"`
}

type ledgerResponse struct {
	Denominations  []denominationResponse `json:"denominations"`
	BanknoteTotal  decimal.Decimal        `json:"banknote_total"`
	CoinTotal      decimal.Decimal        `json:"coin_total"`
	GrandTotal     decimal.Decimal        `json:"grand_total"`
	PreviousAmount decimal.Decimal        `json:"previous_amount"`
	Difference     decimal.Decimal        `json:"difference"`
}

func toLedgerResponse(l *cash.Ledger, previous decimal.Decimal) ledgerResponse {
	entries := l.Entries()

	resp := ledgerResponse{
		Denominations:  make([]denominationResponse, len(entries)),
		BanknoteTotal:  l.Subtotal(cash.KindBanknote),
		CoinTotal:      l.Subtotal(cash.KindCoin),
		GrandTotal:     l.GrandTotal(),
		PreviousAmount: previous,
		Difference:     l.GrandTotal().Sub(previous),
	}

	for i, e := range entries {
		resp.Denominations[i] = denominationResponse{
			ID:    e.ID,
			Value: e.Value,
			Label: e.Label,
			Kind:  e.Kind,
			Count: e.Count,
		}
	}

	return resp
}

type countResponse struct {
	ID             uuid.UUID       `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	BanknoteTotal  decimal.Decimal `json:"banknote_total"`
	CoinTotal      decimal.Decimal `json:"coin_total"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	Difference     decimal.Decimal `json:"difference"`
	Note           string          `json:"note,omitempty"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	Status         cash.Status     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toCountResponse(c *cash.Count) countResponse {
	return countResponse{
		ID:             c.ID,
		Timestamp:      c.Timestamp,
		BanknoteTotal:  c.BanknoteTotal,
		CoinTotal:      c.CoinTotal,
		GrandTotal:     c.GrandTotal,
		PreviousAmount: c.PreviousAmount,
		Difference:     c.Difference,
		Note:           c.Note,
		OwnerID:        c.OwnerID,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
	}
}

type detailResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      cash.Kind       `json:"denomination_kind"`
	Value     decimal.Decimal `json:"value"`
	Count     int             `json:"count"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func toDetailResponses(details []*cash.Detail) []detailResponse {
	resp := make([]detailResponse, len(details))
	for i, d := range details {
		resp[i] = detailResponse{
			ID:        d.ID,
			Kind:      d.Kind,
			Value:     d.Value,
			Count:     d.Count,
			LineTotal: d.LineTotal,
		}
	}

	return resp
}

type reconcileResponse struct {
	Count    countResponse    `json:"count"`
	Details  []detailResponse `json:"details"`
	Complete bool             `json:"complete"`
	Message  string           `json:"message"`
}

type countDetailsResponse struct {
	Count   countResponse    `json:"count"`
	Details []detailResponse `json:"details"`
}

type deliveryResponse struct {
	ID        uuid.UUID       `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
	Note      string          `json:"note,omitempty"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Status    cash.Status     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func toDeliveryResponse(d *cash.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:        d.ID,
		Timestamp: d.Timestamp,
		Amount:    d.Amount,
		Recipient: d.Recipient,
		Note:      d.Note,
		OwnerID:   d.OwnerID,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func toDeliveryResponses(ds []*cash.Delivery) []deliveryResponse {
	resp := make([]deliveryResponse, len(ds))
	for i, d := range ds {
		resp[i] = toDeliveryResponse(d)
	}

	return resp
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}
