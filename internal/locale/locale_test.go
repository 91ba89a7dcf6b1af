package locale_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.Turkish},
		{"tr-TR,tr;q=0.9", language.Turkish},
		{"en-US,en;q=0.8", language.English},
		{"de-DE", language.Turkish},
		{";;;", language.Turkish},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Match(tt.header))
		})
	}
}

func TestPrinter_Text(t *testing.T) {
	tr := locale.NewPrinter(language.Turkish)
	en := locale.NewPrinter(language.English)

	assert.Equal(t, "Teslim alan kişiyi girin.", tr.Text(locale.MissingRecipient))
	assert.Equal(t, "Enter a recipient.", en.Text(locale.MissingRecipient))
	assert.Equal(t, "Kasa Sayım", tr.Text(locale.CashCountLabel))
}

func TestPrinter_Amount(t *testing.T) {
	tr := locale.NewPrinter(language.Turkish)
	en := locale.NewPrinter(language.English)

	assert.Equal(t, "1.234,50 ₺", tr.Amount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1,234.50 ₺", en.Amount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "+205,00", tr.Signed(decimal.NewFromInt(205)))
	assert.Equal(t, "-12,10", tr.Signed(decimal.RequireFromString("-12.1")))
	assert.Equal(t, "0,00", tr.Signed(decimal.Zero))
}

func TestErrorKey(t *testing.T) {
	tests := []struct {
		err  error
		want locale.Key
	}{
		{cash.ErrInvalidAmount, locale.InvalidAmount},
		{cash.ErrExceedsAvailableCash, locale.ExceedsAvailableCash},
		{fmt.Errorf("wrapped: %w", cash.ErrMissingRecipient), locale.MissingRecipient},
		{cash.ErrNotFound, locale.NotFound},
		{report.ErrNotFound, locale.NotFound},
		{report.ErrInvalidReport, locale.InvalidReport},
		{&cash.PersistenceError{Op: "create", Err: errors.New("pq: connection refused")}, locale.OperationFailed},
		{&cash.PersistenceError{Op: "load latest cash count", Err: errors.New("timeout"), Read: true}, locale.LoadFailed},
		{fmt.Errorf("loading today's cash records: %w", &cash.PersistenceError{Op: "list", Err: errors.New("x"), Read: true}), locale.LoadFailed},
		{errors.New("boom"), locale.OperationFailed},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, locale.ErrorKey(tt.err))
		})
	}
}

func TestPrinter_ErrorHidesCause(t *testing.T) {
	msg := locale.NewPrinter(language.English).Error(&cash.PersistenceError{Op: "create", Err: errors.New("pq: secret detail")})

	assert.NotContains(t, msg, "secret")
}
