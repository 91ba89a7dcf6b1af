// Package locale turns domain outcomes into short user-facing text. Turkish
// is the default language; English is available through Accept-Language.
package locale

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

// Key identifies a catalog message.
type Key string

const (
	InvalidAmount        Key = "invalid_amount"
	ExceedsAvailableCash Key = "exceeds_available_cash"
	MissingRecipient     Key = "missing_recipient"
	OperationFailed      Key = "operation_failed"
	LoadFailed           Key = "load_failed"
	NotFound             Key = "not_found"
	InvalidRequest       Key = "invalid_request"
	InvalidOwner         Key = "invalid_owner"
	InvalidReport        Key = "invalid_report"
	CountSaved           Key = "count_saved"
	DetailsNotSaved      Key = "details_not_saved"
	DeliverySaved        Key = "delivery_saved"
	DataReset            Key = "data_reset"
	CashCountLabel       Key = "cash_count"
	CashDeliveryLabel    Key = "cash_delivery"
	DifferenceLabel      Key = "difference"
)

var messages = map[Key][2]string{
	InvalidAmount:        {"Geçerli bir miktar girin.", "Enter a valid amount."},
	ExceedsAvailableCash: {"Teslim edilecek miktar kasadaki nakitten fazla olamaz.", "The amount cannot exceed the cash in the till."},
	MissingRecipient:     {"Teslim alan kişiyi girin.", "Enter a recipient."},
	OperationFailed:      {"İşlem başarısız oldu. Lütfen tekrar deneyin.", "The operation failed. Please try again."},
	LoadFailed:           {"Veriler yüklenemedi.", "Could not load data."},
	NotFound:             {"Kayıt bulunamadı.", "Record not found."},
	InvalidRequest:       {"Geçersiz istek.", "Invalid request."},
	InvalidOwner:         {"Geçersiz kullanıcı kimliği.", "Invalid owner id."},
	InvalidReport:        {"Rapor adı gerekli.", "A report name is required."},
	CountSaved:           {"Kasa sayımı kaydedildi.", "Cash count saved."},
	DetailsNotSaved:      {"Sayım kaydedildi ancak para detayları kaydedilemedi.", "The count was saved but its denomination details were not."},
	DeliverySaved:        {"Nakit teslimi kaydedildi.", "Cash delivery saved."},
	DataReset:            {"Tüm veriler başarıyla sıfırlandı.", "All data was reset."},
	CashCountLabel:       {"Kasa Sayım", "Cash Count"},
	CashDeliveryLabel:    {"Nakit Teslim", "Cash Delivery"},
	DifferenceLabel:      {"fark", "difference"},
}

var (
	supported = []language.Tag{language.Turkish, language.English}
	matcher   = language.NewMatcher(supported)
	cat       = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))

	for key, msg := range messages {
		_ = b.SetString(language.Turkish, string(key), msg[0])
		_ = b.SetString(language.English, string(key), msg[1])
	}

	return b
}

// Match picks the supported language for an Accept-Language header value.
// Empty or unparseable input yields Turkish.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.Turkish
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Turkish
	}

	return supported[idx]
}

type Printer struct {
	p *message.Printer
}

func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag, message.Catalog(cat))}
}

func (p *Printer) Text(key Key) string {
	return p.p.Sprintf(string(key))
}

// Amount formats money with two decimals, local grouping and the lira sign.
func (p *Printer) Amount(d decimal.Decimal) string {
	return p.p.Sprintf("%.2f ₺", d.Round(2).InexactFloat64())
}

// Signed is Amount without the currency sign and with an explicit + for positive values.
func (p *Printer) Signed(d decimal.Decimal) string {
	s := p.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
	if d.Round(2).IsPositive() {
		return "+" + s
	}

	return s
}

// ErrorKey maps an error to the message a user should see. Unknown errors
// map to the generic failure message.
func ErrorKey(err error) Key {
	var verr *cash.ValidationError
	if errors.As(err, &verr) {
		switch verr.Code {
		case cash.CodeInvalidAmount:
			return InvalidAmount
		case cash.CodeExceedsAvailableCash:
			return ExceedsAvailableCash
		case cash.CodeMissingRecipient:
			return MissingRecipient
		}
	}

	switch {
	case errors.Is(err, cash.ErrNotFound), errors.Is(err, report.ErrNotFound):
		return NotFound
	case errors.Is(err, report.ErrInvalidReport):
		return InvalidReport
	case errors.Is(err, cash.ErrLoad):
		return LoadFailed
	}

	return OperationFailed
}

func (p *Printer) Error(err error) string {
	return p.Text(ErrorKey(err))
}
