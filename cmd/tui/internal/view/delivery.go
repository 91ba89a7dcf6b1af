package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

// DeliveryModel records cash hand-offs against the live ledger total.
type DeliveryModel struct {
	CommonModel
	session *cash.Session
	printer *locale.Printer

	form *huh.Form

	saving bool
	status string
	err    error
}

func NewDeliveryModel(session *cash.Session, printer *locale.Printer) DeliveryModel {
	m := DeliveryModel{session: session, printer: printer}
	m.form = m.buildForm()

	return m
}

func (m DeliveryModel) Title() string { return "Nakit Teslim" }

func (m DeliveryModel) ShortHelp() string {
	return "Enter/Tab: ilerle | Esc: geri"
}

func (m DeliveryModel) Init() tea.Cmd {
	return m.form.Init()
}

// parseAmount accepts both "1234.50" and "1234,50".
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

// buildForm returns an empty form. Values are read back with GetString since
// the model is copied on every update.
func (m DeliveryModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Tutar (₺)").
				Placeholder("0,00").
				Validate(func(s string) error {
					if _, err := parseAmount(s); err != nil {
						return fmt.Errorf("geçerli bir tutar giriniz")
					}

					return nil
				}),

			huh.NewInput().
				Key("recipient").
				Title("Teslim alan"),

			huh.NewText().
				Key("note").
				Title("Not").
				CharLimit(1000).
				Lines(3),
		),
	).WithWidth(50).WithShowHelp(false)
}

type deliverySavedMsg struct {
	delivery *cash.Delivery
	err      error
}

func (m DeliveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(deliverySavedMsg); ok {
		m.saving = false

		if saved.err != nil {
			m.err = saved.err
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		m.err = nil
		m.status = fmt.Sprintf("%s %s - %s",
			m.printer.Text(locale.DeliverySaved), m.printer.Amount(saved.delivery.Amount), saved.delivery.Recipient)
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	if m.saving {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	amount, _ := parseAmount(m.form.GetString("amount"))
	m.saving = true
	m.status = ""

	return m, m.saveCmd(amount, m.form.GetString("recipient"), m.form.GetString("note"))
}

func (m DeliveryModel) saveCmd(amount decimal.Decimal, recipient, note string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.session.Deliver(ctx, amount, recipient, strings.TrimSpace(note), time.Now())

		return deliverySavedMsg{delivery: d, err: err}
	}
}

func (m DeliveryModel) View() string {
	available := fmt.Sprintf("Mevcut nakit: %s",
		lipgloss.NewStyle().Bold(true).Render(m.printer.Amount(m.session.Ledger.GrandTotal())))

	var recent []string

	for _, d := range m.session.RecentDeliveries() {
		recent = append(recent, fmt.Sprintf("%s  %s  %s",
			FormatDateTime(d.Timestamp), m.printer.Amount(d.Amount), d.Recipient))
	}

	if len(recent) == 0 {
		recent = append(recent, faintStyle.Render("Henüz teslim yok."))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, available, "", m.form.View())

	if m.saving {
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", "Kaydediliyor...")
	}

	if m.err != nil {
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", errorStyle.Render(m.printer.Error(m.err)))
	}

	if m.status != "" {
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", successStyle.Render(m.status))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			append([]string{headerStyle.Render("Son Teslimler"), ""}, recent...)...,
		))

	content := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().PaddingRight(4).Render(left), panel)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, content, "", faintStyle.Render(m.ShortHelp())),
	)
}
