package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

// CountModel edits the session ledger one denomination per row and saves it
// as a reconciliation.
type CountModel struct {
	CommonModel
	session *cash.Session
	printer *locale.Printer

	denominations []cash.Denomination
	inputs        []textinput.Model
	note          textinput.Model
	focus         int

	saving  bool
	spinner spinner.Model
	status  string
	err     error
}

func NewCountModel(session *cash.Session, printer *locale.Printer) CountModel {
	entries := session.Ledger.Entries()

	inputs := make([]textinput.Model, len(entries))
	for i, e := range entries {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 6
		ti.Width = 8
		ti.Prompt = fmt.Sprintf("%-10s ", e.Label)
		ti.Validate = digitsOnly

		if e.Count > 0 {
			ti.SetValue(strconv.Itoa(e.Count))
		}

		inputs[i] = ti
	}

	note := textinput.New()
	note.Placeholder = "Not (isteğe bağlı)"
	note.CharLimit = 1000
	note.Width = 40
	note.Prompt = "Not:       "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := CountModel{
		session:       session,
		printer:       printer,
		denominations: entries,
		inputs:        inputs,
		note:          note,
		spinner:       s,
	}

	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	return m
}

var errNotDigits = errors.New("yalnızca rakam girilebilir")

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return errNotDigits
		}
	}

	return nil
}

func (m CountModel) Title() string { return "Kasa Sayımı" }

func (m CountModel) ShortHelp() string {
	return "↑/↓: geçiş | ctrl+s: kaydet | ctrl+r: sıfırla | Esc: geri"
}

func (m CountModel) Init() tea.Cmd {
	return textinput.Blink
}

type countSavedMsg struct {
	result *cash.ReconcileResult
	err    error
}

func (m CountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countSavedMsg:
		m.saving = false

		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.note.SetValue("")

		if msg.result.Complete() {
			m.status = m.printer.Text(locale.CountSaved)
		} else {
			m.status = m.printer.Text(locale.DetailsNotSaved)
		}

		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "up", "shift+tab":
			return m, m.setFocus(m.focus - 1)
		case "down", "tab", "enter":
			return m, m.setFocus(m.focus + 1)
		case "ctrl+r":
			m.session.Ledger.Reset()

			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}

			m.status = ""

			return m, nil
		case "ctrl+s":
			m.saving = true
			m.status = ""

			return m, tea.Batch(m.spinner.Tick, m.saveCmd(m.note.Value()))
		}
	}

	if m.saving {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

		id := m.denominations[m.focus].ID
		if err := m.session.Ledger.SetCount(id, cash.ParseCount(m.inputs[m.focus].Value())); err != nil {
			m.err = err
		}
	} else {
		m.note, cmd = m.note.Update(msg)
	}

	return m, cmd
}

// setFocus moves focus between the denomination rows and the note field,
// wrapping at both ends.
func (m *CountModel) setFocus(i int) tea.Cmd {
	total := len(m.inputs) + 1
	m.focus = (i + total) % total

	for j := range m.inputs {
		m.inputs[j].Blur()
	}

	m.note.Blur()

	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}

	return m.note.Focus()
}

func (m CountModel) saveCmd(note string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.session.Reconcile(ctx, strings.TrimSpace(note), time.Now())

		return countSavedMsg{result: result, err: err}
	}
}

func (m CountModel) View() string {
	var banknotes, coins []string

	for i, d := range m.session.Ledger.Entries() {
		row := fmt.Sprintf("%s  %s", m.inputs[i].View(), faintStyle.Render(m.printer.Amount(d.LineTotal())))

		if d.Kind == cash.KindBanknote {
			banknotes = append(banknotes, row)
		} else {
			coins = append(coins, row)
		}
	}

	ledger := m.session.Ledger

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(4).Render(lipgloss.JoinVertical(lipgloss.Left,
			append([]string{headerStyle.Render("Banknotlar"), ""}, banknotes...)...,
		)),
		lipgloss.JoinVertical(lipgloss.Left,
			append([]string{headerStyle.Render("Madeni Paralar"), ""}, coins...)...,
		),
	)

	totals := fmt.Sprintf(
		"Banknot toplamı:  %s\nMadeni toplamı:   %s\nGenel toplam:     %s\nÖnceki bakiye:    %s\nFark:             %s",
		m.printer.Amount(ledger.Subtotal(cash.KindBanknote)),
		m.printer.Amount(ledger.Subtotal(cash.KindCoin)),
		lipgloss.NewStyle().Bold(true).Render(m.printer.Amount(ledger.GrandTotal())),
		m.printer.Amount(m.session.PreviousBalance()),
		m.printer.Signed(m.session.Difference()),
	)

	parts := []string{columns, "", m.note.View(), "", totals}

	switch {
	case m.saving:
		parts = append(parts, "", m.spinner.View()+" Kaydediliyor...")
	case m.err != nil:
		parts = append(parts, "", errorStyle.Render(m.printer.Error(m.err)))
	case m.status != "":
		parts = append(parts, "", successStyle.Render(m.status))
	}

	parts = append(parts, "", faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
