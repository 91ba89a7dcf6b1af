package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

type historyTab int

const (
	historyCounts historyTab = iota
	historyDeliveries
)

const historyPageSize = 15

// HistoryModel pages through saved counts and deliveries.
type HistoryModel struct {
	CommonModel
	cashService *cash.Service
	printer     *locale.Printer

	tab   historyTab
	page  int
	total int
	table table.Model

	counts  []*cash.Count
	details []*cash.Detail

	loading bool
	err     error
}

func NewHistoryModel(svc *cash.Service, printer *locale.Printer) HistoryModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(historyPageSize),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := HistoryModel{
		cashService: svc,
		printer:     printer,
		page:        1,
		table:       t,
		loading:     true,
	}
	m.setColumns()

	return m
}

func (m HistoryModel) Title() string { return "Geçmiş" }

func (m HistoryModel) ShortHelp() string {
	return "Tab: sayım/teslim | n/p: sayfa | Enter: sayım detayı | Esc: geri"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *HistoryModel) setColumns() {
	m.table.SetRows(nil)

	if m.tab == historyCounts {
		m.table.SetColumns([]table.Column{
			{Title: "Tarih", Width: 17},
			{Title: "Toplam", Width: 14},
			{Title: "Önceki", Width: 14},
			{Title: "Fark", Width: 12},
			{Title: "Not", Width: 30},
		})

		return
	}

	m.table.SetColumns([]table.Column{
		{Title: "Tarih", Width: 17},
		{Title: "Tutar", Width: 14},
		{Title: "Teslim alan", Width: 20},
		{Title: "Not", Width: 30},
	})
}

type historyLoadedMsg struct {
	counts     *cash.CountPage
	deliveries *cash.DeliveryPage
	err        error
}

type detailsLoadedMsg struct {
	details []*cash.Detail
	err     error
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.fillTable(msg)
		}

		return m, nil

	case detailsLoadedMsg:
		m.err = msg.err
		m.details = msg.details

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.details != nil {
				m.details = nil
				return m, nil
			}

			return m, Back
		case "tab":
			m.tab = (m.tab + 1) % 2
			m.page = 1
			m.details = nil
			m.setColumns()
			m.loading = true

			return m, m.loadCmd()
		case "n":
			if m.page*historyPageSize < m.total {
				m.page++
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "p":
			if m.page > 1 {
				m.page--
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "enter":
			if m.tab == historyCounts {
				if idx := m.table.Cursor(); idx >= 0 && idx < len(m.counts) {
					return m, m.loadDetailsCmd(m.counts[idx])
				}
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *HistoryModel) fillTable(msg historyLoadedMsg) {
	var rows []table.Row

	if msg.counts != nil {
		m.total = msg.counts.Total
		m.counts = msg.counts.Items

		for _, c := range msg.counts.Items {
			rows = append(rows, table.Row{
				FormatDateTime(c.Timestamp),
				m.printer.Amount(c.GrandTotal),
				m.printer.Amount(c.PreviousAmount),
				m.printer.Signed(c.Difference),
				c.Note,
			})
		}
	}

	if msg.deliveries != nil {
		m.total = msg.deliveries.Total
		m.counts = nil

		for _, d := range msg.deliveries.Items {
			rows = append(rows, table.Row{
				FormatDateTime(d.Timestamp),
				m.printer.Amount(d.Amount),
				d.Recipient,
				d.Note,
			})
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m HistoryModel) loadCmd() tea.Cmd {
	tab := m.tab
	page := cash.Page{Number: m.page, Size: historyPageSize}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if tab == historyCounts {
			counts, err := m.cashService.CountHistory(ctx, page)
			return historyLoadedMsg{counts: counts, err: err}
		}

		deliveries, err := m.cashService.DeliveryHistory(ctx, page)

		return historyLoadedMsg{deliveries: deliveries, err: err}
	}
}

func (m HistoryModel) loadDetailsCmd(c *cash.Count) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, details, err := m.cashService.CountDetails(ctx, c.ID)

		return detailsLoadedMsg{details: details, err: err}
	}
}

func (m HistoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Yükleniyor...")
	}

	tabs := []string{"Sayımlar", "Teslimler"}
	tabs[m.tab] = activeStyle(tabs[m.tab])

	pages := max((m.total+historyPageSize-1)/historyPageSize, 1)
	header := fmt.Sprintf("%s | %s    Sayfa %d/%d (%d kayıt)", tabs[0], tabs[1], m.page, pages, m.total)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.details != nil {
		lines := []string{headerStyle.Render("Sayım Detayı"), ""}
		for _, d := range m.details {
			lines = append(lines, fmt.Sprintf("%-8s x %-4d %s",
				d.Value.String(), d.Count, m.printer.Amount(d.LineTotal)))
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.err != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", errorStyle.Render(m.printer.Error(m.err)))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, content, "", faintStyle.Render(m.ShortHelp())),
	)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}
