package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	"github.com/MrJamesThe3rd/tillbook/internal/export"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

const defaultExportDir = "./exports"

type ExportModel struct {
	CommonModel
	exportService *export.Service
	printer       *locale.Printer

	state  exportState
	err    error
	preset *string
	form   *huh.Form

	spinner spinner.Model
	summary string
	file    string
}

func NewExportModel(svc *export.Service, printer *locale.Printer) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	preset := presetThisMonth

	return ExportModel{
		exportService: svc,
		printer:       printer,
		state:         exportStateForm,
		preset:        &preset,
		form:          buildRangeForm(&preset),
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Dışa Aktar" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: menüye dön"
	case exportStateExporting:
		return "Aktarılıyor..."
	}
	return "Esc: geri | Enter: onayla"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	r, err := selectedRange(m.form, time.Now())
	if err != nil {
		m.state = exportStateResult
		m.err = err
		return m, nil
	}

	path := strings.TrimSpace(m.form.GetString("path"))
	if path == "" {
		path = defaultExportDir
	}

	m.state = exportStateExporting
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(r, path))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		if result.err != nil {
			m.err = result.err
		}
		m.summary = result.body
		m.file = result.file
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}
	return m, nil
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Kasa kayıtları Excel dosyasına aktarılıyor...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		text := m.printer.Error(m.err)
		if errors.Is(m.err, errRangeOrder) {
			text = m.err.Error()
		}

		return lipgloss.NewStyle().Padding(1).Render(errorStyle.Render(text))
	}

	header := successStyle.Bold(true).Render("Aktarım tamamlandı: " + m.file)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Özet:",
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	file string
	body string
	err  error
}

const exportTimeout = 30 * time.Second

func (m ExportModel) runExportCmd(r cash.Range, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		items, err := m.exportService.Export(ctx, r)
		if err != nil {
			return exportResultMsg{err: err}
		}

		file, err := m.exportService.SaveWorkbook(items, path, time.Now())
		if err != nil {
			return exportResultMsg{err: err}
		}

		body := m.exportService.GenerateSummary(m.printer, items)
		return exportResultMsg{file: file, body: body}
	}
}
