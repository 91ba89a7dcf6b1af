package main

import (
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tillbook/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/tillbook/internal/cash"
	cashStore "github.com/MrJamesThe3rd/tillbook/internal/cash/store"
	"github.com/MrJamesThe3rd/tillbook/internal/config"
	"github.com/MrJamesThe3rd/tillbook/internal/database"
	"github.com/MrJamesThe3rd/tillbook/internal/export"
	"github.com/MrJamesThe3rd/tillbook/internal/locale"
)

type model struct {
	cashService   *cash.Service
	exportService *export.Service
	session       *cash.Session
	printer       *locale.Printer

	currentView View

	countView    view.CountModel
	deliveryView view.DeliveryModel
	historyView  view.HistoryModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewCount    View = 1
	ViewDelivery View = 2
	ViewHistory  View = 3
	ViewExport   View = 4
)

// terminalLanguage turns LANG (e.g. tr_TR.UTF-8) into a language tag string.
func terminalLanguage() string {
	lang, _, _ := strings.Cut(os.Getenv("LANG"), ".")
	return strings.ReplaceAll(lang, "_", "-")
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ownerID, err := uuid.Parse(cfg.App.OwnerID)
	if err != nil {
		slog.Error("invalid OWNER_ID", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(db, cfg.DB.Name); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	cashSvc := cash.NewService(cashStore.New(db))
	expSvc := export.NewService(cashSvc)
	printer := locale.NewPrinter(locale.Match(terminalLanguage()))

	session := cash.NewSession(cashSvc, ownerID, cash.TurkishLira())

	ctx, cancel := view.DbCtx()
	defer cancel()

	if err := session.Start(ctx); err != nil {
		slog.Error("failed to load previous balance", "error", err)
		os.Exit(1)
	}

	return model{
		cashService:   cashSvc,
		exportService: expSvc,
		session:       session,
		printer:       printer,
		currentView:   ViewMenu,
		countView:     view.NewCountModel(session, printer),
		deliveryView:  view.NewDeliveryModel(session, printer),
		historyView:   view.NewHistoryModel(cashSvc, printer),
		exportView:    view.NewExportModel(expSvc, printer),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCount
				m.countView = view.NewCountModel(m.session, m.printer)

				return m, m.countView.Init()
			case "2":
				m.currentView = ViewDelivery
				m.deliveryView = view.NewDeliveryModel(m.session, m.printer)

				return m, m.deliveryView.Init()
			case "3":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.cashService, m.printer)

				return m, m.historyView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.printer)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCount:
		var newModel tea.Model
		newModel, cmd = m.countView.Update(msg)
		m.countView = newModel.(view.CountModel)
	case ViewDelivery:
		var newModel tea.Model
		newModel, cmd = m.deliveryView.Update(msg)
		m.deliveryView = newModel.(view.DeliveryModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tillbook\n\n" +
				"Kasa: " + m.printer.Amount(m.session.Ledger.GrandTotal()) +
				"  |  Önceki bakiye: " + m.printer.Amount(m.session.PreviousBalance()) + "\n\n" +
				"1. Kasa Sayımı\n" +
				"2. Nakit Teslim\n" +
				"3. Geçmiş\n" +
				"4. Dışa Aktar\n\n" +
				"q. Çıkış",
		)
	case ViewCount:
		return m.countView.View()
	case ViewDelivery:
		return m.deliveryView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
