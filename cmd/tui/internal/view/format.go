package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const dbTimeout = 5 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// FormatDateTime formats a time.Time into YYYY-MM-DD HH:MM in local time.
func FormatDateTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)
