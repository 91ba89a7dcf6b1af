package view

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/tillbook/internal/cash"
)

const (
	presetToday     = "today"
	presetYesterday = "yesterday"
	presetThisWeek  = "this_week"
	presetThisMonth = "this_month"
	presetLastMonth = "last_month"
	presetAll       = "all"
	presetCustom    = "custom"
)

var presetOptions = []huh.Option[string]{
	huh.NewOption("Bugün", presetToday),
	huh.NewOption("Dün", presetYesterday),
	huh.NewOption("Bu hafta", presetThisWeek),
	huh.NewOption("Bu ay", presetThisMonth),
	huh.NewOption("Geçen ay", presetLastMonth),
	huh.NewOption("Tüm kayıtlar", presetAll),
	huh.NewOption("Tarih aralığı gir", presetCustom),
}

var (
	errBadDate    = errors.New("tarih YYYY-AA-GG biçiminde olmalı")
	errRangeOrder = errors.New("bitiş tarihi başlangıçtan önce olamaz")
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayRange covers first through last as whole days in their own location.
func dayRange(first, last time.Time) cash.Range {
	start := startOfDay(first)
	end := startOfDay(last).AddDate(0, 0, 1).Add(-time.Nanosecond)

	return cash.Range{Start: &start, End: &end}
}

// presetRange resolves a preset relative to now. Weeks start on Monday.
// presetAll and unknown presets yield an unbounded range.
func presetRange(preset string, now time.Time) cash.Range {
	today := startOfDay(now)

	switch preset {
	case presetToday:
		return dayRange(today, today)
	case presetYesterday:
		y := today.AddDate(0, 0, -1)
		return dayRange(y, y)
	case presetThisWeek:
		monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return dayRange(monday, today)
	case presetThisMonth:
		first := today.AddDate(0, 0, 1-today.Day())
		return dayRange(first, today)
	case presetLastMonth:
		first := today.AddDate(0, 0, 1-today.Day())
		return dayRange(first.AddDate(0, -1, 0), first.AddDate(0, 0, -1))
	}

	return cash.Range{}
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, errBadDate
	}

	return t, nil
}

// customRange parses two inclusive YYYY-MM-DD dates in loc.
func customRange(from, to string, loc *time.Location) (cash.Range, error) {
	first, err := parseDay(from, loc)
	if err != nil {
		return cash.Range{}, err
	}

	last, err := parseDay(to, loc)
	if err != nil {
		return cash.Range{}, err
	}

	if last.Before(first) {
		return cash.Range{}, errRangeOrder
	}

	return dayRange(first, last), nil
}

func validDay(s string) error {
	_, err := parseDay(s, time.Local)
	return err
}

// buildRangeForm asks for a preset and, for presetCustom only, the two dates.
// preset must outlive model copies since the hide func reads it.
func buildRangeForm(preset *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("preset").
				Title("Zaman aralığı").
				Options(presetOptions...).
				Value(preset),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("from").
				Title("Başlangıç").
				Placeholder("2026-01-31").
				Validate(validDay),
			huh.NewInput().
				Key("to").
				Title("Bitiş").
				Placeholder("2026-01-31").
				Validate(validDay),
		).WithHideFunc(func() bool { return *preset != presetCustom }),
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Çıktı klasörü").
				Description("Klasör yoksa oluşturulur").
				Placeholder(defaultExportDir),
		),
	).WithWidth(50).WithShowHelp(false)
}

// selectedRange reads the completed form back into a cash.Range.
func selectedRange(form *huh.Form, now time.Time) (cash.Range, error) {
	preset := form.GetString("preset")
	if preset != presetCustom {
		return presetRange(preset, now), nil
	}

	return customRange(form.GetString("from"), form.GetString("to"), now.Location())
}
