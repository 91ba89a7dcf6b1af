package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tillbook/internal/encoding"
)

type Repository interface {
	CreateReport(ctx context.Context, r *Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*Report, error)
	ListReports(ctx context.Context, limit int) ([]*Report, error)

	UpsertLowStock(ctx context.Context, item *LowStockItem) error
	ListLowStock(ctx context.Context, limit int) ([]*LowStockItem, error)
}

type Service struct {
	repo  Repository
	files FileStorage
}

func NewService(repo Repository, files FileStorage) *Service {
	return &Service{repo: repo, files: files}
}

type UploadParams struct {
	OwnerID    uuid.UUID
	Name       string
	Date       time.Time
	Category   string
	ItemCount  int
	TotalValue decimal.Decimal
	FileName   string
	File       io.Reader
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	pathUnsafe    = strings.NewReplacer("/", "-", `\`, "-")
)

// storagePath builds reports/<name>-<unix millis>.<ext> with whitespace runs
// in the name collapsed to a dash.
func storagePath(name, fileName string, at time.Time) string {
	base := pathUnsafe.Replace(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-"))

	return fmt.Sprintf("reports/%s-%d%s", base, at.UnixMilli(), strings.ToLower(filepath.Ext(fileName)))
}

// Upload stores the file and then its metadata. If the metadata cannot be
// written the stored file is removed again.
func (s *Service) Upload(ctx context.Context, params UploadParams) (*Report, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" || params.File == nil || params.ItemCount < 0 || params.TotalValue.IsNegative() {
		return nil, ErrInvalidReport
	}

	category := strings.TrimSpace(params.Category)
	if category == "" {
		category = DefaultCategory
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	file := params.File

	// Text reports are stored as UTF-8 whatever the encoding of the upload.
	if encoding.IsText(strings.ToLower(filepath.Ext(params.FileName))) {
		r, err := encoding.NewUTF8Reader(file)
		if err != nil {
			return nil, fmt.Errorf("decoding report file: %w", err)
		}

		file = r
	}

	path := storagePath(name, params.FileName, time.Now())

	if err := s.files.Save(ctx, path, file); err != nil {
		return nil, fmt.Errorf("storing report file: %w", err)
	}

	r := &Report{
		Name:       name,
		Date:       date,
		FilePath:   path,
		FileName:   filepath.Base(params.FileName),
		ItemCount:  params.ItemCount,
		TotalValue: params.TotalValue,
		Category:   category,
		Status:     StatusCompleted,
		OwnerID:    params.OwnerID,
	}

	if err := s.repo.CreateReport(ctx, r); err != nil {
		if rmErr := s.files.Remove(ctx, path); rmErr != nil {
			slog.Error("failed to remove orphaned report file", "path", path, "error", rmErr)
		}

		return nil, fmt.Errorf("saving report: %w", err)
	}

	return r, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*Report, error) {
	return s.repo.ListReports(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return s.repo.GetReport(ctx, id)
}

// Open returns the stored file of a report. The caller closes it.
func (s *Service) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Report, error) {
	r, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if r.FilePath == "" {
		return nil, nil, ErrNotFound
	}

	f, err := s.files.Open(ctx, r.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening report file: %w", err)
	}

	return f, r, nil
}

// Analyze combines a report's totals with the current low-stock list.
func (s *Service) Analyze(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	r, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListLowStock(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing low stock: %w", err)
	}

	return &Analysis{
		Report:     r,
		TotalItems: r.ItemCount,
		TotalValue: r.TotalValue,
		LowStock:   items,
		Categories: summarize(items),
	}, nil
}

func summarize(items []*LowStockItem) []CategorySummary {
	byCategory := make(map[string]*CategorySummary)

	for _, it := range items {
		sum, ok := byCategory[it.Category]
		if !ok {
			sum = &CategorySummary{Category: it.Category}
			byCategory[it.Category] = sum
		}

		sum.Count++
		sum.Shortfall += it.Shortfall()
	}

	out := make([]CategorySummary, 0, len(byCategory))
	for _, sum := range byCategory {
		out = append(out, *sum)
	}

	slices.SortFunc(out, func(a, b CategorySummary) int {
		return strings.Compare(a.Category, b.Category)
	})

	return out
}

type LowStockParams struct {
	ProductName  string
	CurrentStock int
	MinimumStock int
	Category     string
}

// UpsertLowStock records the stock level of a product, keyed by its name.
func (s *Service) UpsertLowStock(ctx context.Context, params LowStockParams) (*LowStockItem, error) {
	name := strings.TrimSpace(params.ProductName)
	if name == "" || params.CurrentStock < 0 || params.MinimumStock < 0 {
		return nil, ErrInvalidReport
	}

	item := &LowStockItem{
		ProductName:  name,
		CurrentStock: params.CurrentStock,
		MinimumStock: params.MinimumStock,
		Category:     strings.TrimSpace(params.Category),
		Status:       StockStatusFor(params.CurrentStock, params.MinimumStock),
	}

	if err := s.repo.UpsertLowStock(ctx, item); err != nil {
		return nil, fmt.Errorf("saving low stock item: %w", err)
	}

	return item, nil
}

// LowStock lists items by ascending current stock. limit <= 0 lists all.
func (s *Service) LowStock(ctx context.Context, limit int) ([]*LowStockItem, error) {
	return s.repo.ListLowStock(ctx, limit)
}
