package reset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/tillbook/internal/cache"
)

type Repository interface {
	DeleteAll(ctx context.Context) error
}

type Service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// ResetAll removes every cash record, report and low-stock item. Stored
// report files are left on disk.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("resetting data: %w", err)
	}

	if err := s.cache.Flush(ctx); err != nil {
		slog.Error("failed to flush cache after reset", "error", err)
	}

	slog.Info("all data was reset")

	return nil
}
