package search

import (
	"context"
	"strings"
)

// Service is the read entry point used by presentation code. It routes every
// request through the Manager so callers never touch the record store directly.
type Service struct {
	manager *Manager
}

// NewService returns a Service reading through manager.
func NewService(manager *Manager) *Service {
	return &Service{manager: manager}
}

// FilterData returns the rows of kind matching query. An empty or whitespace
// only query returns every row.
func (s *Service) FilterData(ctx context.Context, kind Kind, query string) []Row {
	if strings.TrimSpace(query) == "" {
		return s.manager.BaseRows(ctx, kind)
	}
	return s.manager.Filtered(ctx, kind, query)
}

// Invalidate forwards to the Manager. Call it after every successful write.
func (s *Service) Invalidate(kind Kind) {
	s.manager.Invalidate(kind)
}

// InvalidateAll marks every kind stale.
func (s *Service) InvalidateAll() {
	s.manager.InvalidateAll()
}

// Admins returns all admin rows.
func (s *Service) Admins(ctx context.Context) []Row {
	return s.manager.BaseRows(ctx, KindAdmins)
}

// Trainers returns all trainer rows.
func (s *Service) Trainers(ctx context.Context) []Row {
	return s.manager.BaseRows(ctx, KindTrainers)
}

// Users returns all member rows.
func (s *Service) Users(ctx context.Context) []Row {
	return s.manager.BaseRows(ctx, KindUsers)
}

// Stats exposes the Manager counters.
func (s *Service) Stats() map[Kind]KindStats {
	return s.manager.Stats()
}

var (
	_ Invalidator = (*Manager)(nil)
	_ Invalidator = (*Service)(nil)
)
