package records

import (
	"context"

	"github.com/goliatone/go-gym-records/logging"
	"github.com/goliatone/go-gym-records/search"
	"github.com/google/uuid"
)

// InvalidatingStore decorates a Store and marks kind stale after every
// successful write, so the next read rebuilds from the store. Reads pass through.
type InvalidatingStore[T any] struct {
	base        Store[T]
	kind        search.Kind
	invalidator search.Invalidator
	logger      logging.Logger
}

var _ Store[any] = (*InvalidatingStore[any])(nil)

// NewInvalidatingStore wraps base. A nil logger discards diagnostics.
func NewInvalidatingStore[T any](base Store[T], kind search.Kind, invalidator search.Invalidator, logger logging.Logger) *InvalidatingStore[T] {
	return &InvalidatingStore[T]{
		base:        base,
		kind:        kind,
		invalidator: invalidator,
		logger:      logging.OrNop(logger),
	}
}

// FetchAll reads through to the base store.
func (s *InvalidatingStore[T]) FetchAll(ctx context.Context) ([]T, error) {
	return s.base.FetchAll(ctx)
}

// Create inserts record and invalidates on success.
func (s *InvalidatingStore[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := s.base.Create(ctx, record)
	if err == nil {
		s.invalidateAfter("create")
	}
	return created, err
}

// Update writes record and invalidates on success.
func (s *InvalidatingStore[T]) Update(ctx context.Context, record T) error {
	err := s.base.Update(ctx, record)
	if err == nil {
		s.invalidateAfter("update")
	}
	return err
}

// Delete removes the record and invalidates on success.
func (s *InvalidatingStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.base.Delete(ctx, id)
	if err == nil {
		s.invalidateAfter("delete")
	}
	return err
}

func (s *InvalidatingStore[T]) invalidateAfter(op string) {
	s.invalidator.Invalidate(s.kind)
	s.logger.Debug("cache invalidated after write", logging.Fields{
		"kind":      s.kind.String(),
		"operation": op,
	})
}
