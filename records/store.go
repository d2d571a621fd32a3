// Package records persists gym records and turns them into display rows for
// the search layer.
package records

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Store is the persistence boundary for one record type.
type Store[T any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BunStore implements Store over a go-repository-bun repository. Records that
// implement validation.Validatable are validated before every write.
type BunStore[T any] struct {
	repo  repository.Repository[T]
	table string
	order []string
}

var _ Store[any] = (*BunStore[any])(nil)

// BunStoreOption configures a BunStore.
type BunStoreOption func(*bunStoreConfig)

type bunStoreConfig struct {
	order []string
}

// WithOrder sets the ORDER BY expressions used by FetchAll, e.g. "last_name ASC".
func WithOrder(exprs ...string) BunStoreOption {
	return func(c *bunStoreConfig) {
		c.order = append(c.order, exprs...)
	}
}

// NewBunStore wraps repo. table names the store in errors and logs.
func NewBunStore[T any](repo repository.Repository[T], table string, opts ...BunStoreOption) *BunStore[T] {
	cfg := &bunStoreConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &BunStore[T]{repo: repo, table: table, order: cfg.order}
}

// FetchAll returns every record in the configured order.
func (s *BunStore[T]) FetchAll(ctx context.Context) ([]T, error) {
	var criteria []repository.SelectCriteria
	if len(s.order) > 0 {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order(s.order...)
		})
	}

	records, _, err := s.repo.List(ctx, criteria...)
	if err != nil {
		return nil, fetchError(err, s.table)
	}
	return records, nil
}

// Create validates and inserts record.
func (s *BunStore[T]) Create(ctx context.Context, record T) (T, error) {
	if err := s.validate(record); err != nil {
		var zero T
		return zero, err
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		var zero T
		return zero, writeError(err, "create", s.table)
	}
	return created, nil
}

// Update validates record and writes it by primary key.
func (s *BunStore[T]) Update(ctx context.Context, record T) error {
	if err := s.validate(record); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, record); err != nil {
		return writeError(err, "update", s.table)
	}
	return nil
}

// Delete removes the record with id. A missing record is a not found error.
func (s *BunStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		if isNotFound(err) {
			return notFoundError(err, s.table, id.String())
		}
		return fetchError(err, s.table)
	}

	if err := s.repo.Delete(ctx, record); err != nil {
		return writeError(err, "delete", s.table)
	}
	return nil
}

func (s *BunStore[T]) validate(record T) error {
	if isNil(record) {
		return validationError(errNilRecord, s.table)
	}
	v, ok := any(record).(validation.Validatable)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return validationError(err, s.table)
	}
	return nil
}
