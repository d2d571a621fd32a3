package gym

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	_ bun.BeforeAppendModelHook = (*Admin)(nil)
	_ bun.BeforeAppendModelHook = (*Trainer)(nil)
	_ bun.BeforeAppendModelHook = (*Member)(nil)
)

// BeforeAppendModel assigns an id and creation time on insert.
func (a *Admin) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if a.CreatedAt == nil {
			now := time.Now().UTC()
			a.CreatedAt = &now
		}
	}
	return nil
}

// BeforeAppendModel assigns an id on insert.
func (t *Trainer) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeAppendModel assigns an id on insert and defaults the status.
func (m *Member) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		if m.Status == "" {
			m.Status = StatusActive
		}
	}
	return nil
}
