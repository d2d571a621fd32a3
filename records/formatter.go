package records

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/gym"
	"github.com/goliatone/go-gym-records/logging"
	"github.com/goliatone/go-gym-records/search"
	"github.com/google/uuid"
)

// Presentation defaults.
const (
	DateLayout  = "02/01/2006"
	MissingDate = "N/A"
	UnknownName = "Unknown"
)

// Formatter reads records from the stores and converts them into display rows.
// It implements search.Formatter.
type Formatter struct {
	admins   Store[*gym.Admin]
	trainers Store[*gym.Trainer]
	members  Store[*gym.Member]
	logger   logging.Logger
}

var _ search.Formatter = (*Formatter)(nil)

// NewFormatter returns a Formatter over the three stores.
func NewFormatter(admins Store[*gym.Admin], trainers Store[*gym.Trainer], members Store[*gym.Member], logger logging.Logger) *Formatter {
	return &Formatter{
		admins:   admins,
		trainers: trainers,
		members:  members,
		logger:   logging.OrNop(logger),
	}
}

// Format fetches every record of kind and returns one row per record, in store order.
// Store errors are returned unchanged. Nil records are skipped.
func (f *Formatter) Format(ctx context.Context, kind search.Kind) ([]search.Row, error) {
	switch kind {
	case search.KindAdmins:
		return formatAll(ctx, f.admins, kind, AdminRow, f.logger)
	case search.KindTrainers:
		return formatAll(ctx, f.trainers, kind, TrainerRow, f.logger)
	case search.KindUsers:
		return formatAll(ctx, f.members, kind, MemberRow, f.logger)
	}
	return nil, goerrors.New("no formatter for kind "+kind.String(), goerrors.CategoryValidation).
		WithTextCode("UNKNOWN_KIND")
}

func formatAll[T any](ctx context.Context, store Store[T], kind search.Kind, toRow func(T) search.Row, logger logging.Logger) ([]search.Row, error) {
	if store == nil {
		return nil, goerrors.New("no store configured", goerrors.CategoryInternal).
			WithMetadata(map[string]any{"kind": kind.String()})
	}

	records, err := store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]search.Row, 0, len(records))
	for i, record := range records {
		if isNil(record) {
			logger.Warn("skipping nil record", logging.Fields{
				"kind":  kind.String(),
				"index": i,
			})
			continue
		}
		rows = append(rows, toRow(record))
	}
	return rows, nil
}

// AdminRow returns [id, username, role, created_at].
func AdminRow(a *gym.Admin) search.Row {
	return search.Row{
		formatID(a.ID),
		textOr(a.Username, UnknownName),
		strings.TrimSpace(a.Role),
		formatDate(a.CreatedAt),
	}
}

// TrainerRow returns [id, full_name, specialty, phone, email, hire_date].
func TrainerRow(t *gym.Trainer) search.Row {
	return search.Row{
		formatID(t.ID),
		textOr(t.FullName(), UnknownName),
		strings.TrimSpace(t.Specialty),
		strings.TrimSpace(t.Phone),
		strings.TrimSpace(t.Email),
		formatDate(t.HireDate),
	}
}

// MemberRow returns [id, full_name, membership, status, join_date].
// A missing status is shown as Active.
func MemberRow(m *gym.Member) search.Row {
	return search.Row{
		formatID(m.ID),
		textOr(m.FullName(), UnknownName),
		strings.TrimSpace(m.Membership),
		textOr(m.Status, gym.StatusActive),
		formatDate(m.JoinDate),
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return MissingDate
	}
	return t.Format(DateLayout)
}

func formatID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func textOr(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}
