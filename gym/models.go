// Package gym holds the persisted record types: administrators, trainers and
// members. Each type maps to one table and validates itself before writes.
package gym

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Member statuses accepted by Member.Validate.
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSuspended = "Suspended"
)

// Admin is a staff account with access to the records tool.
type Admin struct {
	bun.BaseModel `bun:"table:admins,alias:a"`

	ID        uuid.UUID  `bun:"id,pk,type:text" json:"id"`
	Username  string     `bun:"username,notnull" json:"username"`
	Role      string     `bun:"role" json:"role"`
	CreatedAt *time.Time `bun:"created_at" json:"created_at,omitempty"`
}

// Validate requires a username and bounds the role length.
func (a Admin) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&a.Role, validation.Length(0, 32)),
	)
}

// Trainer is an instructor employed by the gym.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:t"`

	ID        uuid.UUID  `bun:"id,pk,type:text" json:"id"`
	FirstName string     `bun:"first_name" json:"first_name"`
	LastName  string     `bun:"last_name" json:"last_name"`
	Specialty string     `bun:"specialty" json:"specialty"`
	Phone     string     `bun:"phone" json:"phone"`
	Email     string     `bun:"email" json:"email"`
	HireDate  *time.Time `bun:"hire_date" json:"hire_date,omitempty"`
}

// Validate requires at least one name part and a well formed email when one is set.
func (t Trainer) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.FirstName, validation.Required.When(strings.TrimSpace(t.LastName) == "")),
		validation.Field(&t.Email, is.EmailFormat),
		validation.Field(&t.Phone, validation.Length(0, 32)),
	)
}

// FullName joins the first and last name.
func (t Trainer) FullName() string {
	return joinName(t.FirstName, t.LastName)
}

// Member is a gym customer. The search layer calls them users.
type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	ID         uuid.UUID  `bun:"id,pk,type:text" json:"id"`
	FirstName  string     `bun:"first_name" json:"first_name"`
	LastName   string     `bun:"last_name" json:"last_name"`
	Membership string     `bun:"membership" json:"membership"`
	Status     string     `bun:"status" json:"status"`
	JoinDate   *time.Time `bun:"join_date" json:"join_date,omitempty"`
}

// Validate requires at least one name part and a known status when one is set.
func (m Member) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FirstName, validation.Required.When(strings.TrimSpace(m.LastName) == "")),
		validation.Field(&m.Status, validation.In(StatusActive, StatusInactive, StatusSuspended)),
	)
}

// FullName joins the first and last name.
func (m Member) FullName() string {
	return joinName(m.FirstName, m.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
