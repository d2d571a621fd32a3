package search

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Kind identifies an entity category and therefore a cache partition.
type Kind int

const (
	// KindAdmins covers administrator accounts.
	KindAdmins Kind = iota
	// KindTrainers covers gym trainers.
	KindTrainers
	// KindUsers covers gym members.
	KindUsers
)

// Kinds lists every entity kind in display order.
var Kinds = []Kind{KindAdmins, KindTrainers, KindUsers}

// String returns the plural kind name, or "unknown".
func (k Kind) String() string {
	switch k {
	case KindAdmins:
		return "admins"
	case KindTrainers:
		return "trainers"
	case KindUsers:
		return "users"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindAdmins && k <= KindUsers
}

// ParseKind resolves a kind from its name. Matching ignores case and
// surrounding space, and accepts singular forms and "members" for users.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "admins", "admin":
		return KindAdmins, nil
	case "trainers", "trainer":
		return KindTrainers, nil
	case "users", "user", "members", "member":
		return KindUsers, nil
	}

	return 0, goerrors.New("unknown entity kind: "+name, goerrors.CategoryValidation).
		WithTextCode("UNKNOWN_KIND").
		WithMetadata(map[string]any{"kind": name})
}
