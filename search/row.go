package search

import "fmt"

// Row is one formatted, display ready record. Column order is fixed per Kind:
//
//	admins:   id, username, role, created_at
//	trainers: id, full_name, specialty, phone, email, hire_date
//	users:    id, full_name, membership, status, join_date
//
// Rows handed out by the Manager are shared with the cache and must not be modified.
type Row []any

// Strings returns the cells of r in string form.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, cell := range r {
		out[i] = cellString(cell)
	}
	return out
}

func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
