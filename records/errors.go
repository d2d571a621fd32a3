package records

import (
	"database/sql"
	"errors"
	"reflect"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors returned by this package.
const (
	TextCodeNotFound      = "RECORD_NOT_FOUND"
	TextCodeFetchFailed   = "STORE_FETCH_FAILED"
	TextCodeWriteFailed   = "STORE_WRITE_FAILED"
	TextCodeInvalidRecord = "INVALID_RECORD"
)

var errNilRecord = errors.New("record is nil")

func fetchError(err error, table string) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "failed to fetch records").
		WithTextCode(TextCodeFetchFailed).
		WithMetadata(map[string]any{"table": table})
}

func writeError(err error, op, table string) error {
	if isNotFound(err) {
		return notFoundError(err, table, "")
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "failed to "+op+" record").
		WithTextCode(TextCodeWriteFailed).
		WithMetadata(map[string]any{"table": table, "operation": op})
}

func notFoundError(err error, table, id string) error {
	meta := map[string]any{"table": table}
	if id != "" {
		meta["id"] = id
	}
	if err == nil {
		return goerrors.New("record not found", goerrors.CategoryNotFound).
			WithTextCode(TextCodeNotFound).
			WithMetadata(meta)
	}
	return goerrors.Wrap(err, goerrors.CategoryNotFound, "record not found").
		WithTextCode(TextCodeNotFound).
		WithMetadata(meta)
}

func validationError(err error, table string) error {
	return goerrors.FromOzzoValidation(err, "invalid "+table+" record").
		WithTextCode(TextCodeInvalidRecord).
		WithMetadata(map[string]any{"table": table})
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || goerrors.IsNotFound(err)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
