package search

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeFormatPanic marks a Formatter that panicked while building rows.
const TextCodeFormatPanic = "FORMAT_PANIC"

func formatPanicError(kind Kind, recovered any) error {
	return goerrors.New(fmt.Sprintf("formatter panicked: %v", recovered), goerrors.CategoryInternal).
		WithTextCode(TextCodeFormatPanic).
		WithMetadata(map[string]any{"kind": kind.String()})
}
