package services

import (
	"errors"
	"fmt"

	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/store"
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrValidation, fmt.Sprintf(format, args...))
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", errs.ErrStore, err)
}

// scopedLookupError hides whether a record is missing or belongs to
// someone else.
func scopedLookupError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return errs.ErrNotFoundOrUnauthorized
	}
	return storeError(err)
}
