package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskboard-dev/taskboard/internal/errs"
	"github.com/taskboard-dev/taskboard/internal/types"
)

// GetIDParam returns the ":id" path parameter, which must be a UUID.
func GetIDParam(ctx *gin.Context) (string, error) {
	id := ctx.Param("id")

	if id == "" {
		return "", fmt.Errorf("%w: id is required", errs.ErrValidation)
	}

	parsed, err := uuid.Parse(id)

	if err != nil {
		return "", fmt.Errorf("%w: invalid id %q", errs.ErrValidation, id)
	}

	return parsed.String(), nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateOnly}

// ParseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates. A nil
// input yields nil.
func ParseDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*value)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s must be a date (YYYY-MM-DD or RFC 3339)", errs.ErrValidation, field)
}

// ParseNullableDate parses a date sent in an update. Absent and null inputs
// pass through unchanged so the caller can tell "keep" from "clear".
func ParseNullableDate(field string, value types.Nullable[string]) (types.Nullable[time.Time], error) {
	if !value.Valid {
		return types.Nullable[time.Time]{Set: value.Set}, nil
	}

	parsed, err := ParseDate(field, &value.Value)

	if err != nil {
		return types.Nullable[time.Time]{}, err
	}

	return types.Some(*parsed), nil
}
