package types

import (
	"bytes"
	"encoding/json"
)

// Nullable records whether a JSON field was sent at all, and if so whether
// it was null. Set is false when the key is absent; Valid is false for null.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func Some[T any](value T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: value}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	var zero T

	n.Set = true
	n.Valid = false
	n.Value = zero

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}

	n.Valid = true
	return nil
}

// Ptr returns nil unless a value was sent.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}

	value := n.Value
	return &value
}
