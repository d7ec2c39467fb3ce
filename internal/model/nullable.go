package model

// Nullable is a field that can be absent, explicitly null, or hold a value.
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

// NewNullable returns a Nullable holding v.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true, Valid: true}
}

// Null returns an explicitly null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Ptr returns the value as a pointer, nil when unset or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
