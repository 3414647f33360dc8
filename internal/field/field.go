// Package field provides optional value types whose JSON form encodes the
// absence policy of the report they belong to. A zero value is absent.
package field

import "encoding/json"

// UnknownText is the placeholder rendered for an absent OrUnknown value.
const UnknownText = "Unknown"

// OrUnknown holds a value that renders as the string "Unknown" when absent.
type OrUnknown[T any] struct {
	value T
	ok    bool
}

// Known wraps a present value.
func Known[T any](v T) OrUnknown[T] {
	return OrUnknown[T]{value: v, ok: true}
}

// KnownIf wraps v, marking it absent when ok is false.
func KnownIf[T any](v T, ok bool) OrUnknown[T] {
	return OrUnknown[T]{value: v, ok: ok}
}

// Get returns the value and whether it is present.
func (o OrUnknown[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o OrUnknown[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return json.Marshal(UnknownText)
	}
	return json.Marshal(o.value)
}

// OrNull holds a value that renders as JSON null when absent.
type OrNull[T any] struct {
	value T
	ok    bool
}

// Present wraps a present value.
func Present[T any](v T) OrNull[T] {
	return OrNull[T]{value: v, ok: true}
}

// FromPtr converts a nil-able pointer.
func FromPtr[T any](p *T) OrNull[T] {
	if p == nil {
		return OrNull[T]{}
	}
	return Present(*p)
}

// Get returns the value and whether it is present.
func (o OrNull[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o OrNull[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
