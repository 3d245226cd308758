package models

import "encoding/json"

// Nullable tracks the three states of a field in a partial update:
// absent (Set == false), explicitly null (Set && Null) and a value.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// NewNullable returns a Nullable holding v.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null returns a Nullable that clears the field.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key
// is present in the document, which is what marks the field as set.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Null = true
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
