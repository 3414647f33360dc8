package report

import "encoding/json"

// PerUnit renders a list of per-CPU values as a JSON array, or its single
// aggregate value when not per-unit.
type PerUnit[T any] struct {
	values  []T
	perUnit bool
}

func perUnitOf[T any](values []T, perUnit bool) PerUnit[T] {
	return PerUnit[T]{values: values, perUnit: perUnit}
}

func (p PerUnit[T]) MarshalJSON() ([]byte, error) {
	if p.perUnit {
		if p.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.values)
	}
	if len(p.values) == 0 {
		return []byte("null"), nil
	}

	return json.Marshal(p.values[0])
}
