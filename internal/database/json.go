package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores V in a JSON column. A nil V is stored as SQL NULL.
type JSON[T any] struct {
	V T
}

// NewJSON wraps v.
func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{V: v}
}

// Value implements driver.Valuer.
func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	if string(b) == "null" {
		return nil, nil
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (j *JSON[T]) Scan(src any) error {
	var zero T
	j.V = zero

	var b []byte
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		b = s
	case string:
		b = []byte(s)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &j.V); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSON[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.V)
}
