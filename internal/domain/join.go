package domain

import (
	"bytes"
	"encoding/json"
)

// Many holds an embedded relation. The backend returns embedded relations as
// a single object, an array or null depending on join cardinality; Many
// always decodes into a slice so callers never branch on the shape.
type Many[T any] []T

func (m *Many[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*m = items
		return nil
	}
	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return err
	}
	*m = Many[T]{item}
	return nil
}

// Link is a junction row as embedded by the backend: the pair it connects
// is implied by its parent, and Related is the entity on the far side. A
// dangling or filtered relation embeds as null.
type Link[T any] struct {
	Related *T `json:"related"`
}
