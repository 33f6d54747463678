package core

import (
	"encoding/json"
	"fmt"
)

// CellState is the resolved, displayable state of one grid cell: either empty
// or occupied by a token value. The tagged form keeps "explicitly emptied"
// distinguishable from a nullable number.
type CellState struct {
	occupied bool
	value    int
}

// Empty returns the empty cell state.
func Empty() CellState {
	return CellState{}
}

// Occupied returns a cell state holding the given token value.
func Occupied(value int) CellState {
	return CellState{occupied: true, value: value}
}

// IsOccupied reports whether the cell holds a token.
func (s CellState) IsOccupied() bool {
	return s.occupied
}

// Value returns the token value and whether the cell is occupied.
func (s CellState) Value() (int, bool) {
	return s.value, s.occupied
}

func (s CellState) String() string {
	if !s.occupied {
		return "Empty"
	}
	return fmt.Sprintf("Occupied(%d)", s.value)
}

// MarshalJSON encodes Empty as null and Occupied(v) as the number v, the wire
// form used by the overlay blob.
func (s CellState) MarshalJSON() ([]byte, error) {
	if !s.occupied {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes the null-or-number blob form.
func (s *CellState) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Empty()
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("core: invalid cell state %q: %w", data, err)
	}
	if v <= 0 {
		return fmt.Errorf("core: invalid token value %d", v)
	}
	*s = Occupied(v)
	return nil
}
