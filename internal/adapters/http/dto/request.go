package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/jsamuelsen11/todo-api-stub/internal/domain"
	"github.com/jsamuelsen11/todo-api-stub/internal/domain/todo"
)

const msgTodosArray = "must be a JSON array of todos"

// SaveTodosRequest is the body of POST /api/v1/todos. Both a bare array
//
//	[{"id": 1, "text": "a"}]
//
// and a wrapped form
//
//	{"todos": [{"id": 1, "text": "a"}]}
//
// are accepted. Items are kept as decoded; numbers stay json.Number so they
// are echoed back exactly.
type SaveTodosRequest struct {
	Todos []todo.Item

	present bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SaveTodosRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		items, err := decodeItems(data)
		if err != nil {
			return err
		}
		r.Todos, r.present = items, true
		return nil
	}

	var wrapper struct {
		Todos json.RawMessage `json:"todos"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	raw := bytes.TrimSpace(wrapper.Todos)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '[' {
		return errors.New("todos is not an array")
	}

	items, err := decodeItems(raw)
	if err != nil {
		return err
	}
	r.Todos, r.present = items, true
	return nil
}

// Validate reports a missing or null todo array.
func (r *SaveTodosRequest) Validate() error {
	if !r.present {
		return &domain.ValidationError{Fields: map[string]string{"todos": msgTodosArray}}
	}
	return nil
}

func decodeItems(data []byte) ([]todo.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	items := []todo.Item{}
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
