// Package dto provides the JSON bodies of the inbound HTTP adapter and its
// RFC 9457 Problem Details error responses.
package dto

import "github.com/jsamuelsen11/todo-api-stub/internal/domain/todo"

// TodoListResponse is the body of GET /api/v1/todos.
type TodoListResponse struct {
	Todos []todo.Item `json:"todos"`
	Count int         `json:"count"`
}

// SaveResponse is the body of POST /api/v1/todos.
type SaveResponse struct {
	Success bool        `json:"success"`
	Data    []todo.Item `json:"data"`
}

// DeleteResponse is the body of DELETE /api/v1/todos/{id}.
type DeleteResponse struct {
	Success bool    `json:"success"`
	ID      todo.ID `json:"id"`
}

// ToTodoListResponse renders items, writing [] rather than null when items
// is nil.
func ToTodoListResponse(items []todo.Item) TodoListResponse {
	if items == nil {
		items = []todo.Item{}
	}
	return TodoListResponse{Todos: items, Count: len(items)}
}

// ToSaveResponse renders a save result. A nil Data is written as [].
func ToSaveResponse(res *todo.Result) SaveResponse {
	data := res.Data
	if data == nil {
		data = []todo.Item{}
	}
	return SaveResponse{Success: res.Success, Data: data}
}

// ToDeleteResponse renders a delete result.
func ToDeleteResponse(res *todo.Result) DeleteResponse {
	return DeleteResponse{Success: res.Success, ID: res.ID}
}
