package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-api-stub/internal/domain/todo"
)

// TodoClient defines the client port for the remote todo API.
// Implemented by the stub adapter; called by the HTTP handlers.
//
// Every method suspends for the client's simulated latency before returning.
// Failures surface as the fixed domain sentinels (domain.ErrFetchFailed,
// domain.ErrSaveFailed, domain.ErrDeleteFailed) with no cause attached.
type TodoClient interface {
	// List returns the todos held by the remote API.
	List(ctx context.Context) ([]todo.Item, error)

	// Save sends items to the remote API and returns them unchanged
	// in the result's Data field.
	Save(ctx context.Context, items []todo.Item) (*todo.Result, error)

	// Delete removes the todo named by id and echoes id in the result.
	Delete(ctx context.Context, id todo.ID) (*todo.Result, error)
}
