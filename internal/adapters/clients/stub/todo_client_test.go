package stub_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-api-stub/internal/adapters/clients/stub"
	"github.com/jsamuelsen11/todo-api-stub/internal/domain"
	"github.com/jsamuelsen11/todo-api-stub/internal/domain/todo"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/config"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/latency"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/logging"
)

func testConfig(delay time.Duration) config.StubConfig {
	return config.StubConfig{BaseURL: config.DefaultStubBaseURL, Delay: delay}
}

func newZeroClient() *stub.TodoClient {
	return stub.NewTodoClient(testConfig(300*time.Millisecond), latency.Zero(), nil, logging.Discard())
}

// failingSleeper fails every wait with cause.
func failingSleeper(cause error) latency.Sleeper {
	return latency.Func(func(context.Context, time.Duration) error {
		return cause
	})
}

func newLoggedClient(sleeper latency.Sleeper) (*stub.TodoClient, *bytes.Buffer) {
	var buf bytes.Buffer
	client := stub.NewTodoClient(testConfig(300*time.Millisecond), sleeper, nil, logging.New("info", "json", &buf))
	return client, &buf
}

func TestNewTodoClient_Defaults(t *testing.T) {
	t.Parallel()

	client := stub.NewTodoClient(testConfig(150*time.Millisecond), nil, nil, nil)

	assert.Equal(t, config.DefaultStubBaseURL, client.BaseURL())
	assert.Equal(t, 150*time.Millisecond, client.Delay())
	assert.Equal(t, stub.ServiceName, client.Name())
}

func TestList_ReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	items, err := newZeroClient().List(context.Background())

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSave_EchoesItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []todo.Item
	}{
		{name: "single map item", items: []todo.Item{map[string]any{"id": 1, "text": "a"}}},
		{name: "mixed values", items: []todo.Item{"buy milk", 7, nil, []any{true}}},
		{name: "empty", items: []todo.Item{}},
		{name: "nil", items: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := newZeroClient().Save(context.Background(), tt.items)
			require.NoError(t, err)

			want := &todo.Result{Success: true, Data: tt.items}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Errorf("Save() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSave_SharesBackingArray(t *testing.T) {
	t.Parallel()

	items := []todo.Item{"a", "b"}

	res, err := newZeroClient().Save(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)

	assert.Same(t, &items[0], &res.Data[0])
}

func TestDelete_EchoesID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   todo.ID
	}{
		{name: "int", id: 42},
		{name: "string", id: "abc-123"},
		{name: "float from json", id: float64(7)},
		{name: "nil", id: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := newZeroClient().Delete(context.Background(), tt.id)
			require.NoError(t, err)

			want := &todo.Result{Success: true, ID: tt.id}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Errorf("Delete() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperations_WaitForConfiguredDelay(t *testing.T) {
	t.Parallel()

	const delay = 300 * time.Millisecond
	client := stub.NewTodoClient(testConfig(delay), latency.Timer(), nil, logging.Discard())

	tests := []struct {
		name string
		call func(context.Context) (any, error)
		want any
	}{
		{
			name: "list",
			call: func(ctx context.Context) (any, error) { return client.List(ctx) },
			want: []todo.Item{},
		},
		{
			name: "save",
			call: func(ctx context.Context) (any, error) {
				return client.Save(ctx, []todo.Item{map[string]any{"id": 1, "text": "a"}})
			},
			want: &todo.Result{Success: true, Data: []todo.Item{map[string]any{"id": 1, "text": "a"}}},
		},
		{
			name: "delete",
			call: func(ctx context.Context) (any, error) { return client.Delete(ctx, 42) },
			want: &todo.Result{Success: true, ID: 42},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			got, err := tt.call(context.Background())
			elapsed := time.Since(start)

			require.NoError(t, err)
			assert.GreaterOrEqual(t, elapsed, delay)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperations_FailureReturnsBareSentinel(t *testing.T) {
	t.Parallel()

	cause := errors.New("scheduler unavailable")

	tests := []struct {
		name    string
		call    func(*testing.T, *stub.TodoClient) error
		wantErr error
	}{
		{
			name: "list",
			call: func(t *testing.T, c *stub.TodoClient) error {
				items, err := c.List(context.Background())
				assert.Nil(t, items)
				return err
			},
			wantErr: domain.ErrFetchFailed,
		},
		{
			name: "save",
			call: func(t *testing.T, c *stub.TodoClient) error {
				res, err := c.Save(context.Background(), []todo.Item{"a"})
				assert.Nil(t, res)
				return err
			},
			wantErr: domain.ErrSaveFailed,
		},
		{
			name: "delete",
			call: func(t *testing.T, c *stub.TodoClient) error {
				res, err := c.Delete(context.Background(), 1)
				assert.Nil(t, res)
				return err
			},
			wantErr: domain.ErrDeleteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, logs := newLoggedClient(failingSleeper(cause))

			err := tt.call(t, client)

			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, cause)
			assert.Nil(t, errors.Unwrap(err))
			assert.Equal(t, tt.wantErr.Error(), err.Error())

			out := logs.String()
			assert.Contains(t, out, `"level":"ERROR"`)
			assert.Contains(t, out, "scheduler unavailable")
			assert.Contains(t, out, `"operation":"`+tt.name+`"`)
		})
	}
}

func TestOperations_RecoverSleeperPanic(t *testing.T) {
	t.Parallel()

	sleeper := latency.Func(func(context.Context, time.Duration) error {
		panic("timer wheel corrupted")
	})
	client, logs := newLoggedClient(sleeper)

	_, err := client.Save(context.Background(), []todo.Item{"a"})

	require.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.Contains(t, logs.String(), "timer wheel corrupted")
}

func TestOperations_IgnoreCanceledContext(t *testing.T) {
	t.Parallel()

	const delay = 50 * time.Millisecond
	client := stub.NewTodoClient(testConfig(delay), latency.Timer(), nil, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	items, err := client.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestOperations_IgnoreDeadlineDuringDelay(t *testing.T) {
	t.Parallel()

	client := stub.NewTodoClient(testConfig(50*time.Millisecond), latency.Timer(), nil, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	res, err := client.Delete(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, &todo.Result{Success: true, ID: 42}, res)
	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestOperations_UseContextLogger(t *testing.T) {
	t.Parallel()

	var fallback, scoped bytes.Buffer
	client := stub.NewTodoClient(testConfig(0), failingSleeper(errors.New("boom")), nil,
		logging.New("info", "json", &fallback))

	ctx := logging.WithLogger(context.Background(),
		logging.New("info", "json", &scoped).With(slog.String("request_id", "req-7")))

	_, err := client.Save(ctx, nil)

	require.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), `"request_id":"req-7"`)
	assert.Contains(t, scoped.String(), `"msg":"failed to save todos"`)
}

func TestOperations_LogActions(t *testing.T) {
	t.Parallel()

	client, logs := newLoggedClient(latency.Zero())
	ctx := context.Background()

	_, err := client.List(ctx)
	require.NoError(t, err)
	_, err = client.Save(ctx, []todo.Item{map[string]any{"text": "walk dog"}})
	require.NoError(t, err)
	_, err = client.Delete(ctx, 42)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], `"msg":"fetching todos from server"`)
	assert.Contains(t, lines[1], `"msg":"saving todos to server"`)
	assert.Contains(t, lines[1], "walk dog")
	assert.Contains(t, lines[2], `"msg":"deleting todo from server"`)
	assert.Contains(t, lines[2], `"id":42`)
}

func TestOperations_PassDelayToSleeper(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		got []time.Duration
	)
	sleeper := latency.Func(func(_ context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, d)
		return nil
	})

	client := stub.NewTodoClient(testConfig(250*time.Millisecond), sleeper, nil, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	_, _ = client.List(ctx)
	_, _ = client.Save(ctx, nil)
	_, _ = client.Delete(ctx, nil)

	want := []time.Duration{250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sleeper durations mismatch (-want +got):\n%s", diff)
	}
}

func TestOperations_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	client := newZeroClient()

	const n = 50
	results := make([]*todo.Result, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := client.Save(context.Background(), []todo.Item{i})
			if err == nil {
				results[i] = res
			}
		}()
	}
	wg.Wait()

	for i, res := range results {
		require.NotNil(t, res, "call %d", i)
		assert.Equal(t, []todo.Item{i}, res.Data)
	}
}
