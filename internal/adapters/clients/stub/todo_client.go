// Package stub implements [ports.TodoClient] without a network. Every call
// waits out a simulated round trip and answers with a canned or echoed
// result, which lets the rest of the service run before the real todo API
// exists.
//
//	client := stub.NewTodoClient(cfg.Stub, latency.Timer(), metrics, logger)
//	res, err := client.Save(ctx, items) // res.Data is items itself
//
// A failure while waiting is logged with its cause and surfaced as the
// operation's fixed sentinel (domain.ErrFetchFailed, domain.ErrSaveFailed or
// domain.ErrDeleteFailed). The cause is never attached to the returned error.
//
// Calls do not observe cancellation: an abandoned call still waits out the
// delay and resolves. Log lines go to the request-scoped logger in ctx when
// there is one.
package stub

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-api-stub/internal/domain"
	"github.com/jsamuelsen11/todo-api-stub/internal/domain/todo"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/config"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/latency"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/logging"
	"github.com/jsamuelsen11/todo-api-stub/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-api-stub/internal/ports"
)

// ServiceName identifies the simulated remote in spans, metrics and health
// results.
const ServiceName = "todo-api"

const (
	opList   = "list"
	opSave   = "save"
	opDelete = "delete"
)

var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

// TodoClient is the simulated todo API client. Construct one per process and
// share it; it holds no per-call state.
type TodoClient struct {
	baseURL string
	delay   time.Duration
	sleeper latency.Sleeper
	metrics *telemetry.Metrics
	logger  *slog.Logger // fallback when ctx carries no logger

	// lastFailure holds the operation name of the most recent failed call,
	// or nil once a later call succeeds.
	lastFailure atomic.Pointer[string]
}

// NewTodoClient creates a TodoClient from cfg. A nil sleeper means a real
// timer, nil metrics disable metric recording and a nil logger discards
// output.
func NewTodoClient(cfg config.StubConfig, sleeper latency.Sleeper, metrics *telemetry.Metrics, logger *slog.Logger) *TodoClient {
	if sleeper == nil {
		sleeper = latency.Timer()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &TodoClient{
		baseURL: cfg.BaseURL,
		delay:   cfg.Delay,
		sleeper: sleeper,
		metrics: metrics,
		logger:  logger,
	}
}

// BaseURL returns the address of the remote API this client stands in for.
func (c *TodoClient) BaseURL() string {
	return c.baseURL
}

// Delay returns the simulated latency applied to every call.
func (c *TodoClient) Delay() time.Duration {
	return c.delay
}

// List returns an empty, non-nil slice.
func (c *TodoClient) List(ctx context.Context) ([]todo.Item, error) {
	var items []todo.Item
	err := c.call(ctx, opList, domain.ErrFetchFailed, func(ctx context.Context) {
		c.log(ctx).InfoContext(ctx, "fetching todos from server")
		items = []todo.Item{}
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save echoes items back as the result data. The returned Data shares the
// caller's backing array.
func (c *TodoClient) Save(ctx context.Context, items []todo.Item) (*todo.Result, error) {
	var res *todo.Result
	err := c.call(ctx, opSave, domain.ErrSaveFailed, func(ctx context.Context) {
		c.log(ctx).InfoContext(ctx, "saving todos to server", slog.Any("todos", items))
		res = todo.Saved(items)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Delete echoes id back in the result. Any id is accepted, nil included.
func (c *TodoClient) Delete(ctx context.Context, id todo.ID) (*todo.Result, error) {
	var res *todo.Result
	err := c.call(ctx, opDelete, domain.ErrDeleteFailed, func(ctx context.Context) {
		c.log(ctx).InfoContext(ctx, "deleting todo from server", slog.Any("id", id))
		res = todo.Deleted(id)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// call runs one operation: span, simulated latency, then respond. When the
// wait fails, the cause is logged and recorded on the span and sentinel is
// returned in its place.
func (c *TodoClient) call(ctx context.Context, op string, sentinel error, respond func(context.Context)) error {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer("stub").Start(ctx,
		fmt.Sprintf("stub %s %s", op, ServiceName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrPeerService.String(ServiceName),
			telemetry.AttrOperation.String(op),
		),
	)
	defer span.End()

	if cause := c.wait(context.WithoutCancel(ctx)); cause != nil {
		c.log(ctx).ErrorContext(ctx, sentinel.Error(),
			slog.String("operation", op),
			slog.Any("error", cause),
		)
		span.RecordError(cause)
		span.SetStatus(codes.Error, sentinel.Error())

		c.lastFailure.Store(&op)
		c.recordMetrics(ctx, op, start, false)
		return sentinel
	}

	respond(ctx)

	c.lastFailure.Store(nil)
	c.recordMetrics(ctx, op, start, true)
	return nil
}

// wait suspends for the configured delay. A panic inside the sleeper is
// turned into an error.
func (c *TodoClient) wait(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("simulated latency panicked: %v", r)
		}
	}()
	return c.sleeper.Sleep(ctx, c.delay)
}

func (c *TodoClient) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, c.logger)
}

// recordMetrics is a no-op when metrics is nil.
func (c *TodoClient) recordMetrics(ctx context.Context, op string, start time.Time, ok bool) {
	if c.metrics == nil {
		return
	}

	result := "success"
	if !ok {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrPeerService.String(ServiceName),
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	c.metrics.StubCallDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.StubCallTotal.Add(ctx, 1, attrs)
}
