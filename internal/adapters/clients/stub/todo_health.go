package stub

import (
	"context"
	"fmt"
)

// Name returns the identifier used in the health registry.
func (c *TodoClient) Name() string {
	return ServiceName
}

// HealthCheck reports degraded when the most recent call failed and healthy
// otherwise. No call is made. The result never blocks later calls: the next
// successful call clears it.
func (c *TodoClient) HealthCheck(_ context.Context) error {
	if op := c.lastFailure.Load(); op != nil {
		return fmt.Errorf("%s: degraded (last call failed: %s)", ServiceName, *op)
	}
	return nil
}
