// Package middleware holds the inbound request pipeline. The router applies
// it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Timeout is innermost so that its deadline bounds the todo client's
// simulated latency and nothing else.
package middleware
