// Package ports defines interfaces between layers in the hexagonal architecture.
// Client ports are implemented by outbound adapters and called by inbound
// adapters; platform ports cover cross-cutting concerns such as health.
package ports
