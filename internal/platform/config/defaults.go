package config

const (
	defaultServerPort = 8080

	// DefaultStubBaseURL is the address of the remote todo API being simulated.
	DefaultStubBaseURL = "https://api.example.com/todos"
)

// defaults returns the lowest-precedence configuration layer. Every key here
// is also what makes the matching APP_* env var resolvable.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"stub.base_url": DefaultStubBaseURL,
		"stub.delay":    "300ms",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-api-stub",
	}
}
