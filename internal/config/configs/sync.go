package configs

import "time"

// Sync configures the external CRM sync service. BaseURL is the service's
// base path; every request path is appended to it. Timeout bounds each
// round trip. There is no retry, so a slow service degrades to a visible
// message rather than a hung request.
type Sync struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:9090"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
