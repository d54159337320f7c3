package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the client-side settings. Everything is read from environment
// variables with sensible defaults for local development.
type Config struct {
	// APIBaseURL is the root of the storefront REST backend
	APIBaseURL string `env:"STOREFRONT_API_URL" envDefault:"http://localhost:8000"`

	// HTTPTimeout bounds every request to the backend
	HTTPTimeout time.Duration `env:"STOREFRONT_HTTP_TIMEOUT" envDefault:"10s"`

	// PageSize is the number of products shown per catalog page
	PageSize int `env:"STOREFRONT_PAGE_SIZE" envDefault:"8"`

	// SearchDebounce is the delay before a search keystroke is applied
	SearchDebounce time.Duration `env:"STOREFRONT_SEARCH_DEBOUNCE" envDefault:"300ms"`

	// DataDir is where persisted store partitions are written. Empty means
	// in-memory persistence only.
	DataDir string `env:"STOREFRONT_DATA_DIR" envDefault:""`

	// AppName is used for the CLI banner
	AppName string `env:"STOREFRONT_APP_NAME" envDefault:"Storefront"`
}

// New loads configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "[config.New] env.Parse")
	}
	return cfg, nil
}
