package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_HTTP_ADDR is the base URL of a running server, e.g. http://localhost:3001.
	// The suites are skipped when it is empty.
	HTTPAddr string `envconfig:"E2E_HTTP_ADDR"`
	WSURL    string `envconfig:"E2E_WS_URL" default:"ws://localhost:3001/ws"`
	StoreID  string `envconfig:"E2E_STORE_ID" default:"e2e"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
