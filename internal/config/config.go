package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-controlled behavior of the client. A .env file
// in the working directory is loaded first when present.
type Config struct {
	// APIBaseURL is the base URL of the hours/permissions REST backend.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://backend.yeisonduque.top"`
	// RequestTimeout is the fixed client-side timeout in seconds for every
	// request. There is no retry policy on top of it.
	RequestTimeout int `env:"REQUEST_TIMEOUT" envDefault:"15"`
	// SkipLogin seeds a synthetic user without calling the login endpoint.
	// Development only.
	SkipLogin bool `env:"SKIP_LOGIN" envDefault:"false"`
	// SkipLoginEmployeeID is the employee seeded when SkipLogin is set.
	SkipLoginEmployeeID int    `env:"SKIP_LOGIN_EMPLOYEE_ID" envDefault:"1"`
	SkipLoginName       string `env:"SKIP_LOGIN_NAME" envDefault:"Dev User"`
	// Debug enables debug logging to stderr in addition to the log file.
	Debug bool `env:"DEBUG" envDefault:"false"`
	// StorePath overrides the draft/favorites store location. A .json
	// extension selects the JSON store, anything else SQLite.
	StorePath string `env:"STORE_PATH"`
}

// Load reads configuration from the environment with the HORAS_ prefix,
// after best-effort loading of a local .env file.
func Load() (Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "HORAS_"}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
