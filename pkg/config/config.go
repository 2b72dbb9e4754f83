// Package config loads client configuration from the environment. A
// .env file in the working directory is honoured when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Variant selects which backend protocol the client speaks.
type Variant string

const (
	// VariantREST talks plain JSON over resource paths.
	VariantREST Variant = "rest"
	// VariantRPC posts function calls to /api/query|mutation|action
	// wrapped in the {status, value, errorMessage} envelope.
	VariantRPC Variant = "rpc"
)

type Config struct {
	// Base URL of the backend, e.g. "https://api.cashstate.app".
	BaseURL string

	Variant Variant

	// Per-request timeout at the transport level.
	Timeout time.Duration

	// Debug enables request/response logging. Never affects control flow.
	Debug bool

	// Where the session file lives.
	SessionFile string
	// Optional at-rest encryption keys for the session file. Both must
	// be set for encryption to apply.
	SessionKey string
	SessionSig string

	// Default export target for the CLI, e.g. "jsonfile:out.json" or
	// "es8:http://localhost:9200".
	ExportTarget string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      getenv("CASHSTATE_BASE_URL", "http://localhost:8000"),
		Variant:      Variant(getenv("CASHSTATE_BACKEND", string(VariantREST))),
		Timeout:      30 * time.Second,
		Debug:        os.Getenv("CASHSTATE_DEBUG") == "true",
		SessionFile:  getenv("CASHSTATE_SESSION_FILE", defaultSessionFile()),
		SessionKey:   os.Getenv("CASHSTATE_SESSION_KEY"),
		SessionSig:   os.Getenv("CASHSTATE_SESSION_SIG"),
		ExportTarget: getenv("CASHSTATE_EXPORT", "jsonfile:out.json"),
	}

	if cfg.Variant != VariantREST && cfg.Variant != VariantRPC {
		return nil, fmt.Errorf("unknown backend variant %q, want rest or rpc", cfg.Variant)
	}

	if raw := os.Getenv("CASHSTATE_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid CASHSTATE_TIMEOUT_SECONDS %q", raw)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cashstate-session.json"
	}
	return filepath.Join(home, ".cashstate", "session.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
