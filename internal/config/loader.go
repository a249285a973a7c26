package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration for the booking site.
type Config struct {
	HTTPPort  int
	SQLiteDSN string
	DemoData  bool
}

// Load parses configuration from the process environment, after loading an
// optional .env file. Defaults apply to everything; only malformed values
// are reported as errors.
func Load() (Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:  8000,
		SQLiteDSN: "file:bookings.db?_pragma=foreign_keys(1)",
		DemoData:  false,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("BOOKING_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "BOOKING_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("BOOKING_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if demoValue := strings.TrimSpace(os.Getenv("BOOKING_DEMO_DATA")); demoValue != "" {
		demo, err := strconv.ParseBool(demoValue)
		if err != nil {
			invalid = append(invalid, "BOOKING_DEMO_DATA")
		} else {
			cfg.DemoData = demo
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
