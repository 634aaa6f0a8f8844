package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading a
// local .env file first if one exists. The secret key is expected to arrive
// this way in most deployments.
//
// Recognized variables:
//
//	NUSACARE_ADDRESS         bind address
//	NUSACARE_DATABASE_DSN    PostgreSQL DSN
//	NUSACARE_SECRET_KEY      token signing secret
//	NUSACARE_TOKEN_VALIDITY  token lifetime ("24h")
//	NUSACARE_SEED_DEMO_DATA  "true" to seed the demo admin
func parseEnv(config *Config) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	if v := os.Getenv("NUSACARE_ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("NUSACARE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("NUSACARE_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("NUSACARE_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("NUSACARE_SEED_DEMO_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SeedDemoData = b
		}
	}
}
