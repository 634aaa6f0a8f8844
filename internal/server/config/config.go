// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the NusaCare API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory
//     credential store (dev mode).
//   - SecretKey: HMAC secret for signing session tokens (HS256). Must be
//     supplied at process start; the server refuses to run without it.
//   - TokenValidityDuration: session token lifetime.
//   - TrackingInterval: cadence of technician position pushes.
//   - PaymentDelay: simulated processing delay of the mock payment endpoint.
//   - SeedDemoData: create the demo admin account on startup (dev mode).
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	TrackingInterval      time.Duration
	PaymentDelay          time.Duration
	SeedDemoData          bool
}

// LoadDefaults populates Config with development defaults. SecretKey has no
// default on purpose.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseDSN = ""
	c.TokenValidityDuration = 24 * time.Hour
	c.TrackingInterval = 2 * time.Second
	c.PaymentDelay = 2 * time.Second
	c.SeedDemoData = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
