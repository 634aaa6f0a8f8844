package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/samuelnapitupulu18/NusaCare/internal/flagx"
	"github.com/samuelnapitupulu18/NusaCare/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. Duration fields accept both strings such as "24h"
// and integer nanoseconds. After unmarshalling, non-zero fields are copied
// into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	TrackingInterval      timex.Duration `json:"tracking_interval"`
	PaymentDelay          timex.Duration `json:"payment_delay"`
	SeedDemoData          bool           `json:"seed_demo_data"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. If neither flag is set, nothing is
// loaded. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.TrackingInterval.Duration != 0 {
		config.TrackingInterval = time.Duration(c.TrackingInterval.Duration)
	}
	if c.PaymentDelay.Duration != 0 {
		config.PaymentDelay = time.Duration(c.PaymentDelay.Duration)
	}
	if c.SeedDemoData {
		config.SeedDemoData = true
	}
}
