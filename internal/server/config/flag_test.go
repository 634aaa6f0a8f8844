package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "postgres://x", "-s", "secret", "-t", "48", "-i", "5"},
			expected: &Config{
				EndpointAddr:          "127.0.0.1:9090",
				DatabaseDSN:           "postgres://x",
				SecretKey:             "secret",
				TokenValidityDuration: 48 * time.Hour,
				TrackingInterval:      5 * time.Second,
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-a", ":8081", "-z", "junk"},
			expected: &Config{
				EndpointAddr:     ":8081",
				TrackingInterval: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
