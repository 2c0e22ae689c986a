package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags set",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-s", "secret", "-t", "24", "-o", "654321",
				"-d", "db", "-f", "users.json",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddr:          "127.0.0.1:9090",
				SecretKey:             "secret",
				TokenValidityDuration: 24 * time.Hour,
				OTPCode:               "654321",
				DatabaseDSN:           "db",
				UsersFile:             "users.json",
				S3RootUser:            "user",
				S3RootPassword:        "password",
				S3Bucket:              "bucket",
				S3Region:              "us-west-1",
				S3BaseEndpoint:        "http://endpoint",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })
			os.Args = tt.args

			config := &Config{}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "48h")

	config := &Config{}
	config.LoadDefaults()
	parseEnv(config)

	assert.Equal(t, ":9999", config.EndpointAddr)
	assert.Equal(t, "env-secret", config.SecretKey)
	assert.Equal(t, 48*time.Hour, config.TokenValidityDuration)
	// untouched values keep their defaults
	assert.Equal(t, "123456", config.OTPCode)
}
