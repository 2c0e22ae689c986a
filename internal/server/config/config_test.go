package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.EndpointAddr)
	assert.Equal(t, "verysecretkey", c.SecretKey)
	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, "123456", c.OTPCode)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "data/users.json", c.UsersFile)
	assert.Equal(t, "acadex-downloads", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "", c.S3BaseEndpoint)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, ":5000", c.EndpointAddr)
	assert.Equal(t, "verysecretkey", c.SecretKey)
	assert.Equal(t, 7*24*time.Hour, c.TokenValidityDuration)
}
