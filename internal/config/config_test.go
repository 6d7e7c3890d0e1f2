package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Define test environment variables
	const (
		DBDriver             = "test_db_driver"
		DBSource             = "test_db_source"
		ServerAddress        = "test_server_address"
		ElasticSearchAddress = "test_elasticsearch_address"
		RedisAddress         = "test_redis_address"
		EmailSenderAddress   = "alerts@test.com"
		SMTPServerAddress    = "smtp.test.com:2525"
	)

	// Set the environment variables for testing
	setEnvVariables(t, map[string]string{
		"DB_DRIVER":             DBDriver,
		"DB_SOURCE":             DBSource,
		"SERVER_ADDRESS":        ServerAddress,
		"ELASTICSEARCH_ADDRESS": ElasticSearchAddress,
		"REDIS_ADDRESS":         RedisAddress,
		"EMAIL_SENDER_ADDRESS":  EmailSenderAddress,
		"SMTP_SERVER_ADDRESS":   SMTPServerAddress,
	})

	// Load the config
	config, err := LoadConfig("../../.")
	require.NoError(t, err)

	// require that the loaded configuration matches the environment variables
	require.Equal(t, DBDriver, config.DBDriver)
	require.Equal(t, DBSource, config.DBSource)
	require.Equal(t, ServerAddress, config.ServerAddress)
	require.Equal(t, ElasticSearchAddress, config.ElasticSearchAddress)
	require.Equal(t, RedisAddress, config.RedisAddress)
	require.Equal(t, EmailSenderAddress, config.EmailSenderAddress)
	require.Equal(t, SMTPServerAddress, config.SMTPServerAddress)

	// Reset the environment variables after the test
	resetEnvVariables()
}

// Helper function to set environment variables for testing
func setEnvVariables(t *testing.T, envVars map[string]string) {
	for key, value := range envVars {
		err := viper.BindEnv(key)
		require.NoError(t, err)
		viper.Set(key, value)
	}
}

// Helper function to reset environment variables after testing
func resetEnvVariables() {
	viper.Reset()
}
