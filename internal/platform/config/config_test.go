package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "notekeeper", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Equal(t, "notekeeper", cfg.Mongo.Database)
	assert.Equal(t, DefaultMongoTimeout, cfg.Mongo.Timeout)
	assert.False(t, cfg.Telemetry.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestLoad_AppEnvOverride(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MongoURIFromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/notekeeper")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017/notekeeper", cfg.Mongo.URI)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestLoad_BadPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestValidate_BadPort(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestValidate_UnknownEnvironment(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.App.Environment = "staging"

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.environment")
	assert.Contains(t, err.Error(), "one of")
}

func TestValidate_BadMongoURI(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Mongo.URI = "postgres://nope"

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo.uri")
}

func TestValidate_ShortTimeouts(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.ReadTimeout = 100 * time.Millisecond

	require.Error(t, cfg.Validate())
}
