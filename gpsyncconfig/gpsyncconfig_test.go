package gpsyncconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/ccfrost/gpsync/gpsyncconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Snapshot(t *testing.T) {
	// Get the path to the test config file.
	configPath, err := filepath.Abs("testdata/config.toml")
	require.NoError(t, err)

	// Load the config.
	config, err := gpsyncconfig.LoadConfig(configPath)
	require.NoError(t, err)

	// Validate the config.
	err = config.Validate()
	require.NoError(t, err)

	// Assert the values.
	assert.Equal(t, "/data/gpsync.db", config.DBPath)
	assert.Equal(t, gpsyncconfig.GooglePhotosConfig{
		ClientId:     "test-client-id",
		ClientSecret: "test-client-secret",
		RedirectURI:  "http://localhost:8080/auth",
	}, config.GooglePhotos)
	assert.Equal(t, gpsyncconfig.UploadConfig{
		BatchSize:         25,
		RequestsPerSecond: 3,
	}, config.Upload)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := gpsyncconfig.LoadConfig("")
	require.NoError(t, err)

	err = config.Validate()
	require.NoError(t, err)

	assert.NotEmpty(t, config.DBPath)
	assert.Equal(t, gpsyncconfig.DefaultBatchSize, config.Upload.BatchSize)

	// Network commands still require credentials.
	err = config.GooglePhotos.Validate()
	require.Error(t, err)
}

func TestValidate_BatchSizeBounds(t *testing.T) {
	configPath, err := filepath.Abs("testdata/config.toml")
	require.NoError(t, err)

	config, err := gpsyncconfig.LoadConfig(configPath)
	require.NoError(t, err)

	config.Upload.BatchSize = 51
	assert.Error(t, config.Validate())

	config.Upload.BatchSize = 0
	assert.Error(t, config.Validate())

	config.Upload.BatchSize = 1
	assert.NoError(t, config.Validate())
}
