package gpsyncconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GooglePhotosConfig defines the configuration specific to Google Photos.
type GooglePhotosConfig struct {
	ClientId     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
}

// UploadConfig defines the tuning knobs for upload runs.
type UploadConfig struct {
	// BatchSize is the number of files registered per batchCreate call.
	// The API caps this at 50.
	BatchSize int `mapstructure:"batch_size"`

	// RequestsPerSecond bounds the rate of API calls during a run.
	RequestsPerSecond int `mapstructure:"requests_per_second"`
}

// GPsyncConfig defines the configuration for gpsync.
type GPsyncConfig struct {
	// DBPath is the sqlite file holding the album registry and upload ledger.
	DBPath string `mapstructure:"db_path"`

	GooglePhotos GooglePhotosConfig `mapstructure:"google_photos"`
	Upload       UploadConfig       `mapstructure:"upload"`

	path string `mapstructure:"-"`
}

const (
	// DefaultBatchSize matches the mediaItems:batchCreate limit.
	DefaultBatchSize = 50

	defaultRequestsPerSecond = 5
)

func (c *GooglePhotosConfig) Validate() error {
	// Check that at least a base set of fields have values.
	if c.ClientId == "" || c.ClientSecret == "" {
		return fmt.Errorf("missing google photos client_id or client_secret")
	}
	if c.RedirectURI == "" {
		c.RedirectURI = "http://localhost:8080" // Default redirect URI
	}
	return nil
}

// Validate checks the fields every command depends on. Google Photos
// credentials are validated separately, by commands that reach the API.
func (c *GPsyncConfig) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("missing db_path (%s)", c.path)
	}
	if c.Upload.BatchSize < 1 || c.Upload.BatchSize > DefaultBatchSize {
		return fmt.Errorf("upload.batch_size must be in [1,%d] (%s)", DefaultBatchSize, c.path)
	}
	if c.Upload.RequestsPerSecond < 1 {
		return fmt.Errorf("upload.requests_per_second must be positive (%s)", c.path)
	}
	return nil
}

// ConfigPath returns the path the config was loaded from (or would have been
// loaded from, when the file does not exist).
func (c *GPsyncConfig) ConfigPath() string {
	return c.path
}

// getConfigPath determines where to look for the config file.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specific config file path if specified.
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	// Fall back to user config dir.
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gpsync", "config.toml"), nil
	}
	return "", fmt.Errorf("unable to determine config file path")
}

// defaultDBPath places the ledger next to the config file.
func defaultDBPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "gpsync.db")
}

// LoadConfig reads the config file. A missing file is not an error: local
// commands run fine on defaults, and commands needing API credentials
// validate GooglePhotos themselves.
func LoadConfig(configPathFlag string) (GPsyncConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return GPsyncConfig{}, err
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")

	config := GPsyncConfig{path: path}
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) && configPathFlag == "" {
			// No config file at the default location; run on defaults.
			applyDefaults(&config)
			return config, nil
		}
		return GPsyncConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	if err := viper.Unmarshal(&config); err != nil {
		return GPsyncConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	applyDefaults(&config)

	return config, nil
}

func applyDefaults(config *GPsyncConfig) {
	if config.DBPath == "" {
		config.DBPath = defaultDBPath(config.path)
	}
	if config.Upload.BatchSize == 0 {
		config.Upload.BatchSize = DefaultBatchSize
	}
	if config.Upload.RequestsPerSecond == 0 {
		config.Upload.RequestsPerSecond = defaultRequestsPerSecond
	}
}
