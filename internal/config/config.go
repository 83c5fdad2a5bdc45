package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DBEnvVar overrides the database path from any config file
	DBEnvVar = "TASKNEST_DB"
	// ThemeEnvVar points at a YAML file whose theme section is merged over the config
	ThemeEnvVar = "TASKNEST_THEME_FILE"

	defaultNotificationDuration = 4 * time.Second
)

// Config represents the application configuration
type Config struct {
	KeyMappings   KeyMappings   `yaml:"key_mappings"`
	ColorScheme   ColorScheme   `yaml:"theme"`
	Notifications Notifications `yaml:"notifications"`
	Database      Database      `yaml:"database"`

	path string
}

// Notifications configures the toast stack
type Notifications struct {
	// Duration a toast stays visible, e.g. "4s"
	Duration time.Duration `yaml:"duration"`
}

// Database configures persistence
type Database struct {
	// Path of the sqlite file; empty means ~/.tasknest/tasks.db
	Path string `yaml:"path"`
}

// Default returns a config with every value defaulted
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from the TASKNEST_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeEnvVar)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		finish(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path.
// Returns default config if file doesn't exist.
func LoadFrom(configPath string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.path = configPath
	finish(config)
	return config, nil
}

// finish applies the environment overrides, then fills defaults
func finish(config *Config) {
	loadThemeFile(config)
	if db := os.Getenv(DBEnvVar); db != "" {
		config.Database.Path = db
	}
	config.applyDefaults()
}

// Save saves the config to the path it was loaded from, or the user's config directory
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasknest", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasknest", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Notifications.Duration <= 0 {
		c.Notifications.Duration = defaultNotificationDuration
	}
}
