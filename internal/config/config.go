package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the unified application configuration
type Config struct {
	DataDir      string   `mapstructure:"data_dir"`
	Backend      string   `mapstructure:"backend"`
	StorageKey   string   `mapstructure:"storage_key"`
	CatalogFiles []string `mapstructure:"catalog_files"`
	DefaultView  string   `mapstructure:"default_view"`
	Verbose      bool     `mapstructure:"verbose"`
}

// Settings represents the config file structure
type Settings struct {
	DataDir      string   `json:"data_dir"`
	Backend      string   `json:"backend,omitempty"`
	StorageKey   string   `json:"storage_key,omitempty"`
	CatalogFiles []string `json:"catalog_files"`
	DefaultView  string   `json:"default_view,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir      string
	Backend      string
	CatalogFiles []string
	View         string
	Verbose      bool
}

const (
	envPrefix          = "TABSHELF"
	defaultBackend     = "file"
	defaultStorageKey  = "tabshelf.user-tabs"
	defaultDefaultView = "library"
)

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	v := viper.New()
	v.SetDefault("backend", defaultBackend)
	v.SetDefault("storage_key", defaultStorageKey)
	v.SetDefault("default_view", defaultDefaultView)
	v.SetDefault("catalog_files", []string{})
	v.SetDefault("verbose", false)

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}
	v.SetDefault("data_dir", defaultDir)

	// Config file supplies the base values; a missing or broken file is not fatal.
	if configPath, err := getConfigPath(); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	// Environment variables override the config file.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"data_dir", "backend", "storage_key", "default_view", "verbose"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if envCatalog := os.Getenv(envPrefix + "_CATALOG_FILES"); envCatalog != "" {
		cfg.CatalogFiles = parseColonSeparated(envCatalog)
	}

	// CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Backend != "" {
		cfg.Backend = flags.Backend
	}
	if len(flags.CatalogFiles) > 0 {
		cfg.CatalogFiles = flags.CatalogFiles
	}
	if flags.View != "" {
		cfg.DefaultView = flags.View
	}
	if flags.Verbose {
		cfg.Verbose = true
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.CatalogFiles = expandPaths(cfg.CatalogFiles)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	return cfg, nil
}

// isMissingConfig reports whether err only means there is no config file yet.
func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// GetDefaultDir returns the default data directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "tabshelf"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabshelf", "config.json"), nil
}

// EnsureDataDir creates the data directory if it is missing.
func (c *Config) EnsureDataDir() error {
	if c.DataDir == "" {
		return nil
	}
	return os.MkdirAll(c.DataDir, 0755)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir:      defaultDir,
		Backend:      defaultBackend,
		StorageKey:   defaultStorageKey,
		CatalogFiles: []string{},
		DefaultView:  defaultDefaultView,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitNonEmpty(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitNonEmpty(s, ":")
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
