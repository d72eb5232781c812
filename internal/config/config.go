package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	// Theme is the persisted selection: a concrete theme id or "system".
	Theme    string `mapstructure:"theme"`
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".neoforge")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// loads config from file
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if !ConfigExists() {
		return GetDefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "themes.db")
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("theme", cfg.Theme)
	v.Set("db_path", cfg.DBPath)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		Theme:    "",
		DBPath:   filepath.Join(configDir, "themes.db"),
		LogLevel: "info",
	}
}

// updates selected theme in config file
func UpdateTheme(themeID string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Theme = themeID
	return SaveConfig(cfg)
}

// Selection adapts the config file to the theme manager's persistence
// interface.
type Selection struct{}

func (Selection) LoadThemeID() (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Theme, nil
}

func (Selection) SaveThemeID(id string) error {
	return UpdateTheme(id)
}
