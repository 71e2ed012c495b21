package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// AvailabilityRule is a named RRULE preset participants can use to describe their availability
type AvailabilityRule struct {
	Name  string `yaml:"name" validate:"required"`
	RRule string `yaml:"rrule" validate:"required"`
}

// SheetsConfig locates the Google spreadsheet used to import availability and publish schedules
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheetID" validate:"required"`
	AvailabilityTab string `yaml:"availabilityTab" validate:"required"`
	PublishTab      string `yaml:"publishTab" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	Store             string             `yaml:"store" validate:"required,oneof=file postgres"`
	DataFile          string             `yaml:"dataFile" validate:"required_if=Store file"`
	DatabaseURL       string             `yaml:"databaseURL" validate:"required_if=Store postgres"`
	DefaultSettings   *model.Settings    `yaml:"defaultSettings,omitempty"`
	Sheets            *SheetsConfig      `yaml:"sheets,omitempty"`
	AvailabilityRules []AvailabilityRule `yaml:"availabilityRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Settings returns the configured default settings, falling back to the built-in defaults
func (c *Config) Settings() model.Settings {
	if c.DefaultSettings == nil {
		return model.DefaultSettings()
	}
	return *c.DefaultSettings
}

// AvailabilityRule looks up a preset by name
func (c *Config) AvailabilityRule(name string) (string, bool) {
	for _, rule := range c.AvailabilityRules {
		if rule.Name == name {
			return rule.RRule, true
		}
	}
	return "", false
}

// Load loads and validates the configuration from scheduler_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "scheduler_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the default settings and rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.DefaultSettings != nil {
		if err := cfg.DefaultSettings.Validate(); err != nil {
			return fmt.Errorf("invalid defaultSettings: %w", err)
		}
	}

	seen := make(map[string]bool, len(cfg.AvailabilityRules))
	for i, rule := range cfg.AvailabilityRules {
		if seen[rule.Name] {
			return fmt.Errorf("duplicate availabilityRules name %q", rule.Name)
		}
		seen[rule.Name] = true

		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in availabilityRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(env string) (string, error) {
	return findFile("scheduler_config", ".yaml", env)
}

// findFile looks for base[.env]ext in the current directory, then the home directory
func findFile(base, ext, env string) (string, error) {
	fileName := base + ext
	if env != "" {
		fileName = base + "." + env + ext
	}

	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
