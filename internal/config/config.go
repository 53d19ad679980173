package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup. Secrets come from
// the environment only; the optional yaml file carries preferences.
type Config struct {
	APIKey           string `yaml:"-"` // shared secret expected in X-API-Key
	NotionToken      string `yaml:"-"` // Notion integration token
	NotionDatabaseID string `yaml:"-"` // collection holding the task records

	Port  string `yaml:"port"`  // listen port
	Debug bool   `yaml:"debug"` // verbose request logging

	// Logging configuration
	LogLevel   string `yaml:"log_level"`   // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file"`    // Path to log file
	LogConsole bool   `yaml:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".notion-gpt-api", "logs", "server.log")
	}

	return &Config{
		Port:       "5000",
		LogLevel:   "INFO",
		LogFile:    logPath,
		LogConsole: true,
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load builds the configuration: defaults, then the optional yaml file,
// then environment variables (a local .env is read first if present).
func Load() (*Config, error) {
	// Local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.APIKey = os.Getenv("API_KEY")
	cfg.NotionToken = os.Getenv("NOTION_TOKEN")
	cfg.NotionDatabaseID = os.Getenv("NOTION_DATABASE_ID")
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Debug = getEnv("DEBUG", boolString(cfg.Debug)) == "true"
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.LogConsole = getEnv("LOG_CONSOLE", boolString(cfg.LogConsole)) == "true"

	return cfg, nil
}

// Validate reports the first missing required value. Startup must abort on
// any error returned here.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"API_KEY", c.APIKey},
		{"NOTION_TOKEN", c.NotionToken},
		{"NOTION_DATABASE_ID", c.NotionDatabaseID},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required environment variable: %s", r.name)
		}
	}
	return nil
}

// Save writes the non-secret preferences to the config file.
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".notion-gpt-api")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func configPath() string {
	if path := os.Getenv("NOTION_GPT_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".notion-gpt-api", "config.yaml")
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
