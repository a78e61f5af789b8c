package models

import "time"

// ServerConfig holds the daemon's listen address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"` // 0 = dynamic allocation
}

// DefaultsConfig holds values pre-filled into the new-log form.
type DefaultsConfig struct {
	SiteName string `yaml:"site_name"`
	CrewSize int    `yaml:"crew_size"`
}

// LoggingConfig holds daemon logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "text" | "json"
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	CheckOnStartup bool       `yaml:"check_on_startup"`
	CheckFrequency string     `yaml:"check_frequency"` // "every_launch" | "daily" | "weekly"
	LastChecked    *time.Time `yaml:"last_checked,omitempty"`
}

// AIConfig selects the summarizer backend. Only "pattern" is implemented;
// APIKeyEnv names the environment variable a future model-backed
// summarizer will read its key from.
type AIConfig struct {
	Provider  string `yaml:"provider"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// Settings represents global application settings.
// This corresponds to ~/.sitelog/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
	Updates  UpdatesConfig  `yaml:"updates"`
	AI       AIConfig       `yaml:"ai"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: ServerConfig{
			Host: "localhost",
			Port: 0,
		},
		Defaults: DefaultsConfig{
			SiteName: "",
			CrewSize: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
			CheckFrequency: "daily",
			LastChecked:    nil,
		},
		AI: AIConfig{
			Provider:  "pattern",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
}
