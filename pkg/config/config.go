package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Demo defaults, overridable via DOCSIGHT_* env vars or flags.
const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultFilePath    = "WalmartReceipt.png"
	DefaultDisplayName = "Diagram for Analysis"
	DefaultPrompt      = "Analyze this file. What key concepts or elements does it contain? " +
		"Respond in a detailed, structured list."
)

// apiKeyEnvVars are checked in order; the first non-empty one wins.
var apiKeyEnvVars = []string{"GOOGLE_AI_STUDIO_API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"}

// Config carries everything the workflow needs. It is built once in main and
// passed down; nothing reads the environment after Load.
type Config struct {
	APIKey           string
	Model            string
	FilePath         string
	DisplayName      string
	Prompt           string
	AllowPlaceholder bool
	Timeout          time.Duration
	LogLevel         string
}

// Error marks configuration that cannot initialize a provider client.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "config: " + e.Reason }

// Load resolves configuration from the environment with defaults.
// Precedence is flags (applied by the caller) > DOCSIGHT_* env > defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("docsight")
	v.AutomaticEnv()

	v.SetDefault("model", DefaultModel)
	v.SetDefault("file", DefaultFilePath)
	v.SetDefault("display_name", DefaultDisplayName)
	v.SetDefault("prompt", DefaultPrompt)
	v.SetDefault("placeholder", true)
	v.SetDefault("timeout", "2m")
	v.SetDefault("log_level", "info")

	return &Config{
		APIKey:           resolveAPIKey(),
		Model:            v.GetString("model"),
		FilePath:         v.GetString("file"),
		DisplayName:      v.GetString("display_name"),
		Prompt:           v.GetString("prompt"),
		AllowPlaceholder: v.GetBool("placeholder"),
		Timeout:          v.GetDuration("timeout"),
		LogLevel:         v.GetString("log_level"),
	}
}

// Validate reports whether the config can initialize a client. Called after
// flag parsing, before any provider call.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &Error{Reason: "missing API key, set " + strings.Join(apiKeyEnvVars, " or ")}
	}
	if strings.TrimSpace(c.Model) == "" {
		return &Error{Reason: "model must not be empty"}
	}
	if strings.TrimSpace(c.FilePath) == "" {
		return &Error{Reason: "input file path must not be empty"}
	}
	return nil
}

func resolveAPIKey() string {
	for _, name := range apiKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}
