package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings for the optional LLM insights collaborator.
// Everything has a usable default; the config file only overrides.
type Config struct {
	Provider   string // "openai" (any OpenAI-compatible endpoint) or "bedrock"
	Model      string
	BaseURL    string // custom endpoint for OpenAI-compatible servers
	APIKeyEnv  string // environment variable holding the API key
	SampleSize int    // max messages sent to the provider

	BedrockRegion  string
	BedrockProfile string
}

type tomlConfig struct {
	Provider   string `toml:"provider"`
	Model      string `toml:"model"`
	BaseURL    string `toml:"base_url"`
	APIKeyEnv  string `toml:"api_key_env"`
	SampleSize int    `toml:"sample_size"`

	Bedrock struct {
		Region  string `toml:"region"`
		Profile string `toml:"profile"`
	} `toml:"bedrock"`
}

// Load reads config from ~/.config/chatlens/config.toml. A missing file
// or home directory just means defaults.
func Load() (*Config, error) {
	// Model is left empty so each provider can apply its own default.
	cfg := &Config{
		Provider:   "openai",
		APIKeyEnv:  "OPENAI_API_KEY",
		SampleSize: 120,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	tomlPath := filepath.Join(home, ".config", "chatlens", "config.toml")
	if _, err := os.Stat(tomlPath); err != nil {
		return cfg, nil
	}

	var tc tomlConfig
	if _, err := toml.DecodeFile(tomlPath, &tc); err != nil {
		return cfg, nil
	}

	if tc.Provider != "" {
		cfg.Provider = tc.Provider
	}
	if tc.Model != "" {
		cfg.Model = tc.Model
	}
	if tc.BaseURL != "" {
		cfg.BaseURL = tc.BaseURL
	}
	if tc.APIKeyEnv != "" {
		cfg.APIKeyEnv = tc.APIKeyEnv
	}
	if tc.SampleSize > 0 {
		cfg.SampleSize = tc.SampleSize
	}
	cfg.BedrockRegion = tc.Bedrock.Region
	cfg.BedrockProfile = tc.Bedrock.Profile

	return cfg, nil
}
