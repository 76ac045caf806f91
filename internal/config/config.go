package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Whisper WhisperConfig `yaml:"whisper"`
	Logging LoggingConfig `yaml:"logging"`
	Gemini  GeminiConfig  `yaml:"gemini"`
}

type ToolsConfig struct {
	FFmpeg  string `yaml:"ffmpeg"`
	FFprobe string `yaml:"ffprobe"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Threads    int    `yaml:"threads"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Load reads a YAML config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with every field at its default value,
// used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}

	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
