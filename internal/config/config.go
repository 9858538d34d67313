package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	LLM         LLMConfig         `yaml:"llm"`
	TTS         TTSConfig         `yaml:"tts"`
	OCR         OCRConfig         `yaml:"ocr"`
	Batch       BatchConfig       `yaml:"batch"`
	Render      RenderConfig      `yaml:"render"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	Output  string `yaml:"output"`
	Scratch string `yaml:"scratch"`
	Inbox   string `yaml:"inbox"`
}

type LLMConfig struct {
	Provider        string `yaml:"provider"` // openai | gemini
	Model           string `yaml:"model"`
	APIBase         string `yaml:"api_base"`
	ReasoningEffort string `yaml:"reasoning_effort"` // N/A, low, medium, high
	WebSearch       bool   `yaml:"web_search"`
	MaxRetries      int    `yaml:"max_retries"`
}

type TTSConfig struct {
	Model                string `yaml:"model"`
	APIBase              string `yaml:"api_base"`
	Speaker1Voice        string `yaml:"speaker1_voice"`
	Speaker2Voice        string `yaml:"speaker2_voice"`
	Speaker1Instructions string `yaml:"speaker1_instructions"`
	Speaker2Instructions string `yaml:"speaker2_instructions"`
}

type OCRConfig struct {
	Model   string `yaml:"model"`
	APIBase string `yaml:"api_base"`
}

type BatchConfig struct {
	Language string `yaml:"language"`
}

type RenderConfig struct {
	Remux bool `yaml:"remux"` // re-encode concatenated audio with ffmpeg
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML configuration file
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
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.LLM.Provider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("llm.provider must be openai or gemini, got %q", c.LLM.Provider)
	}

	if c.Paths.Scratch == "" {
		c.Paths.Scratch = "data/scratch"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.Model == "" {
		if c.LLM.Provider == "gemini" {
			c.LLM.Model = "gemini-2.5-flash"
		} else {
			c.LLM.Model = "o4-mini"
		}
	}
	if c.LLM.ReasoningEffort == "" {
		c.LLM.ReasoningEffort = "N/A"
	}
	if c.LLM.MaxRetries == 0 {
		c.LLM.MaxRetries = 3
	}
	if c.TTS.Model == "" {
		c.TTS.Model = "tts-1"
	}
	if c.TTS.Speaker1Voice == "" {
		c.TTS.Speaker1Voice = "alloy"
	}
	if c.TTS.Speaker2Voice == "" {
		c.TTS.Speaker2Voice = "echo"
	}
	if c.OCR.Model == "" {
		c.OCR.Model = "mistral-ocr-latest"
	}
	if c.Batch.Language == "" {
		c.Batch.Language = "fr"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	return nil
}
