package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the llm section.
const (
	DefaultProvider = "openai"
	DefaultModel    = "gpt-3.5-turbo"
)

// Config holds the assistant settings read from config.json and the environment.
type Config struct {
	LLM      LLMConfig `json:"llm"`
	LogLevel string    `json:"log_level,omitempty"`
}

// LLMConfig 补全服务配置。
type LLMConfig struct {
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	BaseURL        string `json:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// Timeout returns zero when no timeout is configured.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the optional .env file and the optional JSON config file, then
// applies environment overrides. Missing files are not an error.
func Load(configPath, envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	var cfg Config
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
			slog.Debug("config file not found, using environment only", "path", configPath)
		default:
			return Config{}, err
		}
	}

	cfg.LLM.Provider = getEnv("WRITER_LLM_PROVIDER", cfg.LLM.Provider)
	cfg.LLM.Model = getEnv("OPENAI_MODEL", cfg.LLM.Model)
	cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = getEnv("OPENAI_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.TimeoutSeconds = getEnvAsInt("OPENAI_TIMEOUT_SECONDS", cfg.LLM.TimeoutSeconds)
	cfg.LogLevel = getEnv("WRITER_LOG_LEVEL", cfg.LogLevel)

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = DefaultProvider
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	cfg.LLM.Provider = strings.ToLower(cfg.LLM.Provider)
	return cfg, nil
}

// Validate checks the llm section for a real provider.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case "openai":
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url。
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return errors.New("llm api key missing; set llm.api_key in config or OPENAI_API_KEY")
	}
	return nil
}

// SlogLevel maps log_level onto slog levels; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("ignoring non-numeric environment value", "key", key, "value", value)
		return defaultValue
	}
	return n
}
