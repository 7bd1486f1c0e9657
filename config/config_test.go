package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WRITER_LLM_PROVIDER", "OPENAI_MODEL", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "OPENAI_TIMEOUT_SECONDS", "WRITER_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.json"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.LLM.Provider)
	assert.Equal(t, DefaultModel, cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Zero(t, cfg.LLM.Timeout())
}

func TestLoadJSONFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{
		"llm": {"provider": "DeepSeek", "model": "deepseek-chat", "api_key": "sk-file", "base_url": "https://api.deepseek.com/v1", "timeout_seconds": 30},
		"log_level": "debug"
	}`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"llm": {"api_key": "sk-file", "model": "gpt-4o-mini"}}`)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Zero(t, cfg.LLM.TimeoutSeconds)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "WRITER_TEST_DOTENV_MODEL"
	if _, ok := os.LookupEnv("OPENAI_MODEL"); ok {
		t.Skip("OPENAI_MODEL already set in the environment")
	}
	t.Cleanup(func() { _ = os.Unsetenv("OPENAI_MODEL"); _ = os.Unsetenv(key) })

	envPath := writeFile(t, ".env", "OPENAI_MODEL=gpt-from-dotenv\n"+key+"=1\n")
	cfg, err := Load("", envPath)
	require.NoError(t, err)
	assert.Equal(t, "gpt-from-dotenv", cfg.LLM.Model)
	assert.Equal(t, "1", os.Getenv(key))
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.json", `{"llm": `)

	_, err := Load(path, "")
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr string
	}{
		{"openai ok", LLMConfig{Provider: "openai", APIKey: "k"}, ""},
		{"missing key", LLMConfig{Provider: "openai"}, "api key missing"},
		{"deepseek without base url", LLMConfig{Provider: "deepseek", APIKey: "k"}, "requires base_url"},
		{"unknown provider", LLMConfig{Provider: "gemini", APIKey: "k"}, "not supported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{LLM: tt.cfg}.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARNING"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
}
