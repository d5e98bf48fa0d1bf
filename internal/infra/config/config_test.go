package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, ProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gemini-2.5-flash", cfg.LLM.Gemini.Model)
	require.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	require.Equal(t, 40, cfg.LLM.TopK)
	require.InDelta(t, 0.95, cfg.LLM.TopP, 0.0001)
	require.Equal(t, 5000, cfg.LLM.MaxOutputTokens)
	require.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	require.Equal(t, DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, "en", cfg.Settings.DefaultLanguage)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
llm:
  provider: openai
  gemini:
    apiKey: file-key
  timeout: 30s
storage:
  driver: memory
settings:
  defaultLanguage: hi
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	require.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, "hi", cfg.Settings.DefaultLanguage)
	// translation reuses the gemini key when unset
	require.Equal(t, "file-key", cfg.Translation.APIKey)
}

func TestLoadEnvListsAndBools(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("HTTP_RATE_LIMIT_ENABLED", "false")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, DriverPostgres, cfg.Storage.Driver)
	require.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":    func(c *Config) { c.HTTP.Address = "" },
		"unknown provider": func(c *Config) { c.LLM.Provider = "claude" },
		"unknown driver":   func(c *Config) { c.Storage.Driver = "mongo" },
		"sqlite no path":   func(c *Config) { c.Storage.SQLite.Path = " " },
		"bad topP":         func(c *Config) { c.LLM.TopP = 1.5 },
		"no tokens":        func(c *Config) { c.LLM.MaxOutputTokens = 0 },
		"redis no addr":    func(c *Config) { c.Settings.Redis.Enabled = true },
		"rate limit burst": func(c *Config) { c.HTTP.RateLimit.Burst = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
	require.NoError(t, defaultConfig().Validate())
}
