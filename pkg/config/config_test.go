package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "positional", cfg.PDFStrategy)
	assert.Equal(t, "memory", cfg.HistoryBackend)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "resumescan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
pdf_strategy: plain
llm_provider: openrouter
openrouter:
  model: qwen/qwen2.5-32b-instruct
history_backend: redis
redis_url: redis://localhost:6379/0
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "plain", cfg.PDFStrategy)
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	assert.Equal(t, "qwen/qwen2.5-32b-instruct", cfg.OpenRouter.Model)
	assert.Equal(t, "redis", cfg.HistoryBackend)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PDF_STRATEGY=library\n"), 0o600))
	t.Setenv("CONFIG_FILE", "")
	// godotenv never overrides a variable that is already present.
	t.Setenv("PDF_STRATEGY", "")
	require.NoError(t, os.Unsetenv("PDF_STRATEGY"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "library", cfg.PDFStrategy)
}

func TestLoadErrors(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "missing.yaml")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("HISTORY_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown provider", func(c *Config) { c.LLMProvider = "claude" }, false},
		{"unknown backend", func(c *Config) { c.HistoryBackend = "mongo" }, false},
		{"redis without url", func(c *Config) { c.HistoryBackend = "redis" }, false},
		{"postgres with url", func(c *Config) { c.HistoryBackend, c.DatabaseURL = "postgres", "postgres://localhost/db" }, true},
		{"zero upload limit", func(c *Config) { c.MaxUploadBytes = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
