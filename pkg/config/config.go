package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

var ErrInvalidConfig = errors.New("invalid config")

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type OpenRouterConfig struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Model    string `yaml:"model"`
	AppTitle string `yaml:"app_title"`
	Referer  string `yaml:"referer"`
}

type Config struct {
	Port           string           `yaml:"port"`
	MaxUploadBytes int64            `yaml:"max_upload_bytes"`
	PDFStrategy    string           `yaml:"pdf_strategy"`
	LLMProvider    string           `yaml:"llm_provider"`
	Gemini         GeminiConfig     `yaml:"gemini"`
	OpenRouter     OpenRouterConfig `yaml:"openrouter"`
	HistoryBackend string           `yaml:"history_backend"`
	HistoryLimit   int              `yaml:"history_limit"`
	DatabaseURL    string           `yaml:"database_url"`
	RedisURL       string           `yaml:"redis_url"`
	JWTSecret      string           `yaml:"jwt_secret"`
	JWTIssuer      string           `yaml:"jwt_issuer"`
	JWTTTLMinutes  int              `yaml:"jwt_ttl_minutes"`
}

func defaults() Config {
	return Config{
		Port:           "8080",
		MaxUploadBytes: 5 << 20,
		PDFStrategy:    "positional",
		LLMProvider:    "gemini",
		HistoryBackend: "memory",
		HistoryLimit:   10,
		JWTIssuer:      "resumescan",
		JWTTTLMinutes:  60,
	}
}

// Load builds the config from defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables, optionally read from a
// .env file.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.PDFStrategy = getEnv("PDF_STRATEGY", cfg.PDFStrategy)
	cfg.LLMProvider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.LLMProvider))
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", cfg.Gemini.Model)
	cfg.Gemini.BaseURL = getEnv("GEMINI_BASE_URL", cfg.Gemini.BaseURL)
	cfg.OpenRouter.APIKey = getEnv("OPENROUTER_API_KEY", cfg.OpenRouter.APIKey)
	cfg.OpenRouter.BaseURL = getEnv("OPENROUTER_BASE_URL", cfg.OpenRouter.BaseURL)
	cfg.OpenRouter.Model = getEnv("OPENROUTER_MODEL", cfg.OpenRouter.Model)
	cfg.OpenRouter.AppTitle = getEnv("OPENROUTER_APP_TITLE", cfg.OpenRouter.AppTitle)
	cfg.OpenRouter.Referer = getEnv("OPENROUTER_REFERER", cfg.OpenRouter.Referer)
	cfg.HistoryBackend = strings.ToLower(getEnv("HISTORY_BACKEND", cfg.HistoryBackend))
	cfg.HistoryLimit = getEnvInt("HISTORY_LIMIT", cfg.HistoryLimit)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes)

	return cfg, cfg.Validate()
}

// Validate reports settings that would fail at startup.
func (c Config) Validate() error {
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: MAX_UPLOAD_BYTES must be positive", ErrInvalidConfig)
	}
	switch c.LLMProvider {
	case "gemini", "openrouter":
	default:
		return fmt.Errorf("%w: unknown LLM_PROVIDER %q", ErrInvalidConfig, c.LLMProvider)
	}
	switch c.HistoryBackend {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres history backend", ErrInvalidConfig)
		}
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("%w: REDIS_URL is required for the redis history backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown HISTORY_BACKEND %q", ErrInvalidConfig, c.HistoryBackend)
	}
	return nil
}

// AuthEnabled reports whether bearer tokens are required.
func (c Config) AuthEnabled() bool { return c.JWTSecret != "" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
