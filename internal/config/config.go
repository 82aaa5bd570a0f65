// Package config provides configuration management for TrendPulse.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Generator selections.
const (
	GeneratorAuto      = "auto"
	GeneratorSynthetic = "synthetic"
	GeneratorGemini    = "gemini"
	GeneratorOpenAI    = "openai"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Generator settings
	Generator string

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string

	// OpenAI-compatible settings
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Enrichment API settings
	TavilyAPIKey     string
	EnableEnrichment bool

	// Storage settings
	StoreBackend  string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// Server settings
	HTTPAddr           string
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
	Debug              bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		Generator: strings.ToLower(getEnv("GENERATOR", GeneratorAuto)),

		// Gemini
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// OpenAI-compatible
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// Enrichment
		TavilyAPIKey:     getEnv("TAVILY_API_KEY", ""),
		EnableEnrichment: getEnvBool("ENABLE_ENRICHMENT", true),

		// Storage
		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "trendpulse"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "trendpulse:"),

		// Server
		HTTPAddr:           getEnv("HTTP_ADDR", ":5000"),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Debug:              getEnvBool("DEBUG", false),
	}

	return cfg, nil
}

// Validate checks that the selected backends are known and have what they need.
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorAuto, GeneratorSynthetic:
	case GeneratorGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GENERATOR=gemini requires GEMINI_API_KEY")
		}
	case GeneratorOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("GENERATOR=openai requires OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown GENERATOR %q", c.Generator)
	}

	switch c.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("STORE_BACKEND=mongo requires MONGO_URI")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("STORE_BACKEND=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if c.Generator == GeneratorAuto && c.GeminiAPIKey == "" && c.OpenAIAPIKey == "" {
		log.Warn().Msg("No model API key set, analyses will be synthetic")
	}
	if c.EnableEnrichment && c.TavilyAPIKey == "" {
		log.Warn().Msg("TAVILY_API_KEY not set, news enrichment will be disabled")
	}
	return nil
}

// ResolveGenerator returns the concrete generator for the "auto" selection:
// Gemini when its key is set, then OpenAI, then synthetic.
func (c *Config) ResolveGenerator() string {
	if c.Generator != GeneratorAuto {
		return c.Generator
	}
	switch {
	case c.GeminiAPIKey != "":
		return GeneratorGemini
	case c.OpenAIAPIKey != "":
		return GeneratorOpenAI
	default:
		return GeneratorSynthetic
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
