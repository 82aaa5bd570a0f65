package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GENERATOR", "GEMINI_API_KEY", "GEMINI_MODEL", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "OPENAI_MODEL", "TAVILY_API_KEY", "ENABLE_ENRICHMENT",
		"STORE_BACKEND", "MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "REDIS_PREFIX", "HTTP_ADDR", "REQUEST_TIMEOUT",
		"CORS_ALLOWED_ORIGINS", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, GeneratorAuto, cfg.Generator)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, GeneratorSynthetic, cfg.ResolveGenerator())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATOR", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REQUEST_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://trendpulse.ng ,")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, GeneratorOpenAI, cfg.Generator)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://trendpulse.ng"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "three")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Generator: GeneratorGemini, StoreBackend: StoreMemory, RequestTimeout: time.Second}, true},
		{"openai without key", Config{Generator: GeneratorOpenAI, StoreBackend: StoreMemory, RequestTimeout: time.Second}, true},
		{"unknown generator", Config{Generator: "claude", StoreBackend: StoreMemory, RequestTimeout: time.Second}, true},
		{"unknown store", Config{Generator: GeneratorSynthetic, StoreBackend: "sqlite", RequestTimeout: time.Second}, true},
		{"mongo without uri", Config{Generator: GeneratorSynthetic, StoreBackend: StoreMongo, RequestTimeout: time.Second}, true},
		{"zero timeout", Config{Generator: GeneratorSynthetic, StoreBackend: StoreMemory}, true},
		{"gemini with key", Config{Generator: GeneratorGemini, GeminiAPIKey: "k", StoreBackend: StoreMemory, RequestTimeout: time.Second}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveGenerator(t *testing.T) {
	cfg := Config{Generator: GeneratorAuto, GeminiAPIKey: "g", OpenAIAPIKey: "o"}
	assert.Equal(t, GeneratorGemini, cfg.ResolveGenerator())

	cfg.GeminiAPIKey = ""
	assert.Equal(t, GeneratorOpenAI, cfg.ResolveGenerator())

	cfg.Generator = GeneratorSynthetic
	assert.Equal(t, GeneratorSynthetic, cfg.ResolveGenerator())
}
