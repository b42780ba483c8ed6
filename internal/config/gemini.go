package config

import (
	"os"
	"strconv"
	"sync"
)

type GeminiConfig struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	MaxRetries     int
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			Model:          getEnvDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
			EmbeddingModel: getEnvDefault("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001"),
		}
		// every provider call is attempted once unless explicitly configured
		if v, err := strconv.Atoi(os.Getenv("GEMINI_MAX_RETRIES")); err == nil && v > 0 {
			geminiConfig.MaxRetries = v
		}
	})
	return geminiConfig
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
