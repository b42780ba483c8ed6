package config

import (
	"os"
	"strings"
	"sync"
)

const (
	ScoringProviderGemini     = "gemini"
	ScoringProviderOpenRouter = "openrouter"
)

type ScoringConfig struct {
	Provider string
}

var (
	scoringConfig *ScoringConfig
	scoringOnce   sync.Once
)

func LoadScoringConfig() *ScoringConfig {
	scoringOnce.Do(func() {
		provider := strings.ToLower(os.Getenv("SCORING_PROVIDER"))
		if provider != ScoringProviderOpenRouter {
			provider = ScoringProviderGemini
		}
		scoringConfig = &ScoringConfig{Provider: provider}
	})
	return scoringConfig
}
