package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/hirewise/internal/config"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const OpenRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

type OpenRouterService struct {
	APIKey   string
	Model    string
	Endpoint string
	client   *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		Endpoint: OpenRouterEndpoint,
		client:   resty.New(),
	}
}

// Score sends the evaluation prompt as a chat completion in JSON mode. The
// rubric in the prompt carries the schema; the answer is validated the same
// way as Gemini's.
func (s *OpenRouterService) Score(ctx context.Context, prompt string) (*model.ScoringResult, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": ScoringSystemInstruction},
				{"role": "user", "content": prompt + "\n" + openRouterShapeHint},
			},
			"response_format": map[string]string{"type": "json_object"},
			"temperature":     0.1,
		}).
		Post(s.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openrouter responded with %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return nil, fmt.Errorf("%w: no content in completion", ErrMalformedScoringResponse)
	}
	return ParseScoringResult(text)
}

const openRouterShapeHint = `Return your answer STRICTLY in JSON format with this schema:
{
  "totalScore": <number 0-100>,
  "categoryScores": [{"name": "<one of the categories above>", "score": <number 0-100>, "comment": "<comment>"}],
  "strengths": ["<strength>"],
  "areasForImprovement": ["<area>"],
  "finalAssessment": "<overall assessment>"
}`
