package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

const ScoringSystemInstruction = "You are a professional interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories"

var ErrMalformedScoringResponse = errors.New("malformed scoring response")

// ScoringServiceInterface is implemented by every provider able to turn an
// evaluation prompt into a validated ScoringResult.
type ScoringServiceInterface interface {
	Score(ctx context.Context, prompt string) (*model.ScoringResult, error)
}

// FeedbackSchema constrains the model output to the feedback shape with the
// closed category set as an enum.
func FeedbackSchema() *genai.Schema {
	score := &genai.Schema{
		Type:    genai.TypeNumber,
		Minimum: genai.Ptr(0.0),
		Maximum: genai.Ptr(100.0),
	}
	stringList := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"totalScore": score,
			"categoryScores": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {
							Type:   genai.TypeString,
							Format: "enum",
							Enum:   append([]string(nil), model.FeedbackCategories...),
						},
						"score":   score,
						"comment": {Type: genai.TypeString},
					},
					Required:         []string{"name", "score", "comment"},
					PropertyOrdering: []string{"name", "score", "comment"},
				},
			},
			"strengths":           stringList,
			"areasForImprovement": stringList,
			"finalAssessment":     {Type: genai.TypeString},
		},
		Required: []string{"totalScore", "categoryScores", "strengths", "areasForImprovement", "finalAssessment"},
		PropertyOrdering: []string{
			"totalScore", "categoryScores", "strengths", "areasForImprovement", "finalAssessment",
		},
	}
}

// ParseScoringResult maps a provider's JSON answer onto ScoringResult,
// rejecting anything outside the expected shape.
func ParseScoringResult(text string) (*model.ScoringResult, error) {
	text = stripCodeFence(text)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedScoringResponse)
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedScoringResponse)
	}

	total, err := scoreField(root.Get("totalScore"), "totalScore")
	if err != nil {
		return nil, err
	}

	categories := root.Get("categoryScores")
	if !categories.IsArray() || len(categories.Array()) == 0 {
		return nil, fmt.Errorf("%w: categoryScores must be a non-empty array", ErrMalformedScoringResponse)
	}
	seen := make(map[string]bool, len(model.FeedbackCategories))
	categoryScores := make([]model.CategoryScore, 0, len(model.FeedbackCategories))
	for i, c := range categories.Array() {
		if !c.IsObject() {
			return nil, fmt.Errorf("%w: categoryScores[%d] is not an object", ErrMalformedScoringResponse, i)
		}
		name := c.Get("name")
		if name.Type != gjson.String || !model.IsFeedbackCategory(name.String()) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrMalformedScoringResponse, name.String())
		}
		if seen[name.String()] {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrMalformedScoringResponse, name.String())
		}
		seen[name.String()] = true

		s, err := scoreField(c.Get("score"), fmt.Sprintf("categoryScores[%d].score", i))
		if err != nil {
			return nil, err
		}
		comment := c.Get("comment")
		if comment.Exists() && comment.Type != gjson.String {
			return nil, fmt.Errorf("%w: categoryScores[%d].comment must be a string", ErrMalformedScoringResponse, i)
		}
		categoryScores = append(categoryScores, model.CategoryScore{
			Name:    name.String(),
			Score:   s,
			Comment: comment.String(),
		})
	}

	strengths, err := stringList(root.Get("strengths"), "strengths")
	if err != nil {
		return nil, err
	}
	areas, err := stringList(root.Get("areasForImprovement"), "areasForImprovement")
	if err != nil {
		return nil, err
	}

	final := root.Get("finalAssessment")
	if final.Type != gjson.String || strings.TrimSpace(final.String()) == "" {
		return nil, fmt.Errorf("%w: finalAssessment must be a non-empty string", ErrMalformedScoringResponse)
	}

	return &model.ScoringResult{
		TotalScore:          total,
		CategoryScores:      categoryScores,
		Strengths:           strengths,
		AreasForImprovement: areas,
		FinalAssessment:     final.String(),
	}, nil
}

func scoreField(v gjson.Result, field string) (float64, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number", ErrMalformedScoringResponse, field)
	}
	n := v.Float()
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("%w: %s out of range: %v", ErrMalformedScoringResponse, field, n)
	}
	return n, nil
}

func stringList(v gjson.Result, field string) ([]string, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s must be an array", ErrMalformedScoringResponse, field)
	}
	out := make([]string, 0, len(v.Array()))
	for _, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s must only contain strings", ErrMalformedScoringResponse, field)
		}
		out = append(out, item.String())
	}
	return out, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some chat models add.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
