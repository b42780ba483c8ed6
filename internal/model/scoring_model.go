package model

// Closed set of rubric categories. Scoring results naming anything else are
// rejected.
const (
	CategoryCommunication   = "Communication Skills"
	CategoryTechnical       = "Technical Knowledge"
	CategoryProblemSolving  = "Problem Solving"
	CategoryCulturalFit     = "Cultural Fit"
	CategoryConfidenceClear = "Confidence and Clarity"
)

var FeedbackCategories = []string{
	CategoryCommunication,
	CategoryTechnical,
	CategoryProblemSolving,
	CategoryCulturalFit,
	CategoryConfidenceClear,
}

func IsFeedbackCategory(name string) bool {
	for _, c := range FeedbackCategories {
		if c == name {
			return true
		}
	}
	return false
}

type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ScoringResult struct {
	TotalScore          float64         `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
}

// FeedbackSummary is what the summary email is rendered from.
type FeedbackSummary struct {
	UserID          string
	InterviewID     string
	FeedbackID      string
	TotalScore      float64
	FinalAssessment string
	CategoryScores  []CategoryScore
}
