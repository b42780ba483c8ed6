package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/hirewise/internal/model"
)

var categoryCriteria = map[string]string{
	model.CategoryCommunication:   "Clarity, articulation, structured responses.",
	model.CategoryTechnical:       "Understanding of key concepts for the role.",
	model.CategoryProblemSolving:  "Ability to analyze problems and propose solutions.",
	model.CategoryCulturalFit:     "Alignment with company values and job role.",
	model.CategoryConfidenceClear: "Confidence in responses, engagement, and clarity.",
}

// FormatTranscript renders one "- role: content" line per turn, in order.
func FormatTranscript(transcript []model.TranscriptEntry) string {
	var b strings.Builder
	for _, sentence := range transcript {
		fmt.Fprintf(&b, "- %s: %s\n", sentence.Role, sentence.Content)
	}
	return b.String()
}

func BuildFeedbackPrompt(formattedTranscript string) string {
	var rubric strings.Builder
	for _, name := range model.FeedbackCategories {
		fmt.Fprintf(&rubric, "- %s: %s\n", name, categoryCriteria[name])
	}

	return fmt.Sprintf(`You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s
Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
%s`, formattedTranscript, rubric.String())
}
