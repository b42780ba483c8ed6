package dto

import (
	"time"

	"github.com/fadilmartias/hirewise/internal/model"
)

type TranscriptEntryDTO struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type CreateFeedbackRequest struct {
	InterviewID string               `json:"interviewId" validate:"required"`
	UserID      string               `json:"-"`
	Transcript  []TranscriptEntryDTO `json:"transcript" validate:"min=1,dive"`
}

func (r CreateFeedbackRequest) Entries() []model.TranscriptEntry {
	entries := make([]model.TranscriptEntry, len(r.Transcript))
	for i, e := range r.Transcript {
		entries[i] = model.TranscriptEntry{Role: e.Role, Content: e.Content}
	}
	return entries
}

type CreateFeedbackResult struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
	Message    string `json:"message,omitempty"`
}

type FeedbackDTO struct {
	ID                  string                `json:"id"`
	InterviewID         string                `json:"interview_id"`
	UserID              string                `json:"user_id"`
	TotalScore          float64               `json:"total_score"`
	CategoryScores      []model.CategoryScore `json:"category_scores"`
	Strengths           []string              `json:"strengths"`
	AreasForImprovement []string              `json:"areas_for_improvement"`
	FinalAssessment     string                `json:"final_assessment"`
	CreatedAt           time.Time             `json:"created_at"`
}

func NewFeedbackDTO(f *model.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:                  f.ID.String(),
		InterviewID:         f.InterviewID,
		UserID:              f.UserID,
		TotalScore:          f.TotalScore,
		CategoryScores:      f.CategoryScores,
		Strengths:           f.Strengths,
		AreasForImprovement: f.AreasForImprovement,
		FinalAssessment:     f.FinalAssessment,
		CreatedAt:           f.CreatedAt,
	}
}
