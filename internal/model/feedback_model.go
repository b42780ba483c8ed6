package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CategoryScore struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// Feedback is written once per (interview, user) by the feedback workflow.
// Nothing in the schema enforces that uniqueness.
type Feedback struct {
	ID                  uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID         string                             `gorm:"type:varchar(128);index:idx_feedback_interview_user" json:"interview_id"`
	UserID              string                             `gorm:"type:varchar(128);index:idx_feedback_interview_user" json:"user_id"`
	TotalScore          float64                            `gorm:"type:float" json:"total_score"`
	CategoryScores      datatypes.JSONSlice[CategoryScore] `gorm:"type:jsonb" json:"category_scores"`
	Strengths           datatypes.JSONSlice[string]        `gorm:"type:jsonb" json:"strengths"`
	AreasForImprovement datatypes.JSONSlice[string]        `gorm:"type:jsonb" json:"areas_for_improvement"`
	FinalAssessment     string                             `gorm:"type:text" json:"final_assessment"`
	CreatedAt           time.Time                          `json:"created_at"`
}

func (f *Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
