package dto

import (
	"time"

	"github.com/fadilmartias/hirewise/internal/model"
)

type InterviewDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	Level      string    `json:"level"`
	Type       string    `json:"type"`
	Techstack  []string  `json:"techstack"`
	Questions  []string  `json:"questions"`
	Finalized  bool      `json:"finalized"`
	CoverImage string    `json:"cover_image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewInterviewDTO(i *model.Interview) InterviewDTO {
	return InterviewDTO{
		ID:         i.ID,
		UserID:     i.UserID,
		Role:       i.Role,
		Level:      i.Level,
		Type:       i.Type,
		Techstack:  i.Techstack,
		Questions:  i.Questions,
		Finalized:  i.Finalized,
		CoverImage: i.CoverImage,
		CreatedAt:  i.CreatedAt,
	}
}

func NewInterviewDTOs(items []model.Interview) []InterviewDTO {
	out := make([]InterviewDTO, len(items))
	for i := range items {
		out[i] = NewInterviewDTO(&items[i])
	}
	return out
}

type IndexEmbeddingsResult struct {
	Indexed int `json:"indexed"`
}
