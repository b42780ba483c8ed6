package repository

import (
	"context"

	"github.com/fadilmartias/hirewise/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// FindByInterviewAndUser returns the first match in the store's own order,
// or nil, nil when there is none.
func (r *FeedbackRepository) FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	var rows []model.Feedback
	err := r.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
