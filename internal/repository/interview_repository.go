package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type InterviewRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.Interview, error)
	FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, int64, error)
	FindLatest(ctx context.Context, excludeUserID string, limit int) ([]model.Interview, error)
	FindWithoutEmbedding(ctx context.Context, limit int) ([]model.Interview, error)
	UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error
	SearchSimilar(ctx context.Context, embedding pgvector.Vector, excludeUserID string, topK int) ([]model.Interview, error)
}

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.WithContext(ctx).First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, int64, error) {
	var (
		interviews []model.Interview
		total      int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("user_id = ?", userID).
		Session(&gorm.Session{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&interviews).Error
	return interviews, total, err
}

// FindLatest lists finalized interviews taken by anyone but excludeUserID.
func (r *InterviewRepository) FindLatest(ctx context.Context, excludeUserID string, limit int) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.WithContext(ctx).
		Where("finalized = ?", true).
		Where("user_id <> ?", excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) FindWithoutEmbedding(ctx context.Context, limit int) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.WithContext(ctx).
		Where("finalized = ?", true).
		Where("embedding IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("embedding", embedding).Error
}

func (r *InterviewRepository) SearchSimilar(ctx context.Context, embedding pgvector.Vector, excludeUserID string, topK int) ([]model.Interview, error) {
	var interviews []model.Interview

	// <-> is pgvector's euclidean distance operator
	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM interviews
        WHERE finalized = TRUE AND embedding IS NOT NULL AND user_id <> ?
        ORDER BY embedding <-> ?
        LIMIT ?
    `, excludeUserID, embedding, topK).Scan(&interviews).Error

	return interviews, err
}
