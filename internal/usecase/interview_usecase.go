package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/hirewise/internal/logger"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/repository"
	"github.com/fadilmartias/hirewise/internal/response"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const (
	DefaultLatestLimit = 20
	DefaultPageSize    = 10
	MaxPageSize        = 100
	DefaultSimilarTopK = 5
	embeddingBatchSize = 50
)

var ErrEmbeddingUnavailable = errors.New("embedding provider not configured")

type EmbeddingServiceInterface interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type InterviewUsecase struct {
	interviewRepo repository.InterviewRepositoryInterface
	embedder      EmbeddingServiceInterface
}

// NewInterviewUsecase accepts a nil embedder; similarity features then
// report ErrEmbeddingUnavailable.
func NewInterviewUsecase(interviewRepo repository.InterviewRepositoryInterface, embedder EmbeddingServiceInterface) *InterviewUsecase {
	return &InterviewUsecase{interviewRepo: interviewRepo, embedder: embedder}
}

func (uc *InterviewUsecase) GetInterviewsByUserID(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	interviews, total, err := uc.interviewRepo.FindByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: list interviews: %w", ErrProvider, err)
	}
	return interviews, response.NewPagination(page, pageSize, total, len(interviews)), nil
}

// GetLatestInterviews lists finalized interviews of other users, newest first.
func (uc *InterviewUsecase) GetLatestInterviews(ctx context.Context, userID string, limit int) ([]model.Interview, error) {
	if limit < 1 {
		limit = DefaultLatestLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	interviews, err := uc.interviewRepo.FindLatest(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: latest interviews: %w", ErrProvider, err)
	}
	return interviews, nil
}

func (uc *InterviewUsecase) GetInterviewByID(ctx context.Context, id string) (*model.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find interview: %w", ErrProvider, err)
	}
	if interview == nil {
		return nil, ErrNotFound
	}
	return interview, nil
}

// IndexInterviewEmbeddings embeds one batch of finalized interviews that have
// no embedding yet and reports how many were stored. Individual failures are
// logged and skipped.
func (uc *InterviewUsecase) IndexInterviewEmbeddings(ctx context.Context) (int, error) {
	if uc.embedder == nil {
		return 0, ErrEmbeddingUnavailable
	}

	interviews, err := uc.interviewRepo.FindWithoutEmbedding(ctx, embeddingBatchSize)
	if err != nil {
		return 0, fmt.Errorf("%w: list unindexed interviews: %w", ErrProvider, err)
	}

	indexed := 0
	for i := range interviews {
		interview := &interviews[i]
		values, err := uc.embedder.GenerateEmbedding(ctx, InterviewEmbeddingText(interview))
		if err != nil {
			logger.Logger(ctx).Warn("failed to embed interview", zap.String("interview_id", interview.ID), zap.Error(err))
			continue
		}
		if err := uc.interviewRepo.UpdateEmbedding(ctx, interview.ID, pgvector.NewVector(values)); err != nil {
			logger.Logger(ctx).Warn("failed to store interview embedding", zap.String("interview_id", interview.ID), zap.Error(err))
			continue
		}
		indexed++
	}
	return indexed, nil
}

// SearchSimilarInterviews finds finalized interviews of other users closest
// to query.
func (uc *InterviewUsecase) SearchSimilarInterviews(ctx context.Context, userID, query string, topK int) ([]model.Interview, error) {
	if uc.embedder == nil {
		return nil, ErrEmbeddingUnavailable
	}
	if topK < 1 || topK > MaxPageSize {
		topK = DefaultSimilarTopK
	}

	values, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %w", ErrProvider, err)
	}
	interviews, err := uc.interviewRepo.SearchSimilar(ctx, pgvector.NewVector(values), userID, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: similar interviews: %w", ErrProvider, err)
	}
	return interviews, nil
}

func InterviewEmbeddingText(i *model.Interview) string {
	parts := []string{"Role: " + i.Role}
	if i.Level != "" {
		parts = append(parts, "Level: "+i.Level)
	}
	if i.Type != "" {
		parts = append(parts, "Type: "+i.Type)
	}
	if len(i.Techstack) > 0 {
		parts = append(parts, "Techstack: "+strings.Join(i.Techstack, ", "))
	}
	return strings.Join(parts, "\n")
}
