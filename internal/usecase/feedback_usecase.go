package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/logger"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/repository"
	"github.com/fadilmartias/hirewise/internal/service"
	"go.uber.org/zap"
)

// FeedbackNotifier delivers the feedback summary. Implementations must not
// fail the caller.
type FeedbackNotifier interface {
	SendFeedbackSummaryEmail(ctx context.Context, summary model.FeedbackSummary)
}

type FeedbackUsecase struct {
	feedbackRepo repository.FeedbackRepositoryInterface
	scorer       service.ScoringServiceInterface
	notifier     FeedbackNotifier
	now          func() time.Time
}

func NewFeedbackUsecase(feedbackRepo repository.FeedbackRepositoryInterface, scorer service.ScoringServiceInterface, notifier FeedbackNotifier) *FeedbackUsecase {
	return &FeedbackUsecase{
		feedbackRepo: feedbackRepo,
		scorer:       scorer,
		notifier:     notifier,
		now:          time.Now,
	}
}

// CreateFeedback scores the transcript, stores the result and then sends the
// summary email. Steps run strictly in that order. Two concurrent calls for
// the same interview and user both persist a record.
func (uc *FeedbackUsecase) CreateFeedback(ctx context.Context, req dto.CreateFeedbackRequest) dto.CreateFeedbackResult {
	log := logger.Logger(ctx).With(zap.String("interview_id", req.InterviewID), zap.String("user_id", req.UserID))

	feedback, err := uc.scoreAndStore(ctx, req)
	if err != nil {
		log.Error("error in generating feedback", zap.Error(err))
		return dto.CreateFeedbackResult{Success: false}
	}
	log.Info("feedback stored", zap.String("feedback_id", feedback.ID.String()), zap.Float64("total_score", feedback.TotalScore))

	if uc.notifier != nil {
		uc.notifier.SendFeedbackSummaryEmail(ctx, model.FeedbackSummary{
			UserID:          req.UserID,
			InterviewID:     req.InterviewID,
			FeedbackID:      feedback.ID.String(),
			TotalScore:      feedback.TotalScore,
			FinalAssessment: feedback.FinalAssessment,
			CategoryScores:  feedback.CategoryScores,
		})
	}

	return dto.CreateFeedbackResult{Success: true, FeedbackID: feedback.ID.String()}
}

func (uc *FeedbackUsecase) scoreAndStore(ctx context.Context, req dto.CreateFeedbackRequest) (*model.Feedback, error) {
	formattedTranscript := FormatTranscript(req.Entries())
	logger.Logger(ctx).Debug("formatted transcript", zap.String("transcript", formattedTranscript))

	result, err := uc.scorer.Score(ctx, BuildFeedbackPrompt(formattedTranscript))
	if err != nil {
		return nil, fmt.Errorf("%w: score transcript: %w", ErrProvider, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: scorer returned no result", ErrProvider)
	}

	feedback := &model.Feedback{
		InterviewID:         req.InterviewID,
		UserID:              req.UserID,
		TotalScore:          result.TotalScore,
		CategoryScores:      result.CategoryScores,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		FinalAssessment:     result.FinalAssessment,
		CreatedAt:           uc.now().UTC(),
	}
	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("%w: store feedback: %w", ErrProvider, err)
	}
	return feedback, nil
}

// GetFeedbackByInterviewID returns nil when the user has no feedback for the
// interview. Store failures are logged and also read as absence.
func (uc *FeedbackUsecase) GetFeedbackByInterviewID(ctx context.Context, interviewID, userID string) *model.Feedback {
	feedback, err := uc.feedbackRepo.FindByInterviewAndUser(ctx, interviewID, userID)
	if err != nil {
		logger.Logger(ctx).Error("failed to load feedback",
			zap.String("interview_id", interviewID), zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	return feedback
}
