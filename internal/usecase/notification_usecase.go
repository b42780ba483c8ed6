package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fadilmartias/hirewise/internal/config"
	"github.com/fadilmartias/hirewise/internal/logger"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/repository"
	"github.com/fadilmartias/hirewise/internal/service"
	"go.uber.org/zap"
)

type NotificationUsecase struct {
	userRepo    repository.UserRepositoryInterface
	email       service.EmailServiceInterface
	emailConfig *config.EmailJSConfig
	appURL      string
}

func NewNotificationUsecase(userRepo repository.UserRepositoryInterface, email service.EmailServiceInterface, emailConfig *config.EmailJSConfig, appConfig *config.AppConfig) *NotificationUsecase {
	return &NotificationUsecase{
		userRepo:    userRepo,
		email:       email,
		emailConfig: emailConfig,
		appURL:      strings.TrimRight(appConfig.BaseURL, "/"),
	}
}

// SendFeedbackSummaryEmail is fire-and-forget: missing configuration or a
// missing recipient skips the send, and delivery failures are only logged.
func (uc *NotificationUsecase) SendFeedbackSummaryEmail(ctx context.Context, summary model.FeedbackSummary) {
	log := logger.Logger(ctx).With(zap.String("user_id", summary.UserID), zap.String("feedback_id", summary.FeedbackID))

	if !uc.emailConfig.IsConfigured() {
		log.Warn("EmailJS environment variables are not fully configured. Skipping email send.")
		return
	}

	user, err := uc.userRepo.FindByID(ctx, summary.UserID)
	if err != nil {
		log.Error("failed to load user for feedback summary email", zap.Error(err))
		return
	}
	if user == nil || user.Email == "" {
		log.Warn("unable to send email summary, user not found or email missing")
		return
	}

	req := service.EmailRequest{
		ServiceID:      uc.emailConfig.ServiceID,
		TemplateID:     uc.emailConfig.TemplateID,
		UserID:         uc.emailConfig.PublicKey,
		TemplateParams: uc.templateParams(user, summary),
	}
	if err := uc.email.Send(ctx, req, uc.emailConfig.PrivateKey); err != nil {
		log.Error("failed to send feedback summary email", zap.Error(err))
		return
	}
	log.Info("feedback summary email sent", zap.String("recipient", user.Email))
}

func (uc *NotificationUsecase) templateParams(user *model.User, summary model.FeedbackSummary) map[string]string {
	name := user.Name
	if name == "" {
		name = "there"
	}
	return map[string]string{
		"recipient_email":    user.Email,
		"recipient_name":     name,
		"total_score":        formatScore(summary.TotalScore),
		"final_assessment":   summary.FinalAssessment,
		"category_breakdown": CategoryBreakdown(summary.CategoryScores),
		"feedback_url":       fmt.Sprintf("%s/interview/%s/feedback", uc.appURL, summary.InterviewID),
		"feedback_id":        summary.FeedbackID,
	}
}

// CategoryBreakdown renders one "name: score/100 - comment" line per category.
func CategoryBreakdown(scores []model.CategoryScore) string {
	lines := make([]string, len(scores))
	for i, c := range scores {
		lines[i] = fmt.Sprintf("%s: %s/100 - %s", c.Name, formatScore(c.Score), c.Comment)
	}
	return strings.Join(lines, "\n")
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
