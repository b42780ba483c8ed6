package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoring(total float64) *model.ScoringResult {
	return &model.ScoringResult{
		TotalScore: total,
		CategoryScores: []model.CategoryScore{
			{Name: model.CategoryCommunication, Score: 75, Comment: "clear"},
			{Name: model.CategoryTechnical, Score: 70, Comment: "ok"},
		},
		Strengths:           []string{"concise"},
		AreasForImprovement: []string{"depth"},
		FinalAssessment:     "Good effort.",
	}
}

func TestFormatTranscript(t *testing.T) {
	assert.Equal(t, "- user: Hi\n", FormatTranscript([]model.TranscriptEntry{{Role: "user", Content: "Hi"}}))
	assert.Equal(t, "", FormatTranscript(nil))

	transcript := []model.TranscriptEntry{
		{Role: "assistant", Content: "Tell me about yourself."},
		{Role: "user", Content: "I build APIs."},
		{Role: "assistant", Content: "Why Go?"},
	}
	lines := strings.Split(strings.TrimSuffix(FormatTranscript(transcript), "\n"), "\n")

	require.Len(t, lines, len(transcript))
	for i, e := range transcript {
		assert.Equal(t, "- "+e.Role+": "+e.Content, lines[i])
	}
}

func TestBuildFeedbackPromptListsEveryCategory(t *testing.T) {
	prompt := BuildFeedbackPrompt("- user: Hi\n")

	assert.Contains(t, prompt, "Transcript:\n- user: Hi\n")
	assert.Contains(t, prompt, "Do not add categories other than the ones provided")
	for _, c := range model.FeedbackCategories {
		assert.Contains(t, prompt, "- "+c+": ")
	}
}

func TestCreateFeedback(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateFeedbackRequest{
		InterviewID: "interview-1",
		UserID:      "uid-1",
		Transcript:  []dto.TranscriptEntryDTO{{Role: "user", Content: "Hi"}},
	}

	t.Run("scores, stores and notifies", func(t *testing.T) {
		repo := &fakeFeedbackRepo{}
		scorer := &fakeScorer{result: scoring(72)}
		notifier := &fakeNotifier{}
		uc := NewFeedbackUsecase(repo, scorer, notifier)
		fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		res := uc.CreateFeedback(ctx, req)

		require.True(t, res.Success)
		require.NotEmpty(t, res.FeedbackID)
		require.Len(t, scorer.prompts, 1)
		assert.Contains(t, scorer.prompts[0], "- user: Hi\n")

		stored := repo.byID(res.FeedbackID)
		require.NotNil(t, stored)
		assert.Equal(t, 72.0, stored.TotalScore)
		assert.Equal(t, "interview-1", stored.InterviewID)
		assert.Equal(t, "uid-1", stored.UserID)
		assert.Equal(t, fixed, stored.CreatedAt)
		assert.Len(t, stored.CategoryScores, 2)

		require.Len(t, notifier.calls, 1)
		assert.Equal(t, model.FeedbackSummary{
			UserID:          "uid-1",
			InterviewID:     "interview-1",
			FeedbackID:      res.FeedbackID,
			TotalScore:      72,
			FinalAssessment: "Good effort.",
			CategoryScores:  scoring(72).CategoryScores,
		}, notifier.calls[0])
	})

	t.Run("scoring failure persists nothing", func(t *testing.T) {
		repo := &fakeFeedbackRepo{}
		notifier := &fakeNotifier{}
		uc := NewFeedbackUsecase(repo, &fakeScorer{err: errors.New("model overloaded")}, notifier)

		res := uc.CreateFeedback(ctx, req)

		assert.Equal(t, dto.CreateFeedbackResult{Success: false}, res)
		assert.Empty(t, repo.rows)
		assert.Empty(t, notifier.calls)
	})

	t.Run("empty scoring result persists nothing", func(t *testing.T) {
		repo := &fakeFeedbackRepo{}
		uc := NewFeedbackUsecase(repo, &fakeScorer{}, &fakeNotifier{})

		assert.False(t, uc.CreateFeedback(ctx, req).Success)
		assert.Empty(t, repo.rows)
	})

	t.Run("store failure skips notification", func(t *testing.T) {
		notifier := &fakeNotifier{}
		uc := NewFeedbackUsecase(&fakeFeedbackRepo{createErr: errStore}, &fakeScorer{result: scoring(50)}, notifier)

		assert.False(t, uc.CreateFeedback(ctx, req).Success)
		assert.Empty(t, notifier.calls)
	})

	t.Run("works without a notifier", func(t *testing.T) {
		uc := NewFeedbackUsecase(&fakeFeedbackRepo{}, &fakeScorer{result: scoring(50)}, nil)
		assert.True(t, uc.CreateFeedback(ctx, req).Success)
	})
}

func TestGetFeedbackByInterviewID(t *testing.T) {
	ctx := context.Background()
	first := &model.Feedback{ID: uuid.New(), InterviewID: "interview-1", UserID: "uid-1", TotalScore: 40}
	duplicate := &model.Feedback{ID: uuid.New(), InterviewID: "interview-1", UserID: "uid-1", TotalScore: 90}
	other := &model.Feedback{ID: uuid.New(), InterviewID: "interview-1", UserID: "uid-2", TotalScore: 10}
	repo := &fakeFeedbackRepo{rows: []*model.Feedback{other, first, duplicate}}
	uc := NewFeedbackUsecase(repo, &fakeScorer{}, nil)

	assert.Nil(t, uc.GetFeedbackByInterviewID(ctx, "interview-2", "uid-1"))
	assert.Same(t, first, uc.GetFeedbackByInterviewID(ctx, "interview-1", "uid-1"))

	repo.findErr = errStore
	assert.Nil(t, uc.GetFeedbackByInterviewID(ctx, "interview-1", "uid-1"))
}
