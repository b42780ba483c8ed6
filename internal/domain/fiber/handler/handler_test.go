package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/hirewise/internal/config"
	"github.com/fadilmartias/hirewise/internal/middleware"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUsers struct {
	users map[string]*model.User
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*model.User, error) {
	return m.users[id], nil
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) Create(ctx context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

type stubIdentity struct{}

func (stubIdentity) MintSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	return "minted-" + idToken, nil
}

func (stubIdentity) VerifySessionCookie(ctx context.Context, sessionCookie string) (string, error) {
	if uid, ok := strings.CutPrefix(sessionCookie, "minted-"); ok {
		return uid, nil
	}
	return "", errors.New("invalid session cookie")
}

type memoryFeedback struct {
	rows []*model.Feedback
}

func (m *memoryFeedback) Create(ctx context.Context, f *model.Feedback) error {
	f.ID = uuid.New()
	m.rows = append(m.rows, f)
	return nil
}

func (m *memoryFeedback) FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	for _, f := range m.rows {
		if f.InterviewID == interviewID && f.UserID == userID {
			return f, nil
		}
	}
	return nil, nil
}

type fixedScorer struct {
	err error
}

func (s fixedScorer) Score(ctx context.Context, prompt string) (*model.ScoringResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.ScoringResult{
		TotalScore:      72,
		CategoryScores:  []model.CategoryScore{{Name: model.CategoryTechnical, Score: 72, Comment: "ok"}},
		FinalAssessment: "Solid.",
	}, nil
}

func newTestApp(scorer fixedScorer) (*fiber.App, *memoryUsers, *memoryFeedback) {
	users := &memoryUsers{users: map[string]*model.User{
		"uid-1": {ID: "uid-1", Name: "Ada", Email: "ada@example.com"},
	}}
	feedback := &memoryFeedback{}

	authUC := usecase.NewAuthUsecase(users, stubIdentity{}, &config.AppConfig{Env: "development"})
	feedbackUC := usecase.NewFeedbackUsecase(feedback, scorer, nil)

	app := fiber.New()
	api := app.Group("/api")
	requireSession := middleware.RequireSession(authUC)
	NewAuthHandler(authUC).RegisterRoutes(api)
	NewFeedbackHandler(feedbackUC).RegisterRoutes(api, requireSession)
	return app, users, feedback
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestSignUpHandler(t *testing.T) {
	app, users, _ := newTestApp(fixedScorer{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/sign-up", `{"uid":"uid-2","name":"Grace","email":"grace@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, users.users, "uid-2")

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/sign-up", `{"uid":"uid-2","name":"Grace","email":"grace@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists. Please sign in instead.", body["message"])

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/sign-up", `{"name":"G","email":"nope"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSignInHandler(t *testing.T) {
	app, _, _ := newTestApp(fixedScorer{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/sign-in", `{"email":"ghost@example.com","idToken":"uid-9"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/sign-in", `{"email":"ada@example.com","idToken":"uid-1"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := strings.ToLower(resp.Header.Get("Set-Cookie"))
	assert.Contains(t, cookie, "session=minted-uid-1")
	assert.Contains(t, cookie, "max-age=604800")
	assert.Contains(t, cookie, "httponly")
	assert.Contains(t, cookie, "samesite=lax")
	assert.NotContains(t, cookie, "secure")
}

func TestMeHandler(t *testing.T) {
	app, _, _ := newTestApp(fixedScorer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, false, data["authenticated"])

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "minted-uid-1"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	data = decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, true, data["authenticated"])
	assert.Equal(t, "ada@example.com", data["user"].(map[string]any)["email"])
}

func TestFeedbackHandlers(t *testing.T) {
	app, _, store := newTestApp(fixedScorer{})
	transcript := `{"interviewId":"interview-1","transcript":[{"role":"user","content":"Hi"}]}`

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/feedback", transcript))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := jsonRequest(http.MethodPost, "/api/feedback", transcript)
	req.AddCookie(&http.Cookie{Name: "session", Value: "minted-uid-1"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, store.rows, 1)
	assert.Equal(t, "uid-1", store.rows[0].UserID)
	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, store.rows[0].ID.String(), data["feedbackId"])

	req = httptest.NewRequest(http.MethodGet, "/api/interviews/interview-1/feedback", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "minted-uid-1"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, 72.0, data["total_score"])

	req = httptest.NewRequest(http.MethodGet, "/api/interviews/interview-2/feedback", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "minted-uid-1"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateFeedbackHandlerScoringFailure(t *testing.T) {
	app, _, store := newTestApp(fixedScorer{err: errors.New("quota exceeded")})

	req := jsonRequest(http.MethodPost, "/api/feedback", `{"interviewId":"interview-1","transcript":[{"role":"user","content":"Hi"}]}`)
	req.AddCookie(&http.Cookie{Name: "session", Value: "minted-uid-1"})
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, store.rows)
}
