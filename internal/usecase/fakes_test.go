package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

var errStore = errors.New("store unavailable")

type fakeUserRepo struct {
	users       map[string]*model.User
	findErr     error
	createErr   error
	createCalls int
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.ID] = user
	return nil
}

type fakeIdentity struct {
	sessions   map[string]string
	mintErr    error
	mintCalls  int
	lastExpiry time.Duration
}

func (f *fakeIdentity) MintSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	f.mintCalls++
	f.lastExpiry = expiresIn
	if f.mintErr != nil {
		return "", f.mintErr
	}
	return "session-for-" + idToken, nil
}

func (f *fakeIdentity) VerifySessionCookie(ctx context.Context, sessionCookie string) (string, error) {
	uid, ok := f.sessions[sessionCookie]
	if !ok {
		return "", errors.New("session cookie is invalid")
	}
	return uid, nil
}

type fakeJar struct {
	set []SessionCookie
	in  map[string]string
}

func (j *fakeJar) SetCookie(cookie SessionCookie) {
	j.set = append(j.set, cookie)
}

func (j *fakeJar) Cookie(name string) string {
	return j.in[name]
}

type fakeScorer struct {
	result  *model.ScoringResult
	err     error
	prompts []string
}

func (s *fakeScorer) Score(ctx context.Context, prompt string) (*model.ScoringResult, error) {
	s.prompts = append(s.prompts, prompt)
	return s.result, s.err
}

type fakeFeedbackRepo struct {
	rows      []*model.Feedback
	createErr error
	findErr   error
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	if r.createErr != nil {
		return r.createErr
	}
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	r.rows = append(r.rows, feedback)
	return nil
}

func (r *fakeFeedbackRepo) FindByInterviewAndUser(ctx context.Context, interviewID, userID string) (*model.Feedback, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, f := range r.rows {
		if f.InterviewID == interviewID && f.UserID == userID {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) byID(id string) *model.Feedback {
	for _, f := range r.rows {
		if f.ID.String() == id {
			return f
		}
	}
	return nil
}

type fakeNotifier struct {
	calls []model.FeedbackSummary
}

func (n *fakeNotifier) SendFeedbackSummaryEmail(ctx context.Context, summary model.FeedbackSummary) {
	n.calls = append(n.calls, summary)
}

type fakeInterviewRepo struct {
	interviews    map[string]*model.Interview
	err           error
	lastPage      int
	lastPageSize  int
	lastLimit     int
	lastExclude   string
	unindexed     []model.Interview
	embeddings    map[string]pgvector.Vector
	updateErrFor  string
	similar       []model.Interview
	searchedTopK  int
	searchedQuery pgvector.Vector
}

func (r *fakeInterviewRepo) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.interviews[id], nil
}

func (r *fakeInterviewRepo) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]model.Interview, int64, error) {
	r.lastPage, r.lastPageSize = page, pageSize
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []model.Interview
	for _, i := range r.interviews {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInterviewRepo) FindLatest(ctx context.Context, excludeUserID string, limit int) ([]model.Interview, error) {
	r.lastLimit, r.lastExclude = limit, excludeUserID
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

func (r *fakeInterviewRepo) FindWithoutEmbedding(ctx context.Context, limit int) ([]model.Interview, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.unindexed, nil
}

func (r *fakeInterviewRepo) UpdateEmbedding(ctx context.Context, id string, embedding pgvector.Vector) error {
	if id == r.updateErrFor {
		return errStore
	}
	if r.embeddings == nil {
		r.embeddings = map[string]pgvector.Vector{}
	}
	r.embeddings[id] = embedding
	return nil
}

func (r *fakeInterviewRepo) SearchSimilar(ctx context.Context, embedding pgvector.Vector, excludeUserID string, topK int) ([]model.Interview, error) {
	r.searchedQuery, r.lastExclude, r.searchedTopK = embedding, excludeUserID, topK
	if r.err != nil {
		return nil, r.err
	}
	return r.similar, nil
}

type fakeEmbedder struct {
	failFor string
	inputs  []string
}

func (e *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	e.inputs = append(e.inputs, text)
	if e.failFor != "" && text == e.failFor {
		return nil, errors.New("embedding quota exceeded")
	}
	return []float32{0.1, 0.2, 0.3}, nil
}
