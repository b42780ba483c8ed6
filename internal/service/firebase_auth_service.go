package service

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/fadilmartias/hirewise/internal/config"
	"google.golang.org/api/option"
)

// IdentityServiceInterface is the slice of the identity provider the auth
// workflow needs: exchanging ID tokens for session cookies and verifying them.
type IdentityServiceInterface interface {
	MintSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifySessionCookie(ctx context.Context, sessionCookie string) (string, error)
}

type FirebaseAuthService struct {
	client *auth.Client
}

func NewFirebaseAuthService(ctx context.Context) (*FirebaseAuthService, error) {
	cfg := config.LoadFirebaseConfig()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth: %w", err)
	}
	return &FirebaseAuthService{client: client}, nil
}

func (s *FirebaseAuthService) MintSessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error) {
	cookie, err := s.client.SessionCookie(ctx, idToken, expiresIn)
	if err != nil {
		return "", fmt.Errorf("create session cookie: %w", err)
	}
	return cookie, nil
}

// VerifySessionCookie returns the uid the cookie was minted for. Revoked
// sessions are rejected.
func (s *FirebaseAuthService) VerifySessionCookie(ctx context.Context, sessionCookie string) (string, error) {
	token, err := s.client.VerifySessionCookieAndCheckRevoked(ctx, sessionCookie)
	if err != nil {
		return "", fmt.Errorf("verify session cookie: %w", err)
	}
	return token.UID, nil
}
