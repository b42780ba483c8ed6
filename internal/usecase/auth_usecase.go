package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/hirewise/internal/config"
	"github.com/fadilmartias/hirewise/internal/dto"
	"github.com/fadilmartias/hirewise/internal/logger"
	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/repository"
	"github.com/fadilmartias/hirewise/internal/service"
	"go.uber.org/zap"
)

type AuthUsecase struct {
	userRepo   repository.UserRepositoryInterface
	identity   service.IdentityServiceInterface
	production bool
}

func NewAuthUsecase(userRepo repository.UserRepositoryInterface, identity service.IdentityServiceInterface, appConfig *config.AppConfig) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, identity: identity, production: appConfig.IsProduction()}
}

// SignUp stores the profile under the provider uid. A uid that already has a
// profile is refused without writing anything.
func (uc *AuthUsecase) SignUp(ctx context.Context, req dto.SignUpRequest) dto.ActionResult {
	err := uc.signUp(ctx, req)
	switch {
	case err == nil:
		return dto.ActionResult{Success: true, Message: "Account created successfully"}
	case errors.Is(err, ErrAlreadyExists):
		return dto.ActionResult{Success: false, Message: "User already exists. Please sign in instead."}
	default:
		logger.Logger(ctx).Error("error creating user", zap.String("uid", req.UID), zap.Error(err))
		return dto.ActionResult{Success: false, Message: "Failed to create account"}
	}
}

func (uc *AuthUsecase) signUp(ctx context.Context, req dto.SignUpRequest) error {
	existing, err := uc.userRepo.FindByID(ctx, req.UID)
	if err != nil {
		return fmt.Errorf("%w: find user: %w", ErrProvider, err)
	}
	if existing != nil {
		return ErrAlreadyExists
	}

	user := &model.User{ID: req.UID, Name: req.Name, Email: req.Email}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("%w: create user: %w", ErrProvider, err)
	}
	return nil
}

// SignIn issues a session for a known email. Unknown emails get no cookie.
func (uc *AuthUsecase) SignIn(ctx context.Context, jar SessionJar, req dto.SignInRequest) dto.ActionResult {
	err := uc.signIn(ctx, jar, req)
	switch {
	case err == nil:
		return dto.ActionResult{Success: true, Message: "Signed in successfully"}
	case errors.Is(err, ErrNotFound):
		return dto.ActionResult{Success: false, Message: "User does not exist. Please sign up first."}
	default:
		logger.Logger(ctx).Error("error signing in", zap.String("email", req.Email), zap.Error(err))
		return dto.ActionResult{Success: false, Message: "Sign in failed"}
	}
}

func (uc *AuthUsecase) signIn(ctx context.Context, jar SessionJar, req dto.SignInRequest) error {
	user, err := uc.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("%w: find user by email: %w", ErrProvider, err)
	}
	if user == nil {
		return ErrNotFound
	}
	return uc.SetSessionCookie(ctx, jar, req.IDToken)
}

// SetSessionCookie exchanges a short-lived ID token for a seven day session
// cookie and stores it in jar.
func (uc *AuthUsecase) SetSessionCookie(ctx context.Context, jar SessionJar, idToken string) error {
	value, err := uc.identity.MintSessionCookie(ctx, idToken, SessionDuration)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	jar.SetCookie(uc.sessionCookie(value, SessionDuration))
	return nil
}

// SignOut overwrites the session cookie with an already expired one.
func (uc *AuthUsecase) SignOut(jar SessionJar) dto.ActionResult {
	jar.SetCookie(uc.sessionCookie("", -1))
	return dto.ActionResult{Success: true, Message: "Signed out successfully"}
}

// GetCurrentUser resolves the session cookie to a stored user. Any failure
// along the way yields nil.
func (uc *AuthUsecase) GetCurrentUser(ctx context.Context, jar SessionJar) *model.User {
	value := jar.Cookie(SessionCookieName)
	if value == "" {
		return nil
	}

	uid, err := uc.identity.VerifySessionCookie(ctx, value)
	if err != nil {
		logger.Logger(ctx).Debug("invalid session cookie", zap.Error(err))
		return nil
	}

	user, err := uc.userRepo.FindByID(ctx, uid)
	if err != nil {
		logger.Logger(ctx).Warn("failed to load session user", zap.String("uid", uid), zap.Error(err))
		return nil
	}
	return user
}

func (uc *AuthUsecase) IsAuthenticated(ctx context.Context, jar SessionJar) bool {
	return uc.GetCurrentUser(ctx, jar) != nil
}

func (uc *AuthUsecase) sessionCookie(value string, maxAge time.Duration) SessionCookie {
	return SessionCookie{
		Name:     SessionCookieName,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		HTTPOnly: true,
		Secure:   uc.production,
		SameSite: "Lax",
	}
}
