package middleware

import (
	"context"
	"time"

	"github.com/fadilmartias/hirewise/internal/model"
	"github.com/fadilmartias/hirewise/internal/usecase"
	"github.com/fadilmartias/hirewise/internal/util"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// CurrentUserResolver resolves the session carried by a request to a user.
type CurrentUserResolver interface {
	GetCurrentUser(ctx context.Context, jar usecase.SessionJar) *model.User
}

// FiberSessionJar adapts fiber's cookie API to usecase.SessionJar.
type FiberSessionJar struct {
	c *fiber.Ctx
}

func NewSessionJar(c *fiber.Ctx) *FiberSessionJar {
	return &FiberSessionJar{c: c}
}

func (j *FiberSessionJar) SetCookie(sc usecase.SessionCookie) {
	cookie := &fiber.Cookie{
		Name:     sc.Name,
		Value:    sc.Value,
		Path:     sc.Path,
		HTTPOnly: sc.HTTPOnly,
		Secure:   sc.Secure,
		SameSite: sc.SameSite,
	}
	if sc.MaxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(sc.MaxAge / time.Second)
	}
	j.c.Cookie(cookie)
}

func (j *FiberSessionJar) Cookie(name string) string {
	return j.c.Cookies(name)
}

// RequireSession rejects requests without a valid session and exposes the
// user to handlers through CurrentUser.
func RequireSession(resolver CurrentUserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := resolver.GetCurrentUser(c.UserContext(), NewSessionJar(c))
		if user == nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "authentication required",
			})
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(currentUserKey).(*model.User)
	return user
}
