package middleware

import (
	"github.com/fadilmartias/hirewise/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestContext copies the id assigned by fiber's requestid middleware into
// the user context so logger.Logger(ctx) tags every line logged while
// serving the request. It must run after requestid.New().
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals("requestid").(string); ok && id != "" {
			c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}
