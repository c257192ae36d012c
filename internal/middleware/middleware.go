package middleware

import (
	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(sessions session.SessionService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: false,
		AllowMethods:     "GET,POST,PUT,DELETE",
	})
}

// AuthMiddleware guards protected routes: it resolves the session cookie to a
// user id and stashes it in locals, or short-circuits with a 401.
func (m *middleware) AuthMiddleware(sessions session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessions.CurrentUserID(c)
		if !ok {
			return presenters.ErrorResponse(c, domain.ErrUnauthorized)
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
