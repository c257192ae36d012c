// Package session wraps Fiber's cookie-session middleware behind the small
// contract the handlers need: establish, inspect and destroy a login session.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

const (
	defaultExpiry  = 24 * time.Hour
	rememberExpiry = 30 * 24 * time.Hour
)

type (
	SessionService interface {
		Login(c *fiber.Ctx, userID uint, remember bool) error
		Logout(c *fiber.Ctx) error
		CurrentUserID(c *fiber.Ctx) (uint, bool)
	}

	sessionService struct {
		store *session.Store
	}
)

func NewSessionService() SessionService {
	store := session.New(session.Config{
		Expiration:     defaultExpiry,
		KeyLookup:      "cookie:distance_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
	return &sessionService{store: store}
}

func (s *sessionService) Login(c *fiber.Ctx, userID uint, remember bool) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(userIDKey, userID)
	if remember {
		sess.SetExpiry(rememberExpiry)
	}
	return sess.Save()
}

func (s *sessionService) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func (s *sessionService) CurrentUserID(c *fiber.Ctx) (uint, bool) {
	sess, err := s.store.Get(c)
	if err != nil {
		return 0, false
	}
	userID, ok := sess.Get(userIDKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
