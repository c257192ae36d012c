package handlers

import (
	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/session"
	"github.com/Naamee/distance-backend/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		sessions    session.SessionService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, sessions session.SessionService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		sessions:    sessions,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrMissingCredentials)
	}

	if _, err := h.userService.Register(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrMissingCredentials)
	}

	loggedIn, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	if err := h.sessions.Login(c, loggedIn.ID, req.Remember); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessLogout)
}
