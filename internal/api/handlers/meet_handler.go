package handlers

import (
	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/meet"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MeetHandler interface {
		GetMeetDate(c *fiber.Ctx) error
		SetMeetDate(c *fiber.Ctx) error
		ClearMeetDate(c *fiber.Ctx) error
	}

	meetHandler struct {
		meetService meet.MeetService
		validator   *validator.Validate
	}
)

func NewMeetHandler(meetService meet.MeetService, validator *validator.Validate) MeetHandler {
	return &meetHandler{
		meetService: meetService,
		validator:   validator,
	}
}

func (h *meetHandler) GetMeetDate(c *fiber.Ctx) error {
	res, err := h.meetService.GetMeetDate(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *meetHandler) SetMeetDate(c *fiber.Ctx) error {
	req := new(domain.SetMeetDateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrInvalidMeetDate)
	}

	if err := h.meetService.SetMeetDate(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessSetMeetDate)
}

func (h *meetHandler) ClearMeetDate(c *fiber.Ctx) error {
	if err := h.meetService.ClearMeetDate(c.Context()); err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessClearMeetDate)
}
