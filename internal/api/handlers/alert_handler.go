package handlers

import (
	"strconv"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/alert"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AlertHandler interface {
		CreateAlert(c *fiber.Ctx) error
		ListAlerts(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
		validator    *validator.Validate
	}
)

func NewAlertHandler(alertService alert.AlertService, validator *validator.Validate) AlertHandler {
	return &alertHandler{
		alertService: alertService,
		validator:    validator,
	}
}

func (h *alertHandler) CreateAlert(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.CreateAlertRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrBlankTask)
	}

	res, err := h.alertService.CreateAlert(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, res)
}

func (h *alertHandler) ListAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	alerts, err := h.alertService.ListAlerts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"data": alerts})
}

func (h *alertHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, domain.ErrAlertNotFound)
	}

	if err := h.alertService.MarkAsRead(c.Context(), uint(id), userID); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessReadAlert)
}
