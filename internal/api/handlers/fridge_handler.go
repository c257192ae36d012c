package handlers

import (
	"strconv"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/fridge"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		ListInventory(c *fiber.Ctx) error
		CreateItem(c *fiber.Ctx) error
		RenameItem(c *fiber.Ctx) error
		ListEntries(c *fiber.Ctx) error
		RecordMovement(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) ListInventory(c *fiber.Ctx) error {
	filter := domain.InventoryFilter{
		Name:     c.Query("item"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     parsePage(c),
		PerPage:  parsePerPage(c, domain.DefaultInventoryPerPage),
	}

	rows, pagination, err := h.fridgeService.ListInventory(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"data":       rows,
		"pagination": pagination,
	})
}

func (h *fridgeHandler) CreateItem(c *fiber.Ctx) error {
	req := new(domain.CreateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrBlankItemField)
	}

	item, err := h.fridgeService.CreateItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *fridgeHandler) RenameItem(c *fiber.Ctx) error {
	itemID, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := new(domain.RenameItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrBlankItemField)
	}

	item, err := h.fridgeService.RenameItem(c.Context(), itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *fridgeHandler) ListEntries(c *fiber.Ctx) error {
	itemID, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	page := parsePage(c)
	perPage := parsePerPage(c, domain.DefaultEntriesPerPage)

	entries, pagination, err := h.fridgeService.ListEntries(c.Context(), itemID, page, perPage)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"data":       entries,
		"pagination": pagination,
	})
}

func (h *fridgeHandler) RecordMovement(c *fiber.Ctx) error {
	req := new(domain.RecordMovementRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	// Type, quantity and item existence checks live in the service so a
	// missing item id surfaces as 404 rather than a generic 400.
	if err := h.fridgeService.RecordMovement(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, domain.MessageSuccessRecordMovement)
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		// A non-numeric id matches no item.
		return 0, domain.ErrItemNotFound
	}
	return uint(id), nil
}

func parsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parsePerPage applies the endpoint default when the parameter is absent or
// malformed; an explicit 0 asks for the whole result set in one page.
func parsePerPage(c *fiber.Ctx, fallback int) int {
	raw := c.Query("per_page")
	if raw == "" {
		return fallback
	}
	perPage, err := strconv.Atoi(raw)
	if err != nil || perPage < 0 {
		return fallback
	}
	return perPage
}
