// Package presenters owns the wire format: success payloads as plain JSON,
// every failure as {"message": string} with the status mapped from the
// domain error.
package presenters

import (
	"errors"

	"github.com/Naamee/distance-backend/domain"
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, status int, payload interface{}) error {
	return c.Status(status).JSON(payload)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ErrorResponse translates a domain error into its HTTP status. Unknown
// errors are reported as a generic 500 so raw database failures never
// reach the wire.
func ErrorResponse(c *fiber.Ctx, err error) error {
	return MessageResponse(c, statusFor(err), messageFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrMeetDateNotSet),
		errors.Is(err, domain.ErrAlertNotFound),
		errors.Is(err, domain.ErrMovieNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrBlankItemField),
		errors.Is(err, domain.ErrItemExists),
		errors.Is(err, domain.ErrInvalidEntryType),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInsufficientQuantity),
		errors.Is(err, domain.ErrInvalidMeetDate),
		errors.Is(err, domain.ErrBlankTask),
		errors.Is(err, domain.ErrBlankMovie):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusFor(err) == fiber.StatusInternalServerError {
		return domain.MessageFailedProcessRequest
	}
	return err.Error()
}
