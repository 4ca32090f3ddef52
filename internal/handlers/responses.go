package handlers

import (
	"errors"
	"log"
	"strconv"

	"boardcamp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// bindAndValidate parses the JSON body into req and validates it, writing a
// 400 response on failure. The returned bool reports whether to continue.
func bindAndValidate(c *fiber.Ctx, v *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := v.Struct(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	return true, nil
}

// parseID reads a positive integer path or query value.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}

func badID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": name + " must be a positive integer",
	})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrAlreadyReturned),
		errors.Is(err, services.ErrNotReturned),
		errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError writes the response for a failed service call.
func serviceError(c *fiber.Ctx, action string, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Error trying to %s: %v", action, err)
		return c.Status(status).JSON(fiber.Map{
			"message": "Could not " + action,
			"error":   err.Error(),
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}
