package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lingua/services"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ServiceErrorResponse maps the service error taxonomy onto HTTP
// statuses. Store failures are logged and reported as a generic 500,
// never leaked to the client.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	var vErr services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return ValidationErrorResponse(c, vErr)
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	case errors.Is(err, services.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "Forbidden!", nil)
	default:
		log.Printf("Unhandled service error on %s %s: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
}
