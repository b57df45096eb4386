package apiController

import (
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
	"lingua/services"
)

// Controller serves the minimal public read API
type Controller struct {
	content *services.ContentService
}

func New(content *services.ContentService) *Controller {
	return &Controller{content: content}
}

// Languages returns the available languages with their level labels
func (ctrl *Controller) Languages(c *fiber.Ctx) error {
	languages, err := ctrl.content.ListLanguages()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"languages": languages})
}

// CoursesByLanguage returns the courses for one language, matched
// case-insensitively.
func (ctrl *Controller) CoursesByLanguage(c *fiber.Ctx) error {
	language := c.Locals("language").(string)

	courses, err := ctrl.content.CoursesByLanguage(language)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"courses": courses})
}
