package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

// idParam validates a positive integer route parameter and stores it
// under localsKey as uint.
func idParam(param, localsKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(localsKey, uint(id))
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return idParam("id", "courseID", "Course ID")
}

func LessonID() fiber.Handler {
	return idParam("id", "lessonID", "Lesson ID")
}

// Language validates the language path segment of the read API
func Language() fiber.Handler {
	return func(c *fiber.Ctx) error {
		language := strings.TrimSpace(c.Params("language"))
		if language == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Language is required!", nil)
		}

		c.Locals("language", language)
		return c.Next()
	}
}
