package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

type SubmitAnswerRequest struct {
	SelectedAnswer string `json:"selected_answer"`
}

func QuizID() fiber.Handler {
	return idParam("id", "quizID", "Quiz ID")
}

// SubmitAnswer validator middleware. An empty answer is rejected here
// and again by the service, so no attempt row is ever recorded for it.
func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAnswerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.SelectedAnswer) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"selected_answer": "Please select an answer.",
			})
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
