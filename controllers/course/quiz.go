package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
	courseValidator "lingua/validators/course"
)

// GetQuiz returns a quiz with its parsed options list. The correct
// answer never leaves the server before a submission.
func (ctrl *Controller) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)

	quiz, err := ctrl.quiz.GetQuiz(quizID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":    quiz,
		"options": quiz.OptionList(),
		"lesson":  quiz.Lesson,
	})
}

// SubmitAnswer grades the submitted answer and records the attempt
func (ctrl *Controller) SubmitAnswer(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	quizID := c.Locals("quizID").(uint)
	reqData := c.Locals("validatedAnswer").(*courseValidator.SubmitAnswerRequest)

	result, err := ctrl.quiz.SubmitAnswer(userID, quizID, reqData.SelectedAnswer)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	message := "Not quite. The correct answer was: " + result.CorrectAnswer
	if result.IsCorrect {
		message = "Correct! Well done."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, result)
}

// GetAttempts returns the authenticated user's attempt history for a quiz
func (ctrl *Controller) GetAttempts(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	quizID := c.Locals("quizID").(uint)

	attempts, err := ctrl.quiz.ListAttempts(userID, quizID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}
