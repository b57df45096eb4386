package courseController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
	"lingua/services"
)

// EnrollInCourse enrolls the authenticated user in a course. Enrolling
// twice is reported as already enrolled, not as an error.
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	enrollment, err := ctrl.enrollment.Enroll(userID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", nil)
		}
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled in course!", enrollment)
}

// GetEnrollments lists the courses the authenticated user has joined
func (ctrl *Controller) GetEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	courses, err := ctrl.enrollment.ListEnrollments(userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", courses)
}
