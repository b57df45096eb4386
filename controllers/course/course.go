package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
	"lingua/services"
)

type Controller struct {
	content    *services.ContentService
	enrollment *services.EnrollmentService
	quiz       *services.QuizService
}

func New(content *services.ContentService, enrollment *services.EnrollmentService, quiz *services.QuizService) *Controller {
	return &Controller{content: content, enrollment: enrollment, quiz: quiz}
}

// GetAllCourses lists every course ordered by language and level
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.content.ListCourses()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a course with its ordered modules and lessons
func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctrl.content.GetCourseDetail(courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetLesson returns a lesson with its parent module and course
func (ctrl *Controller) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	lesson, err := ctrl.content.GetLesson(lessonID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	module := lesson.Module
	var course interface{}
	if module != nil {
		course = module.Course
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson": lesson,
		"module": module,
		"course": course,
	})
}
