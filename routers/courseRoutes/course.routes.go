package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	controllers "lingua/controllers/course"
	"lingua/middleware"
	"lingua/services"
	validators "lingua/validators/course"
)

// SetupCourseRoutes sets up course browsing, lessons, enrollment and quizzes
func SetupCourseRoutes(app *fiber.App, store *session.Store, content *services.ContentService, enrollment *services.EnrollmentService, quiz *services.QuizService) {
	ctrl := controllers.New(content, enrollment, quiz)
	auth := middleware.RequireAuth(store)

	// Course listing and details
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", auth, ctrl.GetAllCourses)
	courseGroup.Get("/:id", auth, validators.CourseID(), ctrl.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", auth, validators.CourseID(), ctrl.EnrollInCourse)

	// Lessons
	app.Get("/lesson/:id", auth, validators.LessonID(), ctrl.GetLesson)

	// Quizzes
	quizGroup := app.Group("/quiz")
	quizGroup.Get("/:id", auth, validators.QuizID(), ctrl.GetQuiz)
	quizGroup.Post("/:id/submit", auth, validators.QuizID(), validators.SubmitAnswer(), ctrl.SubmitAnswer)
	quizGroup.Get("/:id/attempts", auth, validators.QuizID(), ctrl.GetAttempts)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", auth, ctrl.GetEnrollments)
}
