package apiRoutes

import (
	"github.com/gofiber/fiber/v2"

	apiControllers "lingua/controllers/api"
	contactControllers "lingua/controllers/contact"

	"lingua/config"
	"lingua/services"
	contactValidators "lingua/validators/contact"
	courseValidators "lingua/validators/course"
)

// SetupAPIRoutes sets up the public read API and the contact form
func SetupAPIRoutes(app *fiber.App, cfg *config.Config, content *services.ContentService) {
	api := apiControllers.New(content)
	contact := contactControllers.New(cfg)

	apiGroup := app.Group("/api")
	apiGroup.Get("/languages", api.Languages)
	apiGroup.Get("/courses/:language", courseValidators.Language(), api.CoursesByLanguage)

	app.Post("/contact", contactValidators.Contact(), contact.Submit)
}
