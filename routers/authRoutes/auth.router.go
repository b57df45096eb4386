package authRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	authControllers "lingua/controllers/auth"
	"lingua/middleware"
	"lingua/services"
	authValidators "lingua/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, store *session.Store, auth *services.AuthService) {
	ctrl := authControllers.New(auth, store)

	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), ctrl.Register)
	authGroup.Post("/login", authValidators.Login(), ctrl.Login)
	authGroup.Post("/logout", middleware.RequireAuth(store), ctrl.Logout)
	authGroup.Get("/profile", middleware.RequireAuth(store), ctrl.GetProfile)
	authGroup.Put("/profile", middleware.RequireAuth(store), authValidators.UpdateProfile(), ctrl.UpdateProfile)
}
