package authController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"lingua/middleware"
	"lingua/services"
	authValidator "lingua/validators/auth"
)

type Controller struct {
	auth  *services.AuthService
	store *session.Store
}

func New(auth *services.AuthService, store *session.Store) *Controller {
	return &Controller{auth: auth, store: store}
}

func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	user, err := ctrl.auth.Register(reqData.Email, reqData.Password, reqData.ConfirmPassword)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Your account has been created! You are now able to log in.", user)
}

func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := ctrl.auth.Login(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if err := middleware.LoginSession(c, ctrl.store, user.ID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", user)
}

func (ctrl *Controller) Logout(c *fiber.Ctx) error {
	if err := middleware.LogoutSession(c, ctrl.store); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been logged out.", nil)
}

func (ctrl *Controller) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	user, err := ctrl.auth.GetUser(userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func (ctrl *Controller) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedProfile").(*authValidator.ProfileRequest)

	user, err := ctrl.auth.UpdateProfile(userID, reqData.ChosenLanguage)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your profile has been updated!", user)
}
