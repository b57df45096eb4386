package contactController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"lingua/config"
	"lingua/middleware"
	"lingua/utils"
	contactValidator "lingua/validators/contact"
)

type Controller struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Controller {
	return &Controller{cfg: cfg}
}

// Submit relays a contact-form message to the configured inbox
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*contactValidator.ContactRequest)

	if ctrl.cfg.ContactRecipient == "" {
		log.Printf("Contact message from %s dropped: CONTACT_RECIPIENT not configured", reqData.Email)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your message! We will get back to you soon.", nil)
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", reqData.Name, reqData.Email, reqData.Message)
	err := utils.SendEmail(ctrl.cfg, []string{ctrl.cfg.ContactRecipient}, "[Contact] "+reqData.Subject, body)
	if err != nil {
		log.Printf("Error relaying contact message from %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to send your message. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your message! We will get back to you soon.", nil)
}
