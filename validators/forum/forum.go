package forumValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
)

var validate = validator.New()

type CreatePostRequest struct {
	Language string `json:"language"`
	Topic    string `json:"topic"`
	Title    string `json:"title" validate:"required,max=150"`
	Content  string `json:"content" validate:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func PostID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Post ID!", nil)
		}

		c.Locals("postID", uint(id))
		return c.Next()
	}
}

// CreatePost validator middleware
func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePostRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required and must be at most 150 characters!"
				case "Content":
					errors["content"] = "Content is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPost", reqData)
		return c.Next()
	}
}

// AddComment validator middleware
func AddComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddCommentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content": "Content is required!",
			})
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
