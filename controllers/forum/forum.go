package forumController

import (
	"github.com/gofiber/fiber/v2"

	"lingua/middleware"
	"lingua/services"
	forumValidator "lingua/validators/forum"
)

type Controller struct {
	forum *services.ForumService
}

func New(forum *services.ForumService) *Controller {
	return &Controller{forum: forum}
}

func (ctrl *Controller) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedPost").(*forumValidator.CreatePostRequest)

	post, err := ctrl.forum.CreatePost(userID, reqData.Language, reqData.Topic, reqData.Title, reqData.Content)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

func (ctrl *Controller) ListPosts(c *fiber.Ctx) error {
	posts, err := ctrl.forum.ListPosts()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", posts)
}

func (ctrl *Controller) GetPost(c *fiber.Ctx) error {
	postID := c.Locals("postID").(uint)

	post, err := ctrl.forum.GetPost(postID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

func (ctrl *Controller) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	postID := c.Locals("postID").(uint)
	reqData := c.Locals("validatedComment").(*forumValidator.AddCommentRequest)

	comment, err := ctrl.forum.AddComment(userID, postID, reqData.Content)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added successfully!", comment)
}

func (ctrl *Controller) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	postID := c.Locals("postID").(uint)

	if err := ctrl.forum.DeletePost(userID, postID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}
