package forumRoutes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	forumControllers "lingua/controllers/forum"
	"lingua/middleware"
	"lingua/services"
	forumValidators "lingua/validators/forum"
)

func SetupForumRoutes(app *fiber.App, store *session.Store, forum *services.ForumService) {
	ctrl := forumControllers.New(forum)
	auth := middleware.RequireAuth(store)

	forumGroup := app.Group("/forum")

	forumGroup.Get("/posts", ctrl.ListPosts)
	forumGroup.Post("/posts", auth, forumValidators.CreatePost(), ctrl.CreatePost)
	forumGroup.Get("/posts/:id", forumValidators.PostID(), ctrl.GetPost)
	forumGroup.Post("/posts/:id/comments", auth, forumValidators.PostID(), forumValidators.AddComment(), ctrl.AddComment)
	forumGroup.Delete("/posts/:id", auth, forumValidators.PostID(), ctrl.DeletePost)
}
