package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lingua/config"
	"lingua/database"
	"lingua/middleware"
	"lingua/routers/apiRoutes"
	"lingua/routers/authRoutes"
	"lingua/routers/courseRoutes"
	"lingua/routers/forumRoutes"
	"lingua/services"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	authService := services.NewAuthService(db, cfg.SaltRound)
	enrollmentService := services.NewEnrollmentService(db)
	contentService := services.NewContentService(db)
	quizService := services.NewQuizService(db)
	forumService := services.NewForumService(db)

	store := middleware.NewSessionStore()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true, // session cookie
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, store, authService)
	courseRoutes.SetupCourseRoutes(app, store, contentService, enrollmentService, quizService)
	forumRoutes.SetupForumRoutes(app, store, forumService)
	apiRoutes.SetupAPIRoutes(app, cfg, contentService)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
