package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/akshatmoradiya03/HealthCare/internal/config"
	"github.com/akshatmoradiya03/HealthCare/internal/database"
	"github.com/akshatmoradiya03/HealthCare/internal/handlers"
	"github.com/akshatmoradiya03/HealthCare/internal/middleware"
	"github.com/akshatmoradiya03/HealthCare/internal/models"
	"github.com/akshatmoradiya03/HealthCare/internal/utils"
)

// @title HealthCare API
// @version 1.0.0
// @description Professional-client relationship management backend
// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("healthcare")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	userHandler := &handlers.UserHandler{DB: db}
	connectionHandler := &handlers.ConnectionHandler{DB: db}
	activityHandler := &handlers.ActivityHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	api.Get("/users", userHandler.ListUsers)
	api.Get("/health", healthHandler.Health)

	// Connection routes (all require authentication)
	connection := api.Group("/connection", middleware.AuthRequired(cfg))
	connection.Post("/request-pro", middleware.RequireRole(models.RoleClient), connectionHandler.RequestProfessional)
	connection.Post("/invite-client", middleware.RequireRole(models.RoleProfessional), connectionHandler.InviteClient)
	connection.Post("/respond", connectionHandler.Respond)
	connection.Get("/list", connectionHandler.List)
	connection.Delete("/:id", connectionHandler.Remove)

	// Activity routes (all require authentication)
	activities := api.Group("/activities", middleware.AuthRequired(cfg))
	activities.Post("/", middleware.RequireRole(models.RoleProfessional), activityHandler.Create)
	activities.Post("/invite", middleware.RequireRole(models.RoleProfessional), activityHandler.Invite)
	activities.Post("/respond", activityHandler.Respond)
	activities.Get("/list", activityHandler.List)
	activities.Delete("/:id", middleware.RequireRole(models.RoleProfessional), activityHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
