package main

import (
	"log"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	store := InitFileStore(cfg)

	collector := metrics.NewCollector()

	contactRepo := repository.NewContactRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	contactService := services.NewContactService(contactRepo)
	projectService := services.NewProjectService(projectRepo, store)
	authService := services.NewAuthService(adminRepo, []byte(cfg.SecretKey), cfg.TokenTTL, cfg.BcryptCost, cfg.OpenRegistration)

	contactHandler := handlers.NewContactHandler(contactService)
	projectHandler := handlers.NewProjectHandler(projectService, collector)
	authHandler := handlers.NewAuthHandler(authService, collector)

	app := fiber.New()
	app.Use(collector.Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Portfolio backend is running"})
	})

	requireAdmin := handlers.RequireAdmin(authService, collector)

	// Contact form routes
	app.Post("/contact/", contactHandler.SubmitMessage)
	app.Get("/contact/", requireAdmin, contactHandler.ListMessages)

	// Admin account routes
	app.Post("/register-admin/", authHandler.RegisterAdmin)
	app.Post("/token/", authHandler.Login)

	// Project CRUD routes
	app.Post("/projects/", projectHandler.CreateProject)
	app.Get("/projects/", projectHandler.ListProjects)
	app.Get("/projects/:id", projectHandler.GetProject)
	app.Put("/projects/:id", requireAdmin, projectHandler.UpdateProject)
	app.Delete("/projects/:id", requireAdmin, projectHandler.DeleteProject)

	// Serve uploaded images read-only
	if cfg.StorageBackend == "local" {
		app.Static("/uploads", cfg.UploadDir)
	} else {
		uploadsHandler := handlers.NewUploadsHandler(store)
		app.Get("/uploads/:filename", uploadsHandler.ServeFile)
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.ContactMessage{}, &models.Project{}, &models.Admin{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitFileStore(cfg *config.Config) storage.FileStore {
	if cfg.StorageBackend == "minio" {
		store, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatalf("MinIO store initialization failed: %v", err)
		}
		return store
	}
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Upload directory initialization failed: %v", err)
	}
	return store
}
