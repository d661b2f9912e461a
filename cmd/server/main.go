package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/config"
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/email"
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/infrastructure/repository"
	handlers "github.com/Musiitwa-Joel/pixinity-sub001/internal/interfaces/http"
	services "github.com/Musiitwa-Joel/pixinity-sub001/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	var emailClient *email.Client
	if cfg.SMTPConfigured() {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
			emailClient = nil // Continue without notifications
		}
	}

	// Homepage sections
	sectionRepo := repository.NewSectionRepository(db)
	sectionService := application.NewSectionService(sectionRepo)
	sectionHandler := handlers.NewSectionHandler(sectionService, emailClient, cfg.NotifyEmail)

	// Photo curation
	catalogRepo := repository.NewCatalogRepository(db)
	curationService := application.NewCurationService(catalogRepo)
	curationHandler := handlers.NewCurationHandler(curationService)

	// Composition
	composerService := application.NewComposerService(sectionService, curationService)
	editorHandler := handlers.NewEditorHandler(composerService)
	homeHandler := handlers.NewHomeHandler(composerService)

	// S3
	s3Service, err := services.NewS3Service()
	var s3Handler *handlers.S3Handler
	if err != nil {
		log.Printf("Warning: S3 service initialization failed, uploads disabled: %v", err)
	} else {
		s3Handler = handlers.NewS3Handler(s3Service)
	}

	if err := sectionService.LoadAll(context.Background()); err != nil {
		log.Fatalf("Error loading homepage sections: %v", err)
	}

	api := app.Group("/api")

	// Public render feed
	api.Get("/homepage", homeHandler.GetHomepage)

	// Section composition
	sections := api.Group("/sections")
	sections.Get("/", sectionHandler.List)
	sections.Post("/", sectionHandler.Create)
	sections.Post("/reload", sectionHandler.Reload)
	sections.Post("/save", sectionHandler.Save)
	sections.Delete("/:id", sectionHandler.Delete)
	sections.Patch("/:id/visibility", sectionHandler.UpdateVisibility)
	sections.Patch("/:id/title", sectionHandler.Rename)
	sections.Post("/:id/move", sectionHandler.Move)

	// Staged editing
	sections.Post("/:id/editor", editorHandler.Begin)
	sections.Post("/:id/editor/intents", editorHandler.ApplyIntent)
	sections.Post("/:id/editor/commit", editorHandler.Commit)
	sections.Delete("/:id/editor", editorHandler.Cancel)

	// Photo catalog curation
	catalog := api.Group("/catalog")
	catalog.Get("/", curationHandler.List)
	catalog.Post("/refresh", curationHandler.Refresh)
	catalog.Post("/:id/toggle", curationHandler.Toggle)

	// Image uploads
	if s3Handler != nil {
		upload := api.Group("/upload")
		upload.Post("/images", s3Handler.HandleUploadImage)
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
