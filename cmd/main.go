package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mayurihegde/evently-backend/config"
	"github.com/mayurihegde/evently-backend/database"
	"github.com/mayurihegde/evently-backend/internal/auditlog"
	"github.com/mayurihegde/evently-backend/internal/auth"
	"github.com/mayurihegde/evently-backend/internal/category"
	"github.com/mayurihegde/evently-backend/internal/event"
	"github.com/mayurihegde/evently-backend/internal/eventform"
	"github.com/mayurihegde/evently-backend/internal/jobs"
	"github.com/mayurihegde/evently-backend/internal/notification"
	"github.com/mayurihegde/evently-backend/internal/organization"
	"github.com/mayurihegde/evently-backend/internal/tag"
	"github.com/mayurihegde/evently-backend/internal/venue"
	"github.com/mayurihegde/evently-backend/middleware"
	"github.com/mayurihegde/evently-backend/monitoring"
	"github.com/mayurihegde/evently-backend/routes"
	"github.com/mayurihegde/evently-backend/utils"
)

func main() {
	cfg := config.Load()

	// A bad timezone is a deployment problem; refuse to start rather
	// than validate forms against the wrong calendar.
	loc, err := eventform.LoadLocation(cfg.EventTimezone)
	if err != nil {
		log.Fatalf("Configuration fault: %v", err)
	}

	db := database.Connect(cfg)

	if err := db.AutoMigrate(
		&organization.Organization{},
		&auth.User{},
		&venue.Venue{},
		&category.Category{},
		&category.Subcategory{},
		&tag.Tag{},
		&event.Event{},
		&auditlog.AuditLog{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := venue.Seed(db); err != nil {
		log.Fatalf("Venue seed failed: %v", err)
	}

	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Upload dir: %v", err)
	}

	publisher := notification.NewPublisher(cfg)
	defer publisher.Close()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	router.Use(middleware.RateLimiter())
	router.Use(monitoring.Middleware())

	routes.Setup(router, cfg, db, loc, publisher)

	eventRepo := event.NewRepository(db)
	venueSvc := venue.NewService(venue.NewRepository(db))
	categorySvc := category.NewService(category.NewRepository(db))
	scheduler := jobs.NewScheduler(eventRepo, venueSvc, categorySvc, loc)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Scheduler: %v", err)
	}
	defer scheduler.Stop()

	log.Printf("Listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server: %v", err)
	}
}
