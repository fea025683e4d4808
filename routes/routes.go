package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mayurihegde/evently-backend/config"
	"github.com/mayurihegde/evently-backend/internal/auditlog"
	"github.com/mayurihegde/evently-backend/internal/auth"
	"github.com/mayurihegde/evently-backend/internal/category"
	"github.com/mayurihegde/evently-backend/internal/event"
	"github.com/mayurihegde/evently-backend/internal/notification"
	"github.com/mayurihegde/evently-backend/internal/organization"
	"github.com/mayurihegde/evently-backend/internal/reports"
	"github.com/mayurihegde/evently-backend/internal/tag"
	"github.com/mayurihegde/evently-backend/internal/venue"
	"github.com/mayurihegde/evently-backend/middleware"
)

// Setup wires every module's repository, service, and handler onto the
// router. Public routes serve the discovery surface; everything under
// /api/v1 with auth serves organisers.
func Setup(router *gin.Engine, cfg *config.Config, db *gorm.DB, loc *time.Location, publisher *notification.Publisher) {
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	orgRepo := organization.NewRepository(db)
	orgSvc := organization.NewService(orgRepo)
	orgHandler := organization.NewHandler(orgSvc)

	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, orgRepo, cfg)
	authHandler := auth.NewHandler(authSvc, auditSvc)

	venueRepo := venue.NewRepository(db)
	venueSvc := venue.NewService(venueRepo)
	venueHandler := venue.NewHandler(venueSvc)

	categoryRepo := category.NewRepository(db)
	categorySvc := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categorySvc)

	tagRepo := tag.NewRepository(db)
	tagSvc := tag.NewService(tagRepo)
	tagHandler := tag.NewHandler(tagSvc)

	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, auditSvc, publisher, loc)
	eventHandler := event.NewHandler(eventSvc)

	reportRepo := reports.NewRepository(db)
	reportSvc := reports.NewService(reportRepo, reports.NewExporter())
	reportHandler := reports.NewHandler(reportSvc)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", cfg.UploadDir)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/refresh", authHandler.Refresh)

		v1.GET("/events", eventHandler.ListPublic)
		v1.GET("/events/:id", eventHandler.GetByID)
		v1.GET("/venues", venueHandler.List)
		v1.GET("/categories", categoryHandler.ListCategories)
		v1.GET("/categories/:id/subcategories", categoryHandler.ListSubcategories)
		v1.GET("/organizations/:id", orgHandler.GetByID)
	}

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PUT("/organizations/mine", orgHandler.UpdateMine)

		authed.POST("/events", eventHandler.Create)
		authed.GET("/events/:id/edit", eventHandler.EditForm)
		authed.PUT("/events/:id", eventHandler.Update)
		authed.POST("/events/:id/cancel", eventHandler.Cancel)
		authed.GET("/my/events", eventHandler.ListMine)
		authed.GET("/my/events/stats", eventHandler.Stats)

		authed.GET("/tags", tagHandler.List)
		authed.POST("/tags", tagHandler.Create)

		authed.GET("/audit-logs", auditHandler.List)
		authed.GET("/reports/events", reportHandler.ExportEvents)

		authed.POST("/uploads", UploadImage(cfg))
	}
}
