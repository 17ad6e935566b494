package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/config"
	"github.com/NickolasCage52/School-MVP/internal/database"
	"github.com/NickolasCage52/School-MVP/internal/domain"
	"github.com/NickolasCage52/School-MVP/internal/middleware"
	"github.com/NickolasCage52/School-MVP/internal/modules/admin"
	"github.com/NickolasCage52/School-MVP/internal/modules/catalog"
	"github.com/NickolasCage52/School-MVP/internal/modules/lead"
	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/repository"
)

func main() {
	cfg := config.Load()
	appLog := logger.New(cfg.ServiceName)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&domain.Direction{},
		&domain.Program{},
		&domain.Package{},
		&domain.Lead{},
	); err != nil {
		log.Fatal(err)
	}

	leadRepo := repository.NewLeadRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	leadService := lead.NewService(leadRepo, cfg.Intake, appLog)
	leadHandler := lead.NewHandler(leadService, appLog)
	catalogHandler := catalog.NewHandler(catalogRepo, appLog)
	adminHandler := admin.NewHandler(leadRepo, catalogRepo, appLog)

	leadLimiter := middleware.NewRateLimiter(cfg.Intake.GlobalRateWindow, cfg.Intake.GlobalRateMax)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		catalog.RegisterRoutes(api, catalogHandler)
		lead.RegisterRoutes(api, leadHandler, leadLimiter.Middleware())

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AdminTokenAuth(cfg.AdminToken))
		admin.RegisterRoutes(adminGroup, adminHandler)
	}

	appLog.Info("server starting", logger.Int("port", cfg.AppPort))
	if err := r.Run(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		log.Fatal(err)
	}
}
