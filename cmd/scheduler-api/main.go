package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campushq/scheduler-api/api/swagger"
	"github.com/campushq/scheduler-api/internal/handler"
	internalmiddleware "github.com/campushq/scheduler-api/internal/middleware"
	"github.com/campushq/scheduler-api/internal/service"
	"github.com/campushq/scheduler-api/pkg/cache"
	"github.com/campushq/scheduler-api/pkg/config"
	"github.com/campushq/scheduler-api/pkg/logger"
	corsmiddleware "github.com/campushq/scheduler-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/scheduler-api/pkg/middleware/requestid"
)

// @title CampusHQ Scheduler API
// @version 0.1.0
// @description Timetable generation service for university course scheduling
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := buildProposalStore(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init proposal store", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	timetableSvc := service.NewTimetableService(store, metricsSvc, nil, logr, service.TimetableConfig{
		ConsolidateDays:       cfg.Scheduler.ConsolidateDays,
		MaxConsolidationMoves: cfg.Scheduler.MaxConsolidationMoves,
	})
	timetableHandler := handler.NewTimetableHandler(timetableSvc, cfg.Scheduler.MaxCourses)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.Use(internalmiddleware.JWT(cfg.Auth.JWTSecret))
	}
	api.POST("/timetable/generate", timetableHandler.Generate)
	api.GET("/timetable/proposals/:id", timetableHandler.GetProposal)
	api.DELETE("/timetable/proposals/:id", timetableHandler.DeleteProposal)
	api.GET("/timetable/proposals/:id/export", timetableHandler.ExportProposal)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Scheduler.ProposalStore)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func buildProposalStore(cfg *config.Config, logr *zap.Logger) (service.ProposalStore, error) {
	if cfg.Scheduler.ProposalStore == config.StoreRedis {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		logr.Sugar().Infow("proposal store backed by redis", "addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port))
		return service.NewRedisProposalStore(client, cfg.Scheduler.ProposalTTL), nil
	}
	return service.NewMemoryProposalStore(cfg.Scheduler.ProposalTTL), nil
}
