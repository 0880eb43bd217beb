package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/studyhub/studyhub-api/docs"
	"github.com/studyhub/studyhub-api/internal/config"
	"github.com/studyhub/studyhub-api/internal/handlers"
	"github.com/studyhub/studyhub-api/internal/metrics"
	"github.com/studyhub/studyhub-api/internal/middleware"
	"github.com/studyhub/studyhub-api/internal/store"
)

// @title Timetable & Resources API
// @version 1.0
// @description CRUD backend for student timetables, learning resources and doubts.
// @BasePath /
func main() {
	cfg := config.LoadConfig()

	// Connect once at startup. On failure the handle stays nil: data
	// endpoints answer 503 and /test reports the state instead of crashing.
	var st store.Store
	if cfg.DatabaseURL != "" {
		ms, err := store.ConnectMongo(context.Background(), cfg.DatabaseURL, cfg.DatabaseName, cfg.MongoTimeout)
		if err != nil {
			log.Printf("WARNING: could not connect to MongoDB: %v", err)
		} else {
			defer ms.Close(context.Background())
			st = ms
			log.Printf("connected to MongoDB database %q", cfg.DatabaseName)
		}
	} else {
		log.Println("WARNING: DATABASE_URL is not set, starting without a store")
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestCounter())
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	handlers.NewDiagnosticsHandler(st, cfg.DatabaseURL != "").Register(r)

	api := r.Group("/api")
	handlers.NewTimetableHandler(st).Register(api)
	handlers.NewResourceHandler(st).Register(api)
	handlers.NewDoubtHandler(st).Register(api)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
