package main

import (
	"context"
	"log"

	"quickhire/internal/application/services"
	"quickhire/internal/config"
	"quickhire/internal/delivery/handler"
	"quickhire/internal/domain/repositories"
	"quickhire/internal/infrastructure"
	"quickhire/internal/infrastructure/db/gormstore"
	"quickhire/internal/infrastructure/jsearch"
	"quickhire/internal/infrastructure/session"
)

func main() {
	cfg := config.Load()

	db, err := gormstore.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal("❌ Failed to open database: ", err)
	}

	var sessions repositories.SessionRepository
	switch cfg.SessionStore {
	case "redis":
		store, err := session.NewRedisStore(context.Background(), session.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.SessionTTL)
		if err != nil {
			log.Fatal("❌ Failed to connect to Redis: ", err)
		}
		defer store.Close()
		sessions = store
	default:
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	userRepo := gormstore.NewUserRepository(db)
	hasher := infrastructure.NewPasswordHasher()
	authService := services.NewAuthService(userRepo, sessions, hasher)

	upstream := jsearch.NewClient(jsearch.Options{
		APIKey:   cfg.RapidAPIKey,
		APIHost:  cfg.RapidAPIHost,
		NumPages: cfg.SearchPages,
		Timeout:  cfg.UpstreamTimeout,
	})
	jobService := services.NewJobService(upstream)
	dashboardService := services.NewDashboardService(jobService, cfg.PageSize, cfg.SessionTTL)

	guard := handler.NewSessionGuard(authService)
	limiter := infrastructure.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst)
	authHandler := handler.NewAuthHandler(authService, dashboardService, cfg.SessionTTL)
	jobHandler := handler.NewJobHandler(dashboardService)
	pageHandler := handler.NewPageHandler(cfg.StaticDir)

	e := handler.NewRouter(authHandler, jobHandler, pageHandler, guard, limiter, cfg.StaticDir)

	log.Println("🚀 Server running on", cfg.Addr)
	log.Fatal(e.Start(cfg.Addr))
}
