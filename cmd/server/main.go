package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursebay/internal/course"
	coursemetrics "coursebay/internal/course/metrics"
	"coursebay/internal/identity"
	"coursebay/internal/platform/config"
	"coursebay/internal/platform/database"
	"coursebay/internal/platform/httpserver"
	"coursebay/internal/platform/logger"
	"coursebay/internal/platform/metrics"
	"coursebay/internal/platform/middleware"
	"coursebay/internal/platform/redis"
	"coursebay/internal/purchase"
	purchasemetrics "coursebay/internal/purchase/metrics"
	"coursebay/internal/token"
	httptransport "coursebay/internal/transport/http"
	"coursebay/pkg/platform/tx"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	adminStore := identity.NewPostgresAdminStore(db)
	userStore := identity.NewPostgresUserStore(db)
	courseStore := course.NewPostgresStore(db)
	purchaseStore := purchase.NewPostgresStore(db)
	txRunner := tx.NewSQLRunner(db)

	adminTokens := token.NewService(cfg.AdminJWTSecret, token.RoleAdmin, cfg.TokenTTL)
	userTokens := token.NewService(cfg.UserJWTSecret, token.RoleUser, cfg.TokenTTL)

	var catalogCache course.CatalogCache
	if redisClient != nil {
		catalogCache = course.NewRedisCatalogCache(redisClient, cfg.CatalogCacheTTL, log)
	}

	identityService := identity.NewService(adminStore, userStore, adminTokens, userTokens, log)
	courseService := course.NewService(courseStore, adminStore, catalogCache, txRunner, coursemetrics.New(), log)
	purchaseService := purchase.NewService(purchaseStore, courseStore, userStore, txRunner, purchasemetrics.New(), log)

	router := httptransport.NewRouter(httptransport.Deps{
		Identity:  identity.NewHandler(identityService, log),
		Course:    course.NewHandler(courseService, log),
		Purchase:  purchase.NewHandler(purchaseService, log),
		AdminGate: middleware.RequireAdmin(adminTokens, log),
		UserGate:  middleware.RequireUser(userTokens, log),
		Metrics:   metrics.NewHTTP(),
		DB:        db,
		Redis:     redisClient,
		Logger:    log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting coursebay", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
