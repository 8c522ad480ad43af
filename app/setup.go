package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/everestllcweb-png/backend/api"
	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/database"
	"github.com/everestllcweb-png/backend/router"
	"github.com/everestllcweb-png/backend/services/cron"
	"github.com/everestllcweb-png/backend/services/digitalocean"
	"github.com/everestllcweb-png/backend/utils/cache"
	"github.com/everestllcweb-png/backend/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	store, err := OpenStore(env)
	if err != nil {
		return err
	}

	// Seed the bootstrap admin if configured
	if err := database.NewSeeder(store.Repositories()).EnsureAdmin(env.ADMIN_USERNAME, env.ADMIN_PASSWORD); err != nil {
		log.Warnf("Failed to bootstrap admin: %v", err)
	}

	sessionStorage := NewSessionStorage(env)

	// Initialize Cron Manager
	cronManager := cron.NewCronManager(env)
	if err := cronManager.Start(); err != nil {
		// Don't fail the app, just log the warning
		log.Warnf("Failed to start cron jobs: %v", err)
	}

	// Defer Closing DB, sessions and stopping cron jobs
	defer func() {
		cronManager.Stop()
		if sessionStorage != nil {
			_ = sessionStorage.Close()
		}
		_ = store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT))

	router.SetupRoutes(server.GetEngine(), router.Dependencies{
		Env:      env,
		Store:    store,
		Sessions: middleware.NewSessionStore(middleware.SessionConfig{Secure: env.IsProduction(), Storage: sessionStorage}),
		Spaces:   NewSpacesClient(env),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server...")
		_ = server.Shutdown()
	}()

	return server.Run()
}

// OpenStore connects the configured storage backend and migrates it
func OpenStore(env *config.EnviornmentVariable) (database.Storage, error) {
	if env.DB_DRIVER == "memory" {
		return database.StartMemory(), nil
	}

	// Initialize GORM database connection
	store, err := database.StartGORM(env)
	if err != nil {
		log.Error("Check whether Postgres is running and DATABASE_URL / DB_* are set")
		return nil, err
	}

	if err := store.Init(); err != nil {
		log.Error("Failed to initialize database tables")
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// NewSessionStorage returns Redis-backed session storage, or nil to use
// fiber's in-memory storage when Redis is not configured or unreachable
func NewSessionStorage(env *config.EnviornmentVariable) fiber.Storage {
	if env.REDIS_URL == "" {
		log.Warn("REDIS_URL not set, sessions are kept in memory")
		return nil
	}

	redisCache, err := cache.NewRedisCache(env.REDIS_URL)
	if err != nil {
		log.Warnf("Failed to connect to Redis: %v. Sessions are kept in memory.", err)
		return nil
	}
	return cache.NewSessionStorage(redisCache, "sess:")
}

// NewSpacesClient returns nil when Spaces is not configured
func NewSpacesClient(env *config.EnviornmentVariable) *digitalocean.SpacesClient {
	if !env.SpacesConfigured() {
		return nil
	}

	client, err := digitalocean.NewSpacesClient(digitalocean.ConfigFromEnv(env))
	if err != nil {
		log.Warnf("Failed to initialize Spaces client: %v", err)
		return nil
	}
	return client
}
