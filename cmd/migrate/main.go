// Command migrate creates or updates the Postgres tables and exits.
package main

import (
	"log"

	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/database"
)

func main() {
	log.Println("=== GORM Migration ===")

	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables:", err)
	}
	env, err := config.Get()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	if env.DB_DRIVER != "postgres" {
		log.Fatalf("DB_DRIVER=%s has no tables to migrate", env.DB_DRIVER)
	}

	store, err := database.StartGORM(env)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := store.HealthCheck(); err != nil {
		log.Fatal("Database health check failed:", err)
	}

	log.Println("All migrations completed successfully")
}
