package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/everestllcweb-png/backend/app"
	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/database"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// OpenStore runs AutoMigrate for the postgres driver
	store, err := app.OpenStore(env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Everest Worldwide - Database Seeding")
	fmt.Println(separator)
	fmt.Println()

	seeder := database.NewSeeder(store.Repositories())
	if err := seeder.EnsureAdmin(env.ADMIN_USERNAME, env.ADMIN_PASSWORD); err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}
	if err := seeder.RunSeeds(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println()
	fmt.Println(separator)
	fmt.Println("Seeding completed successfully!")
	fmt.Println(separator)
	fmt.Println()
	fmt.Println("The admin account is taken from ADMIN_USERNAME and ADMIN_PASSWORD.")
	fmt.Println("If either is unset, admin creation is skipped.")
}
