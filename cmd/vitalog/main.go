package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vitalog-dev/vitalog/db"
	"github.com/vitalog-dev/vitalog/internal/auth"
	"github.com/vitalog-dev/vitalog/internal/handlers"
	"github.com/vitalog-dev/vitalog/internal/router"
	"github.com/vitalog-dev/vitalog/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	h := handlers.NewHandler(store.NewGormStore(db.DB))
	r := router.NewRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
