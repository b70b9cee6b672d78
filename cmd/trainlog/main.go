package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/trainlog-dev/trainlog/db"
	"github.com/trainlog-dev/trainlog/internal/auth"
	"github.com/trainlog-dev/trainlog/internal/router"
	"github.com/trainlog-dev/trainlog/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	gdb, err := db.Connect(os.Getenv("DATABASE_URL"))

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := gdb.DB()

	if err != nil {
		log.Fatalf("Failed to access database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := store.New(gdb)

	authService, err := auth.NewService(s.Users, os.Getenv("JWT_SECRET"))

	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	r := router.NewRouter(s, authService)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
