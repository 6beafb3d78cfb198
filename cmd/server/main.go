package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"               // Loads .env files into the environment
	"github.com/labstack/echo/v4"            // Echo web framework
	"github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/iliyamo/seminar-backend/internal/config"     // Internal config loader
	"github.com/iliyamo/seminar-backend/internal/database"   // MySQL pool setup
	"github.com/iliyamo/seminar-backend/internal/handler"    // HTTP handlers
	"github.com/iliyamo/seminar-backend/internal/repository" // Data access layer
	"github.com/iliyamo/seminar-backend/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win either way
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	seminars := handler.NewSeminarHandler(repository.NewSeminarRepo(db))

	e := echo.New()
	e.Use(middleware.Logger())  // request logging
	e.Use(middleware.Recover()) // a panicking request must not take the process down
	e.Use(middleware.CORS())
	router.RegisterRoutes(e, seminars)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
