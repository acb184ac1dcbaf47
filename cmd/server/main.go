package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/unalterable/base-fullstack-app/internal/auth"
	"github.com/unalterable/base-fullstack-app/internal/config"
	"github.com/unalterable/base-fullstack-app/internal/delivery/rpc"
	"github.com/unalterable/base-fullstack-app/internal/events"
	"github.com/unalterable/base-fullstack-app/internal/repository"
	"github.com/unalterable/base-fullstack-app/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer db.Close()

	authService := auth.NewService(map[string]string{cfg.AuthToken: cfg.AuthUsername})

	producer := events.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	defer producer.Close()

	tasks := usecase.NewTaskUsecase(authService, repository.NewPostgresTaskRepo(db), producer)
	bookmarks := usecase.NewBookmarkUsecase(authService, repository.NewPostgresBookmarkRepo(db), producer)

	e := echo.New()
	e.HideBanner = true
	e.Validator = rpc.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	rpc.Register(e, rpc.NewHandler(tasks, bookmarks))

	// Pre-built UI, if one is deployed alongside the server.
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	log.Fatal(e.Start(":" + cfg.Port))
}
