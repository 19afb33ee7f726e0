package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"github.com/keshavagr273/ClassMate/src/config"
	"github.com/keshavagr273/ClassMate/src/controllers"
	"github.com/keshavagr273/ClassMate/src/lib"
	"github.com/keshavagr273/ClassMate/src/notify"
	"github.com/keshavagr273/ClassMate/src/routes"
	"github.com/keshavagr273/ClassMate/src/services"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.Env)

	lib.JWTSecret = cfg.JWTSecret

	// Relational store: users, skills, declarations, requests.
	lib.ConnectDB(cfg.DBPath)
	lib.AutoMigrate()

	// Notification inbox lives in Mongo; live delivery goes out over Redis.
	lib.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	dispatcher := notify.NewService(lib.Mongo, rdb)

	catalog := services.NewSkillCatalogService(lib.DB)
	registry := services.NewSkillRegistryService(lib.DB, catalog)
	matching := services.NewSkillMatchingService(lib.DB)
	requests := services.NewSkillRequestService(lib.DB, dispatcher)

	skillExchange := controllers.NewSkillExchangeController(catalog, registry, matching, requests)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.NotificationRoutes(app)
	routes.SkillExchangeRoutes(app, skillExchange)

	slog.Info("Server is running", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
