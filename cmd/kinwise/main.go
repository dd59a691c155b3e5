package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/kinwise-app/kinwise/internal/api"
	"github.com/kinwise-app/kinwise/internal/coaching"
	"github.com/kinwise-app/kinwise/internal/db"
	"github.com/kinwise-app/kinwise/internal/line"
	"github.com/kinwise-app/kinwise/internal/openai"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	location := mustLoadLocation(getEnv("TZ", "Asia/Bangkok"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	cronSecret := getEnv("CRON_SECRET", "")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "kinwise.db"))
	port := getEnv("PORT", "8080")
	appURL := getEnv("LIFF_APP_URL", "https://app.kinwise.example")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)

	lineClient := line.NewClient(getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""))
	if !lineClient.Enabled() {
		log.Println("LINE channel token not set, pushes will fail until configured")
	}

	var completer coaching.Completer
	if aiClient := openai.NewClient(
		getEnv("OPENAI_API_KEY", ""),
		getEnv("OPENAI_BASE_URL", ""),
		getEnv("OPENAI_CHAT_MODEL", ""),
	); aiClient != nil {
		completer = aiClient
	} else {
		log.Println("OpenAI key not set, coaching messages use fallback templates")
	}

	evaluator := coaching.NewEvaluator(repositories.Members, repositories.Logs, location)
	aggregator := coaching.NewAggregator(repositories.Members, repositories.Logs, repositories.Orders, location)
	composer := coaching.NewComposer(completer)
	dispatcher := coaching.NewDispatcher(repositories.Members, lineClient, appURL)
	runner := coaching.NewRunner(repositories.Members, evaluator, aggregator, composer, dispatcher, location)

	handler := api.NewHandler(runner, secretKey, cronSecret)

	app := fiber.New(fiber.Config{
		AppName:               "Kinwise Coaching",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Kinwise coaching listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
