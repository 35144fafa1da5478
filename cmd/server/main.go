// @title         resumescan API
// @version       1.0
// @description   Извлечение текста из PDF-резюме и оценка соответствия вакансии с помощью LLM.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/resumescan/api/http"
	"github.com/artem13815/resumescan/api/http/handlers"
	_ "github.com/artem13815/resumescan/docs"
	"github.com/artem13815/resumescan/pkg/config"
	"github.com/artem13815/resumescan/pkg/health"
	"github.com/artem13815/resumescan/pkg/health/checkers"
	"github.com/artem13815/resumescan/pkg/history"
	"github.com/artem13815/resumescan/pkg/llm"
	"github.com/artem13815/resumescan/pkg/llm/gemini"
	"github.com/artem13815/resumescan/pkg/llm/openrouter"
	"github.com/artem13815/resumescan/pkg/pdftext"
	"github.com/artem13815/resumescan/pkg/repository/memory"
	pgrepo "github.com/artem13815/resumescan/pkg/repository/postgres"
	redisrepo "github.com/artem13815/resumescan/pkg/repository/redis"
	"github.com/artem13815/resumescan/pkg/scoring"
	"github.com/artem13815/resumescan/pkg/security/jwt"
	"github.com/artem13815/resumescan/pkg/storage/postgres"
	"github.com/artem13815/resumescan/pkg/storage/redis"
)

func main() {
	// Load configuration from env/.env and CONFIG_FILE
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := fiber.New(fiber.Config{
		// multipart overhead on top of the PDF itself
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	strategy, err := pdftext.ParseStrategy(cfg.PDFStrategy)
	if err != nil {
		log.Fatalf("pdf strategy: %v", err)
	}
	extractor := pdftext.New(strategy, cfg.MaxUploadBytes)

	// History store and readiness checkers depend on the backend.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var (
		store     history.Store
		readiness []health.Checker
	)
	switch cfg.HistoryBackend {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		store = pgrepo.NewHistoryRepository(pool)
		readiness = append(readiness, checkers.NewPostgresChecker(pool))
	case "redis":
		client, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer client.Close()
		store = redisrepo.NewHistoryRepository(client)
		readiness = append(readiness, checkers.NewRedisChecker(client))
	default:
		store = memory.NewHistoryRepository()
	}
	historyUC := history.NewService(store, cfg.HistoryLimit)

	var model llm.ChatModel
	switch cfg.LLMProvider {
	case "openrouter":
		model = openrouter.New(
			cfg.OpenRouter.APIKey,
			cfg.OpenRouter.BaseURL,
			cfg.OpenRouter.Model,
			cfg.OpenRouter.AppTitle,
			cfg.OpenRouter.Referer,
		)
	default:
		model = gemini.New(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model)
	}

	var authMW fiber.Handler
	if cfg.AuthEnabled() {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		log.Printf("JWT_SECRET не задан: история общая для всех (owner=%s)", history.AnonymousOwner)
	}

	http.Register(app, http.Handlers{
		Health:  handlers.NewHealthHandler(health.NewService(readiness...)),
		Resume:  handlers.NewResumeHandler(extractor, scoring.NewService(model), historyUC),
		History: handlers.NewHistoryHandler(historyUC, cfg.HistoryLimit),
		Report:  handlers.NewReportHandler(),
	}, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Printf("HTTP server listening on :%s (pdf strategy %s, llm %s, history %s)",
		cfg.Port, extractor.Strategy(), cfg.LLMProvider, cfg.HistoryBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
