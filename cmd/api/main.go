// @title QuizLab API
// @version 1.0
// @description Quiz authoring and play sessions, including question generation from contact lists.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizlab/internal/adapter"
	"quizlab/internal/adapter/contactgen"
	"quizlab/internal/cache"
	"quizlab/internal/config"
	"quizlab/internal/database"
	"quizlab/internal/handler"
	"quizlab/internal/logger"
	"quizlab/internal/middleware"
	"quizlab/internal/repository"
	"quizlab/internal/service"
	"quizlab/internal/validation"

	_ "quizlab/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository and transaction manager
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Initialize question generator
	generator := contactgen.NewContactQuestionGenerator(appLogger)

	// Initialize services
	quizService := service.NewQuizService(quizRepository, txManager, cacheAdapter, generator, cfg)
	gameService := service.NewGameService(quizRepository, cfg)
	defer gameService.Close()

	// Initialize handlers
	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, validator)
	gameHandler := handler.NewGameHandler(gameService, validator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Authoring routes
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Post("/quizzes", quizHandler.CreateQuiz)
	apiGroup.Post("/quizzes/generate-contacts", quizHandler.GenerateContactQuestions)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)
	apiGroup.Put("/quizzes/:id", quizHandler.RenameQuiz)
	apiGroup.Delete("/quizzes/:id", quizHandler.DeleteQuiz)
	apiGroup.Post("/quizzes/:id/questions", quizHandler.AddQuestion)
	apiGroup.Delete("/quizzes/:id/questions/:questionId", quizHandler.DeleteQuestion)

	// Play session routes
	apiGroup.Post("/games", gameHandler.StartGame)
	apiGroup.Get("/games/:id", gameHandler.GetState)
	apiGroup.Post("/games/:id/answer", gameHandler.SubmitAnswer)
	apiGroup.Post("/games/:id/next", gameHandler.NextQuestion)
	apiGroup.Get("/games/:id/result", gameHandler.Result)
	apiGroup.Delete("/games/:id", gameHandler.AbandonGame)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
