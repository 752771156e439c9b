package main

import (
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stackit/stackit-api/internal/config"
	"github.com/stackit/stackit-api/internal/constants"
	"github.com/stackit/stackit-api/internal/database"
	"github.com/stackit/stackit-api/internal/handlers"
	"github.com/stackit/stackit-api/internal/middleware"
	"github.com/stackit/stackit-api/internal/repository"
	"github.com/stackit/stackit-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up the global logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatal().Err(err).Msg("Failed to add indexes")
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis store")
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	tagRepo := repository.NewTagRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo, tagRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo, voteRepo, notificationRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	adminService := services.NewAdminService(userRepo, questionRepo, answerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	tagHandler := handlers.NewTagHandler(tagRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "StackIt API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Question routes (reads public, writes protected)
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.POST("", middleware.RequireAuth(), questionHandler.CreateQuestion)
		}

		// Answer routes (protected)
		answers := api.Group("/answers")
		answers.Use(middleware.RequireAuth())
		{
			answers.POST("", answerHandler.CreateAnswer)
			answers.POST("/accept", answerHandler.AcceptAnswer)
			answers.POST("/:id/vote", answerHandler.VoteAnswer)
		}

		// Tag routes (public)
		api.GET("/tags", tagHandler.ListTags)

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(middleware.RequireAuth())
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		}

		// Admin routes (admin role required)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.DELETE("/questions/:id", adminHandler.DeleteQuestion)
			admin.DELETE("/answers/:id", adminHandler.DeleteAnswer)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.PATCH("/users/:id", adminHandler.UpdateUserRole)
		}
	}

	// Start server
	log.Info().Str("addr", cfg.ServerAddr).Msg("Server starting")
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
