package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/config"
	"github.com/sefazor/eventmate-backend/internal/handler"
	"github.com/sefazor/eventmate-backend/internal/middleware"
	"github.com/sefazor/eventmate-backend/internal/repository"
	"github.com/sefazor/eventmate-backend/internal/service"
	"github.com/sefazor/eventmate-backend/pkg/database"
	"github.com/sefazor/eventmate-backend/pkg/email"
	"github.com/sefazor/eventmate-backend/pkg/geolocate"
	jwtPkg "github.com/sefazor/eventmate-backend/pkg/jwt"
	"github.com/sefazor/eventmate-backend/pkg/ticketmaster"
	"github.com/sefazor/eventmate-backend/pkg/utils"
)

func main() {
	// Load .env when present; production reads the environment directly.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("configuration error", zap.Error(err))
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}

	if err := database.RunMigrations(db); err != nil {
		zapLogger.Fatal("database migration failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	savedEventRepo := repository.NewSavedEventRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)

	// Outbound clients
	tokens := jwtPkg.NewTokenService(cfg.JWTSecret)
	eventLookup := ticketmaster.NewClient(cfg.Ticketmaster.APIKey)
	emailService := email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, zapLogger)

	var geolocator service.Geolocator
	if cfg.Google.APIKey != "" {
		geolocator = geolocate.NewClient(cfg.Google.APIKey)
	}

	// Services
	validator := utils.NewValidator()
	authService := service.NewAuthService(userRepo, tokens, geolocator, emailService, zapLogger)
	userService := service.NewUserService(userRepo, savedEventRepo, validator, zapLogger)
	eventService := service.NewEventService(userRepo, eventRepo, savedEventRepo, eventLookup, zapLogger)
	friendService := service.NewFriendService(userRepo, friendshipRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, zapLogger)
	userHandler := handler.NewUserHandler(userService, validator, zapLogger)
	eventHandler := handler.NewEventHandler(eventService, zapLogger)
	friendHandler := handler.NewFriendHandler(friendService, validator, zapLogger)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Public routes
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)
	app.Get("/logout", authHandler.Logout)
	app.Post("/logout", authHandler.Logout)

	// Protected routes
	app.Use(middleware.AuthMiddleware(tokens))
	{
		app.Get("/user/:username", userHandler.GetProfile)
		app.Get("/events", eventHandler.Nearby)
		app.Post("/save_location", userHandler.SaveLocation)
		app.Post("/api/save_location", userHandler.SaveLocation)
		app.Post("/save_event/:externalId", eventHandler.SaveEvent)
		app.Post("/remove_saved_event/:id", eventHandler.RemoveSavedEvent)
		app.Post("/add_friend", friendHandler.AddFriend)
		app.Get("/friends", friendHandler.ListFriends)
		app.Post("/edit-profile", userHandler.EditProfile)
	}

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
