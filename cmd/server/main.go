package main // Entry point package

import (
	"log"  // Logging library
	"time" // TTL conversions

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/agrimitra/smart-crop-advisory/internal/config"     // Internal config loader
	"github.com/agrimitra/smart-crop-advisory/internal/database"   // MongoDB connection
	"github.com/agrimitra/smart-crop-advisory/internal/handler"    // HTTP handlers
	"github.com/agrimitra/smart-crop-advisory/internal/middleware" // Session auth and caching middleware
	"github.com/agrimitra/smart-crop-advisory/internal/queue"      // Notification consumer
	"github.com/agrimitra/smart-crop-advisory/internal/repository" // Document store repositories
	"github.com/agrimitra/smart-crop-advisory/internal/router"     // Route registration
	"github.com/agrimitra/smart-crop-advisory/internal/service"    // OTP and session core
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win
	cfg := config.Load()

	// The document store is constructed once and shared by every
	// repository. A dead backend is fatal here so requests never reach a
	// nil handle.
	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	otpRepo := repository.NewOTPRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	farmerRepo := repository.NewFarmerRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	calendarRepo := repository.NewCalendarRepo(db)

	auth := service.NewAuthService(
		otpRepo, sessionRepo, farmerRepo,
		time.Duration(cfg.OTPTTLMin)*time.Minute,
		time.Duration(cfg.SessionTTLDays)*24*time.Hour,
	)

	// Background consumer persisting farmer notification events.
	go func() {
		if err := queue.StartNotificationConsumer(notificationRepo); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	// Redis backs the response cache; nil client degrades to passthrough.
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	sessionMW := middleware.SessionAuth(auth)

	e := echo.New()
	router.RegisterRoutes(e, &handler.ProbeHandler{DB: db})
	router.RegisterAuth(e, handler.NewAuthHandler(auth))
	router.RegisterAdvisory(e,
		handler.NewDashboardHandler(farmerRepo, notificationRepo),
		handler.NewCalendarHandler(calendarRepo),
		handler.NewDiseaseHandler(),
		sessionMW, cacheMW,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
