package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PKoev99/VenomGames/config"
	"github.com/PKoev99/VenomGames/models"
	"github.com/PKoev99/VenomGames/routes"
	"github.com/PKoev99/VenomGames/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := initLogger(cfg.Log.Level)
	defer logger.Sync()

	db := initDatabase(cfg, logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Category{},
		&models.Review{},
		&models.ShoppingCart{},
		&models.CartItem{},
		&models.Order{},
		&models.GameOrder{},
	); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	if err := models.Seed(db); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	svcs := routes.Services{
		Users:      services.NewUserService(db, logger, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Games:      services.NewGameService(db, logger),
		Categories: services.NewCategoryService(db, logger),
		Reviews:    services.NewReviewService(db, logger),
		Orders:     services.NewOrderService(db, logger),
		Cart:       services.NewCartService(db, logger),
	}
	routes.SetupRoutes(r, svcs, cfg.Auth)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func initLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}

func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("db connection failed", zap.Error(err))
	}
	return db
}
