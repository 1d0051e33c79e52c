package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/auth"
	"github.com/jakhongirov/lazuno/config"
	"github.com/jakhongirov/lazuno/models"
	"github.com/jakhongirov/lazuno/routes"
	"github.com/jakhongirov/lazuno/services"
	"github.com/jakhongirov/lazuno/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger.Info().Msg("starting catalog API")

	db := initDatabase(cfg, logger)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	store, err := storage.NewStore(cfg.UploadDir, cfg.BaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("upload store init failed")
	}

	// Composition root: every service gets its collaborators here.
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	deps := routes.Deps{
		Users:      services.NewUsers(db, tokens),
		Categories: services.NewCategories(db, store),
		Products:   services.NewProducts(db, store),
		Reviews:    services.NewReviews(db),
		Tokens:     tokens,
	}

	// Gin setup
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, deps)

	logger.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config, logger zerolog.Logger) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect DB")
	}
	return db
}
