package main

import (
	"log"
	"net/http"

	_ "bookshelf/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"bookshelf/internal/auth"
	"bookshelf/internal/cache"
	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/db"
	"bookshelf/internal/handler"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
	"bookshelf/internal/router"
	"bookshelf/internal/service"
)

// @title Bookshelf API
// @version 1.0
// @description Reading catalog backend with JWT authentication, likes and comments.
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	// Refusing to start beats signing sessions with a guessable default.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set; refusing to start")
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Like{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	books, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	interactionService := service.NewInteractionService(likeRepo, commentRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(interactionService, jwtService)
	catalogHandler := handler.NewCatalogHandler(books)

	// Register routes
	router.Register(e, cfg, jwtService, authHandler, bookHandler, catalogHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
