package main

import (
	"log"
	"net/http"
	"os"

	_ "dashboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dashboard/internal/auth"
	"dashboard/internal/cache"
	"dashboard/internal/config"
	"dashboard/internal/db"
	"dashboard/internal/geocode"
	"dashboard/internal/handler"
	"dashboard/internal/model"
	"dashboard/internal/repository"
	"dashboard/internal/router"
	"dashboard/internal/service"
)

// @title Social Dashboard API
// @version 1.0
// @description Social dashboard API with posts, map connections, communities and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			"community_members",
			&model.Community{},
			&model.Connection{},
			&model.Post{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Connection{},
		&model.Community{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	connRepo := repository.NewConnectionRepository(gormDB)
	communityRepo := repository.NewCommunityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize geocoder
	geocoder := geocode.NewNominatimClient(cfg.GeocoderURL, cfg.GeocodeTimeout, cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	postService := service.NewPostService(postRepo, userRepo, cacheClient)
	connService := service.NewConnectionService(connRepo, geocoder)
	communityService := service.NewCommunityService(communityRepo, userRepo)
	searchService := service.NewSearchService(userRepo, postRepo, communityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	connHandler := handler.NewConnectionHandler(connService)
	communityHandler := handler.NewCommunityHandler(communityService)
	searchHandler := handler.NewSearchHandler(searchService)
	seedHandler := handler.NewSeedHandler(authService, postService, communityService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		postHandler,
		connHandler,
		communityHandler,
		searchHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
