package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dashboard/internal/config"
	"dashboard/internal/db"
	"dashboard/internal/model"
	"dashboard/internal/repository"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Posts    []string
}

var demoUsers = []seedUser{
	{
		Name:     "Anna Lee",
		Email:    "anna@example.com",
		Password: "password123",
		Posts:    []string{"Hello from the dashboard!", "Anyone up for coffee this week?"},
	},
	{
		Name:     "Ben Tan",
		Email:    "ben@example.com",
		Password: "password123",
		Posts:    []string{"Just moved to a new city, say hi."},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Connection{},
		&model.Community{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	communityRepo := repository.NewCommunityRepository(gormDB)

	seeded := 0
	skipped := 0
	var firstUser *model.User
	for _, su := range demoUsers {
		if existing, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			log.Printf("Skipping existing user: %s", su.Email)
			if firstUser == nil {
				firstUser = existing
			}
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", su.Email, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hashed),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		if firstUser == nil {
			firstUser = user
		}
		seeded++

		for _, text := range su.Posts {
			post := &model.Post{Text: text, AuthorID: user.ID}
			if err := postRepo.Create(ctx, post); err != nil {
				log.Fatalf("Failed to create post: %v", err)
			}
		}
	}

	if seeded > 0 && firstUser != nil {
		community := &model.Community{
			Name:    "Newcomers",
			Members: []model.User{*firstUser},
		}
		if err := communityRepo.Create(ctx, community); err != nil {
			log.Fatalf("Failed to create community: %v", err)
		}
		log.Printf("Created community %q with creator %s", community.Name, firstUser.Email)
	}

	log.Printf("Seed complete: %d users created, %d skipped", seeded, skipped)
}
