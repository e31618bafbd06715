package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/db"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
	"bookshelf/internal/service"
)

// Dev seeder: creates a few demo readers and sprinkles likes and
// comments over the first books of the catalog so the details
// endpoints have something to show locally.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Like{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	books, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	likeRepo := repository.NewLikeRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	interactions := service.NewInteractionService(likeRepo, commentRepo, nil)

	users := make([]*model.User, 0, 3)
	for i := 1; i <= 3; i++ {
		email := fmt.Sprintf("reader%d@example.com", i)
		if existing, err := userRepo.FindByEmail(ctx, email); err == nil {
			log.Printf("User %s already exists, reusing", email)
			users = append(users, existing)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := &model.User{
			Name:         fmt.Sprintf("Reader %d", i),
			Email:        email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", email, err)
		}
		log.Printf("Created user %s", email)
		users = append(users, user)
	}

	seeded := 0
	for i, book := range books.List() {
		if i >= 5 {
			break
		}
		for j, user := range users {
			if (i+j)%2 != 0 {
				continue
			}
			if _, err := interactions.ToggleLike(ctx, user.ID, book.Title, book.Category); err != nil {
				log.Fatalf("Failed to like %q: %v", book.Title, err)
			}
			text := fmt.Sprintf("Really enjoyed %q!", book.Title)
			if _, err := interactions.AddComment(ctx, user.ID, book.Title, book.Category, text); err != nil {
				log.Fatalf("Failed to comment on %q: %v", book.Title, err)
			}
			seeded++
		}
	}

	log.Printf("Seed complete: %d users, %d like/comment pairs", len(users), seeded)
}
