package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"cargo-tracking-service/internal/auth"
	"cargo-tracking-service/internal/config"
	"cargo-tracking-service/internal/db"
	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/repo"
)

// dbtool initializes the schema and seeds the initial admin account for
// local runs.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	database, err := db.Open(cfg.Database.PostgresURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repo.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	if err := seedAdmin(repo.NewPostgresUserRepo(database), email, password); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
}

func seedAdmin(users repo.UserRepository, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("admin %s already exists, skipping", email)
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	pwHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:        uuid.NewString(),
		Name:      "Administrator",
		Email:     email,
		Role:      model.RoleAdmin,
		PwHash:    pwHash,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("admin %s created", email)
	return nil
}
