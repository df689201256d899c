package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"cargo-tracking-service/internal/api"
	"cargo-tracking-service/internal/auth"
	"cargo-tracking-service/internal/cache"
	"cargo-tracking-service/internal/client"
	"cargo-tracking-service/internal/config"
	"cargo-tracking-service/internal/db"
	"cargo-tracking-service/internal/notify"
	"cargo-tracking-service/internal/repo"
	"cargo-tracking-service/internal/service"
)

// main is the application composition root: concrete adapters (postgres,
// redis, SMS provider) are wired behind their interfaces here and nowhere else.
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

	packages := repo.NewPostgresPackageRepo(database)
	refs := repo.NewPostgresReferenceRepo(database)
	users := repo.NewPostgresUserRepo(database)

	smsClient := client.NewSMSClient(cfg.SMS.APIKey, cfg.SMS.BaseURL, cfg.SMS.Sender)
	if smsClient.Simulated() {
		log.Println("SMS_API_KEY not set, SMS client running in simulated mode")
	}

	dispatcher := notify.NewDispatcher(smsClient, notify.NewCatalog(), cfg.SMS.DefaultLanguage)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dispatcher = dispatcher.WithLog(cache.NewRedisDispatchLog(rdb, cfg.Redis.TTL))
	}

	lifecycle := service.NewLifecycle(packages, refs, dispatcher)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	mw := auth.NewMiddleware(tokens, users)

	handler := api.NewHandler(lifecycle, packages, refs, users, tokens)
	router := api.Router(handler, mw)

	log.Printf("cargo-tracking-service listening (addr=%s, redis=%v)", cfg.Server.Address, cfg.Redis.Enabled)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Writes may block on a provider call, bounded by the SMS client's
		// 30s timeout per recipient.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
