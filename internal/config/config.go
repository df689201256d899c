package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SMS      SMSConfig
	Auth     AuthConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Address string
}

type DatabaseConfig struct {
	PostgresURL string
}

type SMSConfig struct {
	APIKey          string
	BaseURL         string
	Sender          string
	DefaultLanguage string
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

func LoadAll() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Address: getEnv("SERVER_ADDRESS", ":8080"),
		},
		Database: DatabaseConfig{
			PostgresURL: mustEnv("POSTGRES_URL"),
		},
		SMS: SMSConfig{
			// An empty API key puts the SMS client in simulated mode.
			APIKey:          os.Getenv("SMS_API_KEY"),
			BaseURL:         getEnv("SMS_BASE_URL", "https://api.infobip.com"),
			Sender:          getEnv("SMS_SENDER", "CargoSMS"),
			DefaultLanguage: getEnv("SMS_DEFAULT_LANGUAGE", "en"),
		},
		Auth: AuthConfig{
			JWTSecret:      mustEnv("JWT_SECRET"),
			AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 30)) * time.Minute,
		},
		Redis: loadRedisConfig(),
	}

	validate(cfg)
	return cfg, nil
}

func loadRedisConfig() RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return RedisConfig{Enabled: false}
	}

	return RedisConfig{
		Enabled:  true,
		Address:  addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
		TTL:      time.Duration(getEnvInt("REDIS_TTL_SECONDS", 86400)) * time.Second,
	}
}

func validate(cfg *Config) {
	if cfg.Auth.AccessTokenTTL <= 0 {
		panic("ACCESS_TOKEN_TTL_MINUTES must be > 0")
	}
	if cfg.SMS.BaseURL == "" {
		panic("SMS_BASE_URL must not be empty")
	}
	if cfg.SMS.DefaultLanguage == "" {
		panic("SMS_DEFAULT_LANGUAGE must not be empty")
	}
}

func mustEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("missing required env var: %s", key))
	}
	return val
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("invalid int for env %s: %s", key, v))
	}
	return i
}
