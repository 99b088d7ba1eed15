package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

// Config holds runtime settings for the api and migrate commands.
type Config struct {
	Port        string
	DatabaseURL string
	AutoMigrate bool
	LogLevel    string

	AccessSecret string
	AccessTTL    time.Duration
	BcryptCost   int

	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// requests per minute per client on /auth routes, 0 disables
	AuthRateLimit int
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ttl, err := utils.ParseTTL(os.Getenv("ACCESS_TTL"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:          getenv("PORT", "4000"),
		DatabaseURL:   getenv("DATABASE_URL", ""),
		AutoMigrate:   getBool("AUTO_MIGRATE", true),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		AccessSecret:  getenv("ACCESS_SECRET", ""),
		AccessTTL:     ttl,
		BcryptCost:    getInt("BCRYPT_COST", 10),
		DBMaxOpen:     getInt("DB_MAX_OPEN", 25),
		DBMaxIdle:     getInt("DB_MAX_IDLE", 25),
		DBMaxLifetime: time.Duration(getInt("DB_MAX_LIFETIME", 300)) * time.Second,
		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
		AuthRateLimit: getInt("AUTH_RATE_LIMIT", 30),
	}, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return def
	}
	return b
}
