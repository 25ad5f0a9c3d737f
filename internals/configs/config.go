package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	AppPort   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") == "production" {
		log.Println("[CONFIG] production mode, reading ENV from the system")
	} else if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppPort = GetEnv("APP_PORT", "8080")

	if JWTSecret == "" {
		log.Println("[CONFIG] JWT_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
