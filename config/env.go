package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	UploadDir         string
	MaxUploadSize     int64
	SessionSecret     string
	AdminPasswordHash string
	RedisAddr         string
	RedisPassword     string
	CartTTL           time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "168h"))
	if err != nil {
		cartTTL = 168 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "loja_virtual"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:     maxUploadSize,
		SessionSecret:     getEnv("SESSION_SECRET", "troque-este-segredo"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CartTTL:           cartTTL,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
