package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBPort           string
	AppPort          string
	AppEnv           string
	JWTSecret        string
	UploadDir        string
	PublicBaseURL    string
	PaymentAPIKey    string
	PaymentBaseURL   string
	PaymentReturnURL string
	CORSOrigin       string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBPort:           os.Getenv("DB_PORT"),
		AppPort:          getEnv("APP_PORT", "8080"),
		AppEnv:           os.Getenv("APP_ENV"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		PaymentAPIKey:    os.Getenv("PAYMENT_APIKEY"),
		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		PaymentReturnURL: os.Getenv("PAYMENT_RETURN_URL"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
