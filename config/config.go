package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	StoreType         string // csv | postgres | mongo
	PostgresURL       string
	MongoURL          string
	LogFile           string
	OutputDir         string
	GSTINTablePath    string
	AdminUser         string
	AdminPasswordHash string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		StoreType:         os.Getenv("STORE_TYPE"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		MongoURL:          os.Getenv("MONGO_URL"),
		LogFile:           os.Getenv("LOG_FILE"),
		OutputDir:         os.Getenv("OUTPUT_DIR"),
		GSTINTablePath:    os.Getenv("GSTIN_TABLE"),
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreType == "" {
		cfg.StoreType = "csv"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "Ewaybill_Processing_Log.csv"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = "Admin"
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("ADMIN_PASSWORD_HASH is not set; every login attempt will be rejected")
	}
	return cfg
}
