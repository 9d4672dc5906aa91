package config

import (
	"os"

	"taskmanager/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Cloud SQL connector path
	InstanceConnectionName string
	PrivateIP              bool
	IAMAuth                bool

	// Direct connection fallback
	DBHost string
	DBPort string

	// Shared credentials
	DBUser string
	DBPass string
	DBName string
}

// Load reads the configuration snapshot from the environment. Missing
// database settings are not fatal here: which settings are required depends
// on the connection strategy, resolved by the db package.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_JSON") == "true")

	return &Config{
		AppPort:                port,
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		// only the literal "true" enables these flags
		PrivateIP: os.Getenv("PRIVATE_IP") == "true",
		IAMAuth:   os.Getenv("DB_IAM_AUTH") == "true",
		DBHost:    os.Getenv("DB_HOST"),
		DBPort:    dbPort,
		DBUser:    os.Getenv("DB_USER"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    os.Getenv("DB_NAME"),
	}
}
