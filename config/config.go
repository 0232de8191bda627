package config

import (
	"os"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
	AppEnv    string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	return Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "jobportal"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		AppEnv:    getEnv("APP_ENV", "development"),
	}
}
