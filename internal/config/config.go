package config

import "os"

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	SQLitePath   string
	JWTSecret    string
	ServerPort   string
	LogMode      string
	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "lms"),
		SQLitePath:   getEnv("SQLITE_PATH", "lms.db"),
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		LogMode:      getEnv("LOG_MODE", "dev"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
