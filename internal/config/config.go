package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvDevelopment selects the in-memory mock backend.
	EnvDevelopment = "development"
)

type Config struct {
	Env        string
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MigrationsPath string

	GitHubClientID     string
	GitHubClientSecret string
	GitHubRedirectURI  string
	GitHubTokenURL     string
	GitHubAPIURL       string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		Env:        getEnv("APP_ENV", EnvDevelopment),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "devboard_user"),
		DBPassword: getEnv("DB_PASSWORD", "devboard_pass"),
		DBName:     getEnv("DB_NAME", "devboard_db"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		GitHubRedirectURI:  getEnv("GITHUB_REDIRECT_URI", "http://localhost:8080/login"),
		GitHubTokenURL:     getEnv("GITHUB_TOKEN_URL", "https://github.com/login/oauth/access_token"),
		GitHubAPIURL:       getEnv("GITHUB_API_URL", "https://api.github.com"),
	}
}

// IsDevelopment reports whether the server should run against the mock store.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
