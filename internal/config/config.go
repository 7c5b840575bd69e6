package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string // Application port
	DBUser           string // Database user
	DBPassword       string // Database password
	DBHost           string // Database host
	DBPort           string // Database port
	DBName           string // Database name
	JWTAccessSecret  string // Access token secret key
	JWTRefreshSecret string // Refresh token secret key
	AdminKey         string // Shared key guarding destructive admin routes
	RedisAddr        string // Redis server address
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	IsProd           bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          os.Getenv("APP_PORT"),           // Application port
		DBUser:           os.Getenv("DB_USER"),            // Database user
		DBPassword:       os.Getenv("DB_PASSWORD"),        // Database password
		DBHost:           os.Getenv("DB_HOST"),            // Database host
		DBPort:           os.Getenv("DB_PORT"),            // Database port
		DBName:           os.Getenv("DB_NAME"),            // Database name
		JWTAccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),  // Access token secret
		JWTRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"), // Refresh token secret
		AdminKey:         os.Getenv("ADMIN_KEY"),          // Admin key
		RedisAddr:        os.Getenv("REDIS_ADDR"),         // Redis server address
		RedisPass:        os.Getenv("REDIS_PASS"),         // Redis password
		RedisDB:          redisDB,                         // Redis database number
		IsProd:           os.Getenv("IS_PROD") == "true",  // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the loaded configuration.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
