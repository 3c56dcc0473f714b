package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecret = "defaultSecret"

// Config holds application configuration
type Config struct {
	Port       string
	Env        string
	CorsOrigin string

	DBDriver   string // postgres, mysql or sqlite
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CacheDir string // empty keeps the cache in memory

	AccessTokenSecret  string
	RefreshTokenSecret string
	ActivationSecret   string
	AccessTokenExpire  time.Duration
	RefreshTokenExpire time.Duration
	ActivationExpire   time.Duration
	SessionTTL         time.Duration
	CourseCacheTTL     time.Duration
	SaltRound          int

	MailFrom       string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SendgridAPIKey string

	CloudName      string
	CloudAPIKey    string
	CloudSecretKey string
	UploadDir      string // local media root when Cloudinary is not configured

	LogLevel  string
	LogFormat string

	NotificationCleanupSpec string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8000"),
		Env:        getEnv("NODE_ENV", getEnv("APP_ENV", "development")),
		CorsOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDSN:      getEnv("DB_DSN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "elearning"),

		CacheDir: getEnv("CACHE_DIR", ""),

		AccessTokenSecret:  getEnv("ACCESS_TOKEN", defaultSecret),
		RefreshTokenSecret: getEnv("REFRESH_TOKEN", defaultSecret),
		ActivationSecret:   getEnv("ACTIVATION_SECRET", defaultSecret),
		AccessTokenExpire:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE", 5)) * time.Minute,
		RefreshTokenExpire: time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE", 7)) * 24 * time.Hour,
		ActivationExpire:   getEnvDuration("ACTIVATION_TOKEN_EXPIRE", 5*time.Minute),
		SessionTTL:         getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CourseCacheTTL:     getEnvDuration("COURSE_CACHE_TTL", 7*24*time.Hour),
		SaltRound:          getEnvInt("SALT_ROUND", 10),

		MailFrom:       getEnv("MAIL_FROM", getEnv("SMTP_USERNAME", "noreply@localhost")),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		CloudName:      getEnv("CLOUD_NAME", ""),
		CloudAPIKey:    getEnv("CLOUD_API_KEY", ""),
		CloudSecretKey: getEnv("CLOUD_SECRET_KEY", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		NotificationCleanupSpec: getEnv("NOTIFICATION_CLEANUP_SPEC", "0 0 * * *"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate critical configuration
	if cfg.AccessTokenSecret == defaultSecret || cfg.RefreshTokenSecret == defaultSecret {
		log.Println("Warning: Using default ACCESS_TOKEN/REFRESH_TOKEN secrets. Update them in your environment.")
	}
	if cfg.ActivationSecret == defaultSecret {
		log.Println("Warning: Using default ACTIVATION_SECRET. Update it in your environment.")
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AccessTokenExpire <= 0 || c.RefreshTokenExpire <= 0 {
		return fmt.Errorf("config: token lifetimes must be positive")
	}
	if c.SaltRound < 4 || c.SaltRound > 31 {
		return fmt.Errorf("config: SALT_ROUND must be between 4 and 31, got %d", c.SaltRound)
	}
	return nil
}

// IsProduction reports whether secure cookies should be issued.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDuration accepts Go duration strings ("15m", "168h").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
