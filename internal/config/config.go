package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Invoice   InvoiceConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig points the gateway at the POS REST API.
type UpstreamConfig struct {
	BaseURL      string
	MediaBaseURL string
	Timeout      time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// InvoiceConfig carries document defaults used when the business profile
// leaves them blank.
type InvoiceConfig struct {
	DefaultDueDays     int
	DefaultHeaderColor string
	DefaultFooterText  string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-gateway")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://127.0.0.1:8000/api")
	viper.SetDefault("UPSTREAM_MEDIA_BASE_URL", "http://127.0.0.1:8000/media")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "pos_gateway")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Africa/Harare")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("INVOICE_DEFAULT_DUE_DAYS", 30)
	viper.SetDefault("INVOICE_DEFAULT_HEADER_COLOR", "#0064C8")
	viper.SetDefault("INVOICE_DEFAULT_FOOTER_TEXT", "Thank you for your business!")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      viper.GetString("UPSTREAM_BASE_URL"),
			MediaBaseURL: viper.GetString("UPSTREAM_MEDIA_BASE_URL"),
			Timeout:      time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Invoice: InvoiceConfig{
			DefaultDueDays:     viper.GetInt("INVOICE_DEFAULT_DUE_DAYS"),
			DefaultHeaderColor: viper.GetString("INVOICE_DEFAULT_HEADER_COLOR"),
			DefaultFooterText:  viper.GetString("INVOICE_DEFAULT_FOOTER_TEXT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
