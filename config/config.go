package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFrontendOrigin is the local Vite dev server, always allowed by CORS.
const DefaultFrontendOrigin = "http://localhost:5173"

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// EnviornmentVariable is built once at start-up and handed to every component that needs it.
type EnviornmentVariable struct {
	GO_ENV string
	PORT   int
	// Database Configuration
	DB_DRIVER    string
	DATABASE_URL string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	// Session Configuration
	REDIS_URL             string
	COOKIE_ENCRYPTION_KEY string
	// CORS
	CORS_ORIGINS    string
	FRONTEND_ORIGIN string
	// Bootstrap admin, used only when no admin with this username exists
	ADMIN_USERNAME string
	ADMIN_PASSWORD string
	// Cloudinary Configuration
	CLOUDINARY_CLOUD_NAME string
	CLOUDINARY_API_KEY    string
	CLOUDINARY_API_SECRET string
	// DigitalOcean Spaces Configuration
	DO_SPACES_ACCESS_KEY   string
	DO_SPACES_SECRET_KEY   string
	DO_SPACES_BUCKET       string
	DO_SPACES_REGION       string
	DO_SPACES_ENDPOINT     string
	DO_SPACES_CDN_ENDPOINT string
	// Keepalive
	KEEPALIVE_ENABLED   bool
	KEEPALIVE_URL       string
	RENDER_EXTERNAL_URL string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5000
	}

	// Database defaults
	dbDriver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if dbDriver == "" {
		dbDriver = "postgres"
	}
	if dbDriver != "postgres" && dbDriver != "memory" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", dbDriver)
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	dbSSLMode := os.Getenv("DB_SSL_MODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	keepalive := true
	if v := os.Getenv("KEEPALIVE_ENABLED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			keepalive = parsed
		}
	}

	envVariables := &EnviornmentVariable{
		GO_ENV: os.Getenv("GO_ENV"),
		PORT:   port,
		// Database
		DB_DRIVER:    dbDriver,
		DATABASE_URL: os.Getenv("DATABASE_URL"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  dbSSLMode,
		// Session
		REDIS_URL:             os.Getenv("REDIS_URL"),
		COOKIE_ENCRYPTION_KEY: os.Getenv("COOKIE_ENCRYPTION_KEY"),
		// CORS
		CORS_ORIGINS:    os.Getenv("CORS_ORIGINS"),
		FRONTEND_ORIGIN: os.Getenv("FRONTEND_ORIGIN"),
		// Admin
		ADMIN_USERNAME: strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
		// Cloudinary
		CLOUDINARY_CLOUD_NAME: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CLOUDINARY_API_KEY:    os.Getenv("CLOUDINARY_API_KEY"),
		CLOUDINARY_API_SECRET: os.Getenv("CLOUDINARY_API_SECRET"),
		// DigitalOcean
		DO_SPACES_ACCESS_KEY:   os.Getenv("DO_SPACES_ACCESS_KEY"),
		DO_SPACES_SECRET_KEY:   os.Getenv("DO_SPACES_SECRET_KEY"),
		DO_SPACES_BUCKET:       os.Getenv("DO_SPACES_BUCKET"),
		DO_SPACES_REGION:       os.Getenv("DO_SPACES_REGION"),
		DO_SPACES_ENDPOINT:     os.Getenv("DO_SPACES_ENDPOINT"),
		DO_SPACES_CDN_ENDPOINT: os.Getenv("DO_SPACES_CDN_ENDPOINT"),
		// Keepalive
		KEEPALIVE_ENABLED:   keepalive,
		KEEPALIVE_URL:       strings.TrimSpace(os.Getenv("KEEPALIVE_URL")),
		RENDER_EXTERNAL_URL: strings.TrimSpace(os.Getenv("RENDER_EXTERNAL_URL")),
	}

	return envVariables, nil
}

// IsProduction reports whether secure cross-site cookies should be issued.
func (e *EnviornmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (e *EnviornmentVariable) DSN() string {
	if e.DATABASE_URL != "" {
		return e.DATABASE_URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		e.DB_HOST,
		e.DB_USER_NAME,
		e.DB_PASSWORD,
		e.DB_NAME,
		e.DB_PORT,
		e.DB_SSL_MODE,
	)
}

// AllowedOrigins lists exact origins (scheme + host) accepted by CORS.
func (e *EnviornmentVariable) AllowedOrigins() []string {
	candidates := []string{DefaultFrontendOrigin}
	candidates = append(candidates, strings.Split(e.CORS_ORIGINS, ",")...)
	candidates = append(candidates, e.FRONTEND_ORIGIN)

	seen := make(map[string]bool, len(candidates))
	origins := make([]string, 0, len(candidates))
	for _, origin := range candidates {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		origins = append(origins, origin)
	}
	return origins
}

// KeepaliveTarget is the URL pinged to stop the host from idling the process.
func (e *EnviornmentVariable) KeepaliveTarget() string {
	base := e.KEEPALIVE_URL
	if base == "" {
		base = e.RENDER_EXTERNAL_URL
	}
	if base == "" {
		base = fmt.Sprintf("http://localhost:%d", e.PORT)
	}
	return strings.TrimRight(base, "/") + "/health"
}

func (e *EnviornmentVariable) CloudinaryConfigured() bool {
	return e.CLOUDINARY_CLOUD_NAME != "" && e.CLOUDINARY_API_KEY != "" && e.CLOUDINARY_API_SECRET != ""
}

func (e *EnviornmentVariable) SpacesConfigured() bool {
	return e.DO_SPACES_ACCESS_KEY != "" && e.DO_SPACES_SECRET_KEY != "" &&
		e.DO_SPACES_BUCKET != "" && e.DO_SPACES_REGION != ""
}
