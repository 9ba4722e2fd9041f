package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting. Required fields are
// validated at startup; the process must not bind its socket without them.
type Config struct {
	Env  string `validate:"oneof=development production test"`
	Port string `validate:"required"`

	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`
	DBUser     string `validate:"required"`
	DBPassword string // may legitimately be empty (local dev)
	DBURL      string // overrides the discrete DB_* values when set

	ClerkPublishableKey string `validate:"required"`
	ClerkSecretKey      string `validate:"required"`

	// Optional. When empty the webhook endpoint rejects every delivery and
	// the admin API rejects every token, respectively.
	ClerkWebhookSecret string
	JWTSecret          string
	JWTExpiresIn       string

	AdminDistDir string
	UploadsDir   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

var validate = validator.New()

// Load reads .env (best effort, real env wins) and builds a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBURL:      os.Getenv("DB_URL"),

		ClerkPublishableKey: os.Getenv("CLERK_PUBLISHABLE_KEY"),
		ClerkSecretKey:      os.Getenv("CLERK_SECRET_KEY"),
		ClerkWebhookSecret:  os.Getenv("CLERK_WEBHOOK_SECRET"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: getEnv("JWT_EXPIRES_IN", "720h"),

		AdminDistDir: getEnv("ADMIN_DIST_DIR", "../admin/dist"),
		UploadsDir:   getEnv("UPLOADS_DIR", "./uploads"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	if err := validate.Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			missing := make([]string, 0, len(errs))
			for _, fe := range errs {
				missing = append(missing, fe.Field())
			}
			return nil, fmt.Errorf("missing or invalid required configuration: %v", missing)
		}
		return nil, err
	}

	return cfg, nil
}

// DSN builds the Postgres connection string, preferring DB_URL when set.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// IsProduction reports whether the server should serve the admin SPA bundle.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// CloudinaryConfigured reports whether media uploads go to Cloudinary.
func (c *Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
