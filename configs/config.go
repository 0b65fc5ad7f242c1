package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv   string
	DBDriver string
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	RecaptchaSecret string
	CloudinaryURL   string
	UploadDir       string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	return &Config{
		AppEnv:          getEnv("APP_ENV", "dev"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "visitborsa.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          24 * time.Hour,
		CORSOrigins:     splitEnv("CORS_ORIGINS", "*"),
		RecaptchaSecret: os.Getenv("RECAPTCHA_SECRET"),
		CloudinaryURL:   os.Getenv("CLOUDINARY_URL"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
