package configs

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type ENV struct {
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	Port        string
	AppEnv      string
	AppURL      string
	AppAuthKey  string
	AppEncKey   string
	AppCSRFKey  string
	MediaRoot   string
	MediaURL    string
	TemplateDir string
	StaticDir   string
	LogLevel    string
	LoginURL    string
}

const (
	defaultPort        = ":8000"
	defaultMediaRoot   = "media"
	defaultMediaURL    = "/media/"
	defaultTemplateDir = "templates"
	defaultStaticDir   = "static"
	defaultLoginURL    = "/accounts/login/"
)

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().Warn("LoadEnv: no .env file found")
	}

	return ENV{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		Port:        getenv("APP_PORT", defaultPort),
		AppEnv:      getenv("APP_ENV", "development"),
		AppURL:      os.Getenv("APP_URL"),
		AppAuthKey:  os.Getenv("APP_AUTH_KEY"),
		AppEncKey:   os.Getenv("APP_ENC_KEY"),
		AppCSRFKey:  os.Getenv("APP_CSRF_KEY"),
		MediaRoot:   getenv("MEDIA_ROOT", defaultMediaRoot),
		MediaURL:    getenv("MEDIA_URL", defaultMediaURL),
		TemplateDir: getenv("TEMPLATE_DIR", defaultTemplateDir),
		StaticDir:   getenv("STATIC_DIR", defaultStaticDir),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LoginURL:    getenv("LOGIN_URL", defaultLoginURL),
	}
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
