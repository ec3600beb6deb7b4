package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBPort              string
	Port                string
	APP_ENV             string
	LogLevel            string
	StoreBackend        string
	AppAuthKey          string
	AppEncKey           string
	AdminPassphrase     string
	AdminPassphraseHash string
	FormRelayURL        string
	RelayTimeout        time.Duration

	// Warnings collects problems found while loading, for the caller to log
	// once a logger exists.
	Warnings []string
}

const (
	StoreBackendMySQL  = "mysql"
	StoreBackendMemory = "memory"
)

func LoadEnv() ENV {
	var warnings []string
	if err := godotenv.Load(".env"); err != nil {
		warnings = append(warnings, "no .env file found")
	}

	env := ENV{
		DBHost:              os.Getenv("DB_HOST"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              os.Getenv("DB_PORT"),
		Port:                getEnv("APP_PORT", ":8080"),
		APP_ENV:             getEnv("APP_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		StoreBackend:        strings.ToLower(getEnv("STORE_BACKEND", StoreBackendMySQL)),
		AppAuthKey:          os.Getenv("APP_AUTH_KEY"),
		AppEncKey:           os.Getenv("APP_ENC_KEY"),
		AdminPassphrase:     os.Getenv("ADMIN_PASSPHRASE"),
		AdminPassphraseHash: os.Getenv("ADMIN_PASSPHRASE_HASH"),
		FormRelayURL:        os.Getenv("FORM_RELAY_URL"),
	}
	env.RelayTimeout, warnings = getDuration("RELAY_TIMEOUT", 10*time.Second, warnings)
	env.Warnings = warnings
	return env
}

func (e ENV) IsProduction() bool {
	return e.APP_ENV == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration, warnings []string) (time.Duration, []string) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, warnings
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, append(warnings, fmt.Sprintf("invalid %s %q, using %s", key, v, fallback))
	}
	return d, warnings
}
