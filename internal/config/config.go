package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	RedisURL      string
	SessionSecret string
	ClientURL     string // base URL for verification links in emails
	EmailUser     string // mail-relay account (Express EMAIL_USER)
	EmailPass     string
	MailFrom      string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "5000"
	}
	env := viper.GetString("NODE_ENV")
	if env == "" {
		env = viper.GetString("APP_ENV")
	}
	if env == "" {
		env = "development"
	}

	clientURL := viper.GetString("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	return &Config{
		Env:           env,
		Port:          port,
		DatabaseURL:   viper.GetString("DATABASE_URL"),
		RedisURL:      viper.GetString("REDIS_URL"),
		SessionSecret: viper.GetString("JWT_SECRET"),
		ClientURL:     clientURL,
		EmailUser:     viper.GetString("EMAIL_USER"),
		EmailPass:     viper.GetString("EMAIL_PASS"),
		MailFrom:      viper.GetString("MAIL_FROM"),
	}, nil
}
