package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from the
// environment and optionally a .env file.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Business BusinessConfig
}

// AppConfig is the general application configuration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BusinessConfig identifies the issuing business on invoice documents.
// A single-tenant stand-in for the profile screen of the mobile app.
type BusinessConfig struct {
	Name    string
	Phone   string
	Email   string
	Address string
	GSTIN   string
}

// Load reads configuration from environment variables, with an optional .env
// file as fallback. Env vars win. Expected names: APP_ENV, HTTP_PORT,
// BUSINESS_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional .env file next to the binary.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invoice-bliss"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Business: BusinessConfig{
			Name:    getString(v, "BUSINESS_NAME", "My Business"),
			Phone:   getString(v, "BUSINESS_PHONE", ""),
			Email:   getString(v, "BUSINESS_EMAIL", ""),
			Address: getString(v, "BUSINESS_ADDRESS", ""),
			GSTIN:   getString(v, "BUSINESS_GSTIN", ""),
		},
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
