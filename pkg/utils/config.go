package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

// LoadConfig reads .env from the working directory, overridden by the environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an env-formatted file at path. A missing file is not an error.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "payment-api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
	}

	return config, nil
}
