package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Orders      OrdersConfig
	Delivery    DeliveryConfig
	Catalog     CatalogConfig
	AdminToken  string
	LogLevel    string
}

type OrdersConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DeliveryConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", "30")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(getEnvOrViper("REMOTE_TIMEOUT_SECONDS", "30") + "s")
	if err != nil {
		return nil, fmt.Errorf("invalid REMOTE_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Orders: OrdersConfig{
			BaseURL: getEnvOrViper("ORDERS_BASE_URL", ""),
			Timeout: timeout,
		},
		Delivery: DeliveryConfig{
			BaseURL: getEnvOrViper("DELIVERY_BASE_URL", ""),
			Timeout: timeout,
		},
		Catalog: CatalogConfig{
			BaseURL: getEnvOrViper("CATALOG_BASE_URL", ""),
			Timeout: timeout,
		},
		AdminToken: getEnvOrViper("ADMIN_TOKEN", ""),
		LogLevel:   getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Orders.BaseURL == "" {
		return nil, fmt.Errorf("ORDERS_BASE_URL is required")
	}
	if cfg.Delivery.BaseURL == "" {
		return nil, fmt.Errorf("DELIVERY_BASE_URL is required")
	}
	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
