package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the storefront and notifier settings. It is loaded once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// Owner notification settings
	OwnerEmail      string `yaml:"ownerEmail"`
	FromEmail       string `yaml:"fromEmail"`
	FromName        string `yaml:"fromName"`
	ReplyTo         string `yaml:"replyTo"`
	SubjectTemplate string `yaml:"subjectTemplate"`
	PrivacyNotice   string `yaml:"privacyNotice"`

	// Delivery settings
	SendGridAPIKey string `yaml:"sendgridApiKey"`
	EmailEndpoint  string `yaml:"emailEndpoint"`

	// Cart persistence: RedisAddr selects the Redis store when set,
	// otherwise carts are kept in a local JSON file.
	RedisAddr string `yaml:"redisAddr"`
	CartFile  string `yaml:"cartFile"`

	// Listen addresses
	APIAddr      string `yaml:"apiAddr"`
	NotifierAddr string `yaml:"notifierAddr"`
}

// Defaults returns the built-in demo configuration.
func Defaults() Config {
	return Config{
		OwnerEmail:      "owner@secureshop.example",
		FromEmail:       "noreply@secureshop.example",
		FromName:        "SecureShop",
		ReplyTo:         "support@secureshop.example",
		SubjectTemplate: "New Order Received - Order ID: {ORDER_ID}",
		PrivacyNotice:   "This notification contains customer contact data. Delete after processing.",
		EmailEndpoint:   "http://localhost:5001/send-order-email",
		CartFile:        "secureshop-cart.json",
		APIAddr:         ":8080",
		NotifierAddr:    ":5001",
	}
}

// Load builds the configuration from defaults, an optional YAML file named
// by SHOP_CONFIG, and finally environment variable overrides.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("SHOP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.OwnerEmail = getEnv("OWNER_EMAIL", cfg.OwnerEmail)
	cfg.FromEmail = getEnv("FROM_EMAIL", cfg.FromEmail)
	cfg.FromName = getEnv("FROM_NAME", cfg.FromName)
	cfg.ReplyTo = getEnv("REPLY_TO", cfg.ReplyTo)
	cfg.SubjectTemplate = getEnv("SUBJECT_TEMPLATE", cfg.SubjectTemplate)
	cfg.PrivacyNotice = getEnv("PRIVACY_NOTICE", cfg.PrivacyNotice)
	cfg.SendGridAPIKey = getEnv("SENDGRID_API_KEY", cfg.SendGridAPIKey)
	cfg.EmailEndpoint = getEnv("EMAIL_ENDPOINT", cfg.EmailEndpoint)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.CartFile = getEnv("CART_FILE", cfg.CartFile)
	cfg.APIAddr = getEnv("API_ADDR", cfg.APIAddr)
	cfg.NotifierAddr = getEnv("NOTIFIER_ADDR", cfg.NotifierAddr)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
