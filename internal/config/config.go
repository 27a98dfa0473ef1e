package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once in main and handed to everything that needs it.
// A missing credential here does not stop startup; the operation that
// needs it fails with ports.ErrNotConfigured instead.
type Config struct {
	Port        string
	DatabaseURL string
	AuthSecret  string

	// Commerce
	ShopEnabled      bool
	PrintifyAPIToken string
	PrintifyShopID   string
	StripeSecretKey  string
	CheckoutSuccess  string
	CheckoutCancel   string

	// Storage host prefixed onto relative image keys.
	ImageBaseURL string
}

func Load() *Config {
	// Local development convenience; in production the env is real.
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AuthSecret:       os.Getenv("AUTH_SECRET"),
		ShopEnabled:      getBool("SHOP_ENABLED", false),
		PrintifyAPIToken: os.Getenv("PRINTIFY_API_TOKEN"),
		PrintifyShopID:   os.Getenv("PRINTIFY_SHOP_ID"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccess:  getEnv("CHECKOUT_SUCCESS_URL", "https://lowtide.example/shop/thanks"),
		CheckoutCancel:   getEnv("CHECKOUT_CANCEL_URL", "https://lowtide.example/shop"),
		ImageBaseURL:     os.Getenv("IMAGE_BASE_URL"),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
