package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultDeliveryFee is the per-unit surcharge applied when an order is
// placed with the delivery option, used when DELIVERY_FEE is not set.
const DefaultDeliveryFee = 10

type Config struct {
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	AppPort     string
	AppEnv      string
	DeliveryFee float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		AppPort:     os.Getenv("APP_PORT"),
		AppEnv:      os.Getenv("APP_ENV"),
		DeliveryFee: DefaultDeliveryFee,
	}

	if raw := os.Getenv("DELIVERY_FEE"); raw != "" {
		fee, err := strconv.ParseFloat(raw, 64)
		if err != nil || fee < 0 {
			log.Fatalf("invalid DELIVERY_FEE: %q", raw)
		}
		cfg.DeliveryFee = fee
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
