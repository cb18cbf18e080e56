package config

import (
	"log"
	"os"
	"strconv"

	"sskcargo/core"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string

	// LRPrefix is prepended to auto-generated receipt numbers.
	LRPrefix string

	// GST split applied to consolidated bills, as fractions.
	CGSTRate float64
	SGSTRate float64
	IGSTRate float64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	defaults := core.DefaultTaxPolicy()

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		LRPrefix:    os.Getenv("LR_PREFIX"),
		CGSTRate:    envFloat("TAX_CGST_RATE", defaults.CGSTRate),
		SGSTRate:    envFloat("TAX_SGST_RATE", defaults.SGSTRate),
		IGSTRate:    envFloat("TAX_IGST_RATE", defaults.IGSTRate),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	if cfg.LRPrefix == "" {
		cfg.LRPrefix = core.DefaultLRPrefix
	}
	return cfg
}

// TaxPolicy hands the configured GST split to the invoice aggregator.
func (c *Config) TaxPolicy() core.TaxPolicy {
	return core.TaxPolicy{
		CGSTRate: c.CGSTRate,
		SGSTRate: c.SGSTRate,
		IGSTRate: c.IGSTRate,
	}
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
