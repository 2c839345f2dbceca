package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config is the immutable deployment configuration. The two ceilings are set
// here once; there is no runtime reconfiguration.
type Config struct {
	HTTPAddr      string
	WithdrawLimit decimal.Decimal
	BankCap       decimal.Decimal
	Owner         string
	Store         string
	PostgresDSN   string
	KafkaBrokers  []string
	SettlementURL string
}

// Load reads configuration from the environment, after loading an optional
// .env file. WITHDRAW_LIMIT and BANK_CAP are required; everything else has a
// default or is optional.
func Load() (Config, error) {
	_ = godotenv.Load() // a missing .env file is fine

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		Owner:         getenv("OWNER_ID", "vault-operator"),
		Store:         getenv("STORE", StoreMemory),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		SettlementURL: os.Getenv("SETTLEMENT_URL"),
	}

	var err error
	if cfg.WithdrawLimit, err = requireDecimal("WITHDRAW_LIMIT"); err != nil {
		return Config{}, err
	}
	if cfg.BankCap, err = requireDecimal("BANK_CAP"); err != nil {
		return Config{}, err
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	switch cfg.Store {
	case StoreMemory:
	case StorePostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, fmt.Errorf("POSTGRES_DSN is required when STORE=%s", StorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE %q", cfg.Store)
	}

	return cfg, nil
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func requireDecimal(name string) (decimal.Decimal, error) {
	value := os.Getenv(name)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%s is required", name)
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", name, err)
	}
	return parsed, nil
}
