// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
// Tolerances and matching windows are deliberately configurable: the defaults
// below are the documented ledger semantics, not hard guarantees.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environment   string `mapstructure:"GO_ENV"`

	BalanceTolerance     string `mapstructure:"BALANCE_TOLERANCE"`
	MatchExactWindowDays int    `mapstructure:"MATCH_EXACT_WINDOW_DAYS"`
	MatchFuzzyWindowDays int    `mapstructure:"MATCH_FUZZY_WINDOW_DAYS"`
	MatchAmountTolerance string `mapstructure:"MATCH_AMOUNT_TOLERANCE"`
	MatchMinConfidence   string `mapstructure:"MATCH_MIN_CONFIDENCE"`

	// BankFeedURL points at the external feed provider. When empty the
	// scheduled bank sync is disabled and statements arrive by upload only.
	BankFeedURL      string        `mapstructure:"BANK_FEED_URL"`
	BankSyncInterval time.Duration `mapstructure:"BANK_SYNC_INTERVAL"`
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("BALANCE_TOLERANCE", "0.01")
	viper.SetDefault("MATCH_EXACT_WINDOW_DAYS", 3)
	viper.SetDefault("MATCH_FUZZY_WINDOW_DAYS", 7)
	viper.SetDefault("MATCH_AMOUNT_TOLERANCE", "0.01")
	viper.SetDefault("MATCH_MIN_CONFIDENCE", "0.5")
	viper.SetDefault("BANK_FEED_URL", "")
	viper.SetDefault("BANK_SYNC_INTERVAL", "15m")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// MustDecimal parses a decimal config value, falling back when unset or malformed.
func MustDecimal(value, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.RequireFromString(fallback)
	}

	return d
}
