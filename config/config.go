// config.go - Handles configuration for the project

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values, read from the environment (or a .env file).
type Config struct {
	// Path to the SQLite database file
	DBPath     string `mapstructure:"DB_PATH" validate:"required"`
	LogLevel   string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	LogFormat  string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`
	BcryptCost int    `mapstructure:"BCRYPT_COST" validate:"gte=4,lte=31"`

	// Optional user created on first connect. Either all three are set or none.
	SeedUserName     string `mapstructure:"SEED_USER_NAME" validate:"required_with=SeedUserEmail SeedUserPassword"`
	SeedUserEmail    string `mapstructure:"SEED_USER_EMAIL" validate:"required_with=SeedUserName SeedUserPassword"`
	SeedUserPassword string `mapstructure:"SEED_USER_PASSWORD" validate:"required_with=SeedUserName SeedUserEmail"`
}

var keys = []string{
	"DB_PATH",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"BCRYPT_COST",
	"SEED_USER_NAME",
	"SEED_USER_EMAIL",
	"SEED_USER_PASSWORD",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads config from environment variables, falling back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_PATH", "data.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("BCRYPT_COST", 10)

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

// HasSeedUser reports whether a seed user is configured.
func (c *Config) HasSeedUser() bool {
	return c.SeedUserEmail != ""
}
