package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port      string `mapstructure:"PORT"`
	DBPath    string `mapstructure:"DB_PATH"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	Debug     bool   `mapstructure:"DEBUG"`
}

// Load reads configuration from an optional .env file in path and from
// the environment. Environment variables win over file values.
func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("DB_PATH", "./data/routes.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("DEBUG", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
