package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Database struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	// Filter configures the bad-words API used to censor user-submitted
	// text before persistence.
	Filter struct {
		URL    string `mapstructure:"url"`
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"filter"`

	Auth struct {
		Secret   string        `mapstructure:"secret"`
		TokenTTL time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("filter.url", "https://api.apilayer.com/bad_words?censor_character=*")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()
	// Secrets and the DSN are usually supplied via the environment rather
	// than the config file.
	viper.BindEnv("database.dsn", "DATABASE_URL")
	viper.BindEnv("filter.api_key", "BAD_WORDS_API_KEY")
	viper.BindEnv("auth.secret", "QUEST_AUTH_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults may cover
		// everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
